package main

// @title           Gerador NF-e API
// @version         1.0
// @description     API para geração de XML de NF-e (layout 4.00) e cálculo da chave de acesso

// @contact.name   API Support

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
