package dto

// TokenRequest representa as credenciais do operador para emissão de token
type TokenRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse representa a resposta com o token JWT emitido
type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
}
