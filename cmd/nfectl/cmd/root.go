package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd é o comando base da ferramenta de linha de comando
var rootCmd = &cobra.Command{
	Use:   "nfectl",
	Short: "Ferramenta de linha de comando para geração de NF-e",
	Long: `nfectl gera o XML de NF-e (layout 4.00) a partir de um arquivo JSON ou
YAML com o modelo da nota, calculando a chave de acesso e o dígito
verificador sem depender do servidor HTTP.

Exemplos:
  nfectl gerar -i nota.json            # Imprime o XML no terminal
  nfectl gerar -i nota.yaml -o nfe.xml # Grava o XML em arquivo
  nfectl chave 35231212345678000195550010000000011000000013`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute executa o comando raiz da ferramenta
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		os.Exit(1)
	}
}
