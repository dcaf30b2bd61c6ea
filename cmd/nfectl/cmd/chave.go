package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hugohenrick/gerador-nfe/internal/adapter/api/dto"
	"github.com/hugohenrick/gerador-nfe/internal/domain/nfe"
)

var (
	chaveInput string
	chaveGerar bool
)

// chaveCmd valida uma chave de acesso existente ou calcula a chave de um
// modelo de nota sem gerar o XML
var chaveCmd = &cobra.Command{
	Use:   "chave [chave de acesso]",
	Short: "Valida uma chave de acesso de 44 dígitos ou calcula a chave de um modelo",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if chaveGerar {
			return generateKeyFromFile()
		}

		if len(args) != 1 {
			return fmt.Errorf("informe a chave de acesso ou use --gerar com -i")
		}

		key, err := nfe.ParseAccessKey(args[0])
		if err != nil {
			return err
		}

		fmt.Println("Chave de acesso válida")
		printKeyFields(key)
		return nil
	},
}

// generateKeyFromFile calcula a chave de acesso do modelo do arquivo de
// entrada, sem montar o XML
func generateKeyFromFile() error {
	if chaveInput == "" {
		return fmt.Errorf("a opção --gerar exige o arquivo de entrada (-i)")
	}

	data, err := os.ReadFile(chaveInput)
	if err != nil {
		return fmt.Errorf("erro ao ler arquivo de entrada: %w", err)
	}

	var req dto.NFeRequest
	if err := decodeInvoice(chaveInput, data, &req); err != nil {
		return fmt.Errorf("erro ao interpretar arquivo de entrada: %w", err)
	}

	invoice := req.ToDomain()
	key, err := nfe.GenerateAccessKey(invoice.Identification, invoice.Issuer.CNPJ)
	if err != nil {
		return err
	}

	fmt.Println(key)
	return nil
}

func printKeyFields(key nfe.AccessKey) {
	s := key.String()
	fmt.Printf("  cUF:    %s\n", s[0:2])
	fmt.Printf("  AAMM:   %s\n", s[2:6])
	fmt.Printf("  CNPJ:   %s\n", s[6:20])
	fmt.Printf("  mod:    %s\n", s[20:22])
	fmt.Printf("  serie:  %s\n", s[22:25])
	fmt.Printf("  nNF:    %s\n", s[25:34])
	fmt.Printf("  tpEmis: %s\n", s[34:35])
	fmt.Printf("  cNF:    %s\n", s[35:43])
	fmt.Printf("  cDV:    %s\n", key.CheckDigit())
}

func init() {
	chaveCmd.Flags().StringVarP(&chaveInput, "input", "i", "", "Arquivo JSON ou YAML com o modelo da NF-e")
	chaveCmd.Flags().BoolVar(&chaveGerar, "gerar", false, "Calcula a chave do modelo do arquivo de entrada")

	rootCmd.AddCommand(chaveCmd)
}
