package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hugohenrick/gerador-nfe/internal/adapter/api/dto"
	"github.com/hugohenrick/gerador-nfe/internal/adapter/xmlbuilder"
)

var (
	inputFile  string
	outputFile string
)

// gerarCmd gera o XML de uma NF-e a partir de um arquivo com o modelo da nota
var gerarCmd = &cobra.Command{
	Use:   "gerar",
	Short: "Gera o XML de uma NF-e a partir de um arquivo JSON ou YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return fmt.Errorf("erro ao ler arquivo de entrada: %w", err)
		}

		var req dto.NFeRequest
		if err := decodeInvoice(inputFile, data, &req); err != nil {
			return fmt.Errorf("erro ao interpretar arquivo de entrada: %w", err)
		}

		xml, key, err := xmlbuilder.Build(req.ToDomain())
		if err != nil {
			return fmt.Errorf("erro ao gerar NF-e: %w", err)
		}

		if outputFile == "" {
			fmt.Println(xml)
			return nil
		}

		if err := os.WriteFile(outputFile, []byte(xml), 0644); err != nil {
			return fmt.Errorf("erro ao gravar XML: %w", err)
		}

		fmt.Printf("NF-e gerada: chave %s gravada em %s\n", key, outputFile)
		return nil
	},
}

// decodeInvoice interpreta o modelo da nota em JSON ou YAML conforme a
// extensão do arquivo. A entrada YAML é convertida para JSON para reutilizar
// as mesmas tags das structs do domínio.
func decodeInvoice(path string, data []byte, req *dto.NFeRequest) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		var raw interface{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return err
		}
		converted, err := json.Marshal(raw)
		if err != nil {
			return err
		}
		data = converted
	}

	return json.Unmarshal(data, req)
}

func init() {
	gerarCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Arquivo JSON ou YAML com o modelo da NF-e")
	gerarCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Arquivo de saída do XML (padrão: stdout)")
	gerarCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(gerarCmd)
}
