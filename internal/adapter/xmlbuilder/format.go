package xmlbuilder

import (
	"time"

	"github.com/shopspring/decimal"
)

// formatDecimal formata um valor com o número fixo de casas decimais, sem
// separador de milhar. O layout usa 2 casas para valores monetários, 3 para
// pesos e 4 para quantidades e valores unitários.
func formatDecimal(value decimal.Decimal, places int32) string {
	return value.StringFixed(places)
}

// formatDateTime formata data e hora no padrão da NF-e, com o fuso fixo de
// Brasília (-03:00) e sem horário de verão
func formatDateTime(t time.Time) string {
	return t.Format("2006-01-02T15:04:05") + "-03:00"
}

// formatBool converte um booleano para o indicador "1"/"0" do layout
func formatBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// zeroPad completa um valor numérico com zeros à esquerda até a largura fixa
func zeroPad(value string, width int) string {
	for len(value) < width {
		value = "0" + value
	}
	return value
}
