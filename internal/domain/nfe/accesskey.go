package nfe

import (
	"fmt"
	"strings"
)

// AccessKey é a chave de acesso de 44 dígitos que identifica uma NF-e
// nacionalmente. Os 43 primeiros dígitos carregam a identificação do
// documento e do emitente; o último é o dígito verificador módulo 11.
type AccessKey string

// String retorna a chave como texto
func (k AccessKey) String() string {
	return string(k)
}

// CheckDigit retorna o dígito verificador (último dígito da chave)
func (k AccessKey) CheckDigit() string {
	if len(k) != 44 {
		return ""
	}
	return string(k[43])
}

// GenerateAccessKey monta a chave de acesso a partir da identificação da
// nota e do CNPJ do emitente.
//
// Formato: cUF(2) + AAMM(4) + CNPJ(14) + mod(2) + serie(3) + nNF(9) +
// tpEmis(1) + cNF(8) + cDV(1) = 44 dígitos.
func GenerateAccessKey(ide Identification, issuerCNPJ string) (AccessKey, error) {
	cuf, err := normalizeDigits("cUF", ide.StateCode, 2)
	if err != nil {
		return "", err
	}
	cnpj, err := normalizeDigits("CNPJ do emitente", issuerCNPJ, 14)
	if err != nil {
		return "", err
	}
	model, err := normalizeDigits("modelo", ide.Model, 2)
	if err != nil {
		return "", err
	}
	cnf, err := normalizeDigits("cNF", ide.RandomCode, 8)
	if err != nil {
		return "", err
	}
	tpEmis, err := normalizeDigits("tpEmis", ide.EmissionType, 1)
	if err != nil {
		return "", err
	}

	yearMonth := ide.IssuedAt.Format("0601")
	series := fmt.Sprintf("%03d", ide.Series)
	number := fmt.Sprintf("%09d", ide.Number)

	partial := cuf + yearMonth + cnpj + model + series + number + tpEmis + cnf
	if len(partial) != 43 {
		return "", fmt.Errorf("%w: chave parcial com %d dígitos", ErrInvalidAccessKey, len(partial))
	}

	return AccessKey(partial + calculateCheckDigit(partial)), nil
}

// ParseAccessKey valida uma chave de acesso existente: 44 dígitos ASCII e
// dígito verificador correto
func ParseAccessKey(s string) (AccessKey, error) {
	if len(s) != 44 {
		return "", fmt.Errorf("%w: esperados 44 dígitos, recebidos %d", ErrInvalidAccessKey, len(s))
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: caractere não numérico %q", ErrInvalidAccessKey, r)
		}
	}
	if dv := calculateCheckDigit(s[:43]); dv != string(s[43]) {
		return "", fmt.Errorf("%w: dígito verificador deveria ser %s", ErrInvalidAccessKey, dv)
	}
	return AccessKey(s), nil
}

// calculateCheckDigit calcula o dígito verificador módulo 11 sobre a chave
// parcial de 43 dígitos. Os pesos 2 a 9 são aplicados ciclicamente da
// direita para a esquerda; resto 0 ou 1 resulta em dígito 0.
func calculateCheckDigit(partial string) string {
	weights := []int{2, 3, 4, 5, 6, 7, 8, 9}
	sum := 0
	for i := 0; i < len(partial); i++ {
		digit := int(partial[len(partial)-1-i] - '0')
		sum += digit * weights[i%8]
	}

	remainder := sum % 11
	if remainder == 0 || remainder == 1 {
		return "0"
	}
	return fmt.Sprintf("%d", 11-remainder)
}

// normalizeDigits remove a formatação de um identificador e garante a
// largura fixa esperada. Valores mais curtos são completados com zeros à
// esquerda; valores vazios ou mais longos que o campo são rejeitados.
func normalizeDigits(field, value string, width int) (string, error) {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	if digits == "" {
		return "", fmt.Errorf("%w: %s vazio", ErrMalformedIdentifier, field)
	}
	if len(digits) > width {
		return "", fmt.Errorf("%w: %s com %d dígitos, máximo %d", ErrMalformedIdentifier, field, len(digits), width)
	}
	return strings.Repeat("0", width-len(digits)) + digits, nil
}
