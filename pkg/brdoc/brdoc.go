// Package brdoc valida e formata documentos fiscais brasileiros usados no
// preenchimento da NF-e: CNPJ, CPF, CEP, NCM e CFOP.
package brdoc

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidCNPJ = errors.New("CNPJ inválido")
	ErrInvalidCPF  = errors.New("CPF inválido")
	ErrInvalidCEP  = errors.New("CEP deve ter 8 dígitos")
	ErrInvalidNCM  = errors.New("NCM deve ter 8 dígitos")
	ErrInvalidCFOP = errors.New("CFOP inválido")
)

// OnlyDigits remove a formatação de um campo, mantendo apenas os dígitos
func OnlyDigits(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidateCNPJ valida um CNPJ, aceitando o valor com ou sem formatação
func ValidateCNPJ(cnpj string) error {
	cnpj = OnlyDigits(cnpj)

	if len(cnpj) != 14 {
		return fmt.Errorf("%w: deve ter 14 dígitos", ErrInvalidCNPJ)
	}
	if allSameDigit(cnpj) {
		return ErrInvalidCNPJ
	}

	weights1 := []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	if checkDigit(cnpj[:12], weights1) != int(cnpj[12]-'0') {
		return fmt.Errorf("%w (dígito verificador)", ErrInvalidCNPJ)
	}

	weights2 := []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	if checkDigit(cnpj[:13], weights2) != int(cnpj[13]-'0') {
		return fmt.Errorf("%w (dígito verificador)", ErrInvalidCNPJ)
	}

	return nil
}

// ValidateCPF valida um CPF, aceitando o valor com ou sem formatação
func ValidateCPF(cpf string) error {
	cpf = OnlyDigits(cpf)

	if len(cpf) != 11 {
		return fmt.Errorf("%w: deve ter 11 dígitos", ErrInvalidCPF)
	}
	if allSameDigit(cpf) {
		return ErrInvalidCPF
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(cpf[i]-'0') * (10 - i)
	}
	if digitFromRemainder(sum%11) != int(cpf[9]-'0') {
		return fmt.Errorf("%w (dígito verificador)", ErrInvalidCPF)
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(cpf[i]-'0') * (11 - i)
	}
	if digitFromRemainder(sum%11) != int(cpf[10]-'0') {
		return fmt.Errorf("%w (dígito verificador)", ErrInvalidCPF)
	}

	return nil
}

// ValidateCEP valida um CEP
func ValidateCEP(cep string) error {
	if len(OnlyDigits(cep)) != 8 {
		return ErrInvalidCEP
	}
	return nil
}

// ValidateNCM valida um código NCM
func ValidateNCM(ncm string) error {
	if len(OnlyDigits(ncm)) != 8 {
		return ErrInvalidNCM
	}
	return nil
}

// ValidateCFOP valida um código CFOP: 4 dígitos com o primeiro entre 1 e 7
func ValidateCFOP(cfop string) error {
	cfop = OnlyDigits(cfop)
	if len(cfop) != 4 {
		return fmt.Errorf("%w: deve ter 4 dígitos", ErrInvalidCFOP)
	}
	if cfop[0] < '1' || cfop[0] > '7' {
		return ErrInvalidCFOP
	}
	return nil
}

// FormatCNPJ formata um CNPJ para exibição (XX.XXX.XXX/XXXX-XX)
func FormatCNPJ(cnpj string) string {
	cnpj = OnlyDigits(cnpj)
	if len(cnpj) != 14 {
		return cnpj
	}
	return fmt.Sprintf("%s.%s.%s/%s-%s", cnpj[:2], cnpj[2:5], cnpj[5:8], cnpj[8:12], cnpj[12:])
}

// FormatCPF formata um CPF para exibição (XXX.XXX.XXX-XX)
func FormatCPF(cpf string) string {
	cpf = OnlyDigits(cpf)
	if len(cpf) != 11 {
		return cpf
	}
	return fmt.Sprintf("%s.%s.%s-%s", cpf[:3], cpf[3:6], cpf[6:9], cpf[9:])
}

// FormatCEP formata um CEP para exibição (XXXXX-XXX)
func FormatCEP(cep string) string {
	cep = OnlyDigits(cep)
	if len(cep) != 8 {
		return cep
	}
	return fmt.Sprintf("%s-%s", cep[:5], cep[5:])
}

// checkDigit calcula um dígito verificador pela soma ponderada módulo 11
func checkDigit(digits string, weights []int) int {
	sum := 0
	for i := range weights {
		sum += int(digits[i]-'0') * weights[i]
	}
	return digitFromRemainder(sum % 11)
}

// digitFromRemainder aplica a regra de resto do módulo 11: resto menor que
// 2 resulta em dígito 0
func digitFromRemainder(remainder int) int {
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}

func allSameDigit(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}
