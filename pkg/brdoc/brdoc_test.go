package brdoc

import (
	"errors"
	"testing"
)

func TestValidateCNPJ(t *testing.T) {
	valid := []string{"11222333000181", "11.222.333/0001-81"}
	for _, cnpj := range valid {
		if err := ValidateCNPJ(cnpj); err != nil {
			t.Errorf("ValidateCNPJ(%q) = %v, esperado nil", cnpj, err)
		}
	}

	invalid := []string{"", "1122233300018", "11222333000182", "11111111111111"}
	for _, cnpj := range invalid {
		if err := ValidateCNPJ(cnpj); !errors.Is(err, ErrInvalidCNPJ) {
			t.Errorf("ValidateCNPJ(%q) = %v, esperado ErrInvalidCNPJ", cnpj, err)
		}
	}
}

func TestValidateCPF(t *testing.T) {
	valid := []string{"52998224725", "529.982.247-25"}
	for _, cpf := range valid {
		if err := ValidateCPF(cpf); err != nil {
			t.Errorf("ValidateCPF(%q) = %v, esperado nil", cpf, err)
		}
	}

	invalid := []string{"", "5299822472", "52998224726", "00000000000"}
	for _, cpf := range invalid {
		if err := ValidateCPF(cpf); !errors.Is(err, ErrInvalidCPF) {
			t.Errorf("ValidateCPF(%q) = %v, esperado ErrInvalidCPF", cpf, err)
		}
	}
}

func TestValidateCEP(t *testing.T) {
	if err := ValidateCEP("01310-100"); err != nil {
		t.Errorf("erro inesperado: %v", err)
	}
	if err := ValidateCEP("1310100"); !errors.Is(err, ErrInvalidCEP) {
		t.Errorf("erro = %v, esperado ErrInvalidCEP", err)
	}
}

func TestValidateNCM(t *testing.T) {
	if err := ValidateNCM("61091000"); err != nil {
		t.Errorf("erro inesperado: %v", err)
	}
	if err := ValidateNCM("6109100"); !errors.Is(err, ErrInvalidNCM) {
		t.Errorf("erro = %v, esperado ErrInvalidNCM", err)
	}
}

func TestValidateCFOP(t *testing.T) {
	valid := []string{"5102", "1102", "7102"}
	for _, cfop := range valid {
		if err := ValidateCFOP(cfop); err != nil {
			t.Errorf("ValidateCFOP(%q) = %v, esperado nil", cfop, err)
		}
	}

	invalid := []string{"510", "0102", "8102", "51020"}
	for _, cfop := range invalid {
		if err := ValidateCFOP(cfop); !errors.Is(err, ErrInvalidCFOP) {
			t.Errorf("ValidateCFOP(%q) = %v, esperado ErrInvalidCFOP", cfop, err)
		}
	}
}

func TestFormat(t *testing.T) {
	if got := FormatCNPJ("11222333000181"); got != "11.222.333/0001-81" {
		t.Errorf("FormatCNPJ = %s", got)
	}
	if got := FormatCPF("52998224725"); got != "529.982.247-25" {
		t.Errorf("FormatCPF = %s", got)
	}
	if got := FormatCEP("01310100"); got != "01310-100" {
		t.Errorf("FormatCEP = %s", got)
	}

	// Tamanho inesperado é devolvido apenas com os dígitos
	if got := FormatCNPJ("123"); got != "123" {
		t.Errorf("FormatCNPJ(123) = %s", got)
	}
}

func TestOnlyDigits(t *testing.T) {
	if got := OnlyDigits("11.222.333/0001-81"); got != "11222333000181" {
		t.Errorf("OnlyDigits = %s", got)
	}
}
