package nfe

import (
	"errors"
	"testing"
	"time"
)

func identificationFixture() Identification {
	ide := NewIdentification()
	ide.StateCode = "35"
	ide.RandomCode = "00000001"
	ide.Series = 1
	ide.Number = 1
	ide.EmissionType = "1"
	ide.IssuedAt = time.Date(2023, 12, 15, 10, 30, 0, 0, time.UTC)
	return ide
}

func TestGenerateAccessKey(t *testing.T) {
	key, err := GenerateAccessKey(identificationFixture(), "12.345.678/0001-95")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	want := "35231212345678000195550010000000011000000013"
	if key.String() != want {
		t.Errorf("chave = %s, esperado %s", key, want)
	}
	if key.CheckDigit() != "3" {
		t.Errorf("dígito verificador = %s, esperado 3", key.CheckDigit())
	}
}

func TestGenerateAccessKeyFields(t *testing.T) {
	key, err := GenerateAccessKey(identificationFixture(), "12345678000195")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	s := key.String()
	if len(s) != 44 {
		t.Fatalf("chave com %d dígitos, esperado 44", len(s))
	}

	fields := []struct {
		name string
		got  string
		want string
	}{
		{"cUF", s[0:2], "35"},
		{"AAMM", s[2:6], "2312"},
		{"CNPJ", s[6:20], "12345678000195"},
		{"mod", s[20:22], "55"},
		{"serie", s[22:25], "001"},
		{"nNF", s[25:34], "000000001"},
		{"tpEmis", s[34:35], "1"},
		{"cNF", s[35:43], "00000001"},
	}
	for _, f := range fields {
		if f.got != f.want {
			t.Errorf("%s = %s, esperado %s", f.name, f.got, f.want)
		}
	}
}

func TestGenerateAccessKeyDeterministic(t *testing.T) {
	ide := identificationFixture()

	first, err := GenerateAccessKey(ide, "12345678000195")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	second, err := GenerateAccessKey(ide, "12345678000195")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if first != second {
		t.Errorf("chaves diferentes para a mesma identificação: %s e %s", first, second)
	}
}

func TestGenerateAccessKeyNormalization(t *testing.T) {
	ide := identificationFixture()
	ide.RandomCode = "123" // deve ser completado com zeros à esquerda

	key, err := GenerateAccessKey(ide, "12345678000195")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if got := key.String()[35:43]; got != "00000123" {
		t.Errorf("cNF = %s, esperado 00000123", got)
	}
}

func TestGenerateAccessKeyMalformedIdentifiers(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Identification)
		cnpj   string
	}{
		{"CNPJ vazio", func(ide *Identification) {}, ""},
		{"CNPJ longo demais", func(ide *Identification) {}, "123456780001951"},
		{"cNF longo demais", func(ide *Identification) { ide.RandomCode = "123456789" }, "12345678000195"},
		{"cUF sem dígitos", func(ide *Identification) { ide.StateCode = "SP" }, "12345678000195"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ide := identificationFixture()
			tt.mutate(&ide)

			if _, err := GenerateAccessKey(ide, tt.cnpj); !errors.Is(err, ErrMalformedIdentifier) {
				t.Errorf("erro = %v, esperado ErrMalformedIdentifier", err)
			}
		})
	}
}

func TestParseAccessKey(t *testing.T) {
	// Caso em que o resto da divisão é 0 ou 1 e o dígito cai em 0
	valid := "35240645723174000110550030001234561123456780"

	key, err := ParseAccessKey(valid)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if key.CheckDigit() != "0" {
		t.Errorf("dígito verificador = %s, esperado 0", key.CheckDigit())
	}
}

func TestParseAccessKeyInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"curta", "3523121234567800019555001"},
		{"caractere não numérico", "3523121234567800019555001000000001100000001X"},
		{"dígito verificador errado", "35231212345678000195550010000000011000000019"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseAccessKey(tt.key); !errors.Is(err, ErrInvalidAccessKey) {
				t.Errorf("erro = %v, esperado ErrInvalidAccessKey", err)
			}
		})
	}
}
