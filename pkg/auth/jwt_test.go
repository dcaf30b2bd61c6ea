package auth

import (
	"errors"
	"testing"
)

func TestJWTServiceRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "segredo-de-teste")

	service, err := NewJWTService()
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	token, err := service.GenerateToken("operador")
	if err != nil {
		t.Fatalf("erro ao gerar token: %v", err)
	}

	claims, err := service.ValidateToken(token)
	if err != nil {
		t.Fatalf("erro ao validar token: %v", err)
	}
	if claims.Username != "operador" {
		t.Errorf("username = %s, esperado operador", claims.Username)
	}
}

func TestJWTServiceMissingKey(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	if _, err := NewJWTService(); !errors.Is(err, ErrMissingJWTKey) {
		t.Errorf("erro = %v, esperado ErrMissingJWTKey", err)
	}
}

func TestJWTServiceInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "segredo-de-teste")

	service, err := NewJWTService()
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if _, err := service.ValidateToken("token-invalido"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("erro = %v, esperado ErrInvalidToken", err)
	}

	// Token assinado com outro segredo
	t.Setenv("JWT_SECRET_KEY", "outro-segredo")
	other, err := NewJWTService()
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	foreign, err := other.GenerateToken("operador")
	if err != nil {
		t.Fatalf("erro ao gerar token: %v", err)
	}

	if _, err := service.ValidateToken(foreign); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("erro = %v, esperado ErrInvalidToken", err)
	}
}
