package certificate

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Certificate representa um certificado digital A1 (PKCS#12) cadastrado
// para a emissão de NF-e. O serviço apenas guarda e inspeciona o
// certificado; a assinatura do XML fica fora do escopo.
type Certificate struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Subject         string    `json:"subject"`
	Issuer          string    `json:"issuer"`
	CertificateData []byte    `json:"-"` // Não expor ao serializar para JSON
	Password        string    `json:"-"` // Não expor ao serializar para JSON
	NotBefore       time.Time `json:"not_before"`
	ExpirationDate  time.Time `json:"expiration_date"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewCertificate cria um novo certificado digital
func NewCertificate(name, subject, issuer string, notBefore, expirationDate time.Time) (*Certificate, error) {
	if name == "" {
		return nil, errors.New("nome do certificado é obrigatório")
	}
	if expirationDate.Before(time.Now()) {
		return nil, errors.New("data de validade do certificado já passou")
	}

	now := time.Now()
	return &Certificate{
		ID:             uuid.New().String(),
		Name:           name,
		Subject:        subject,
		Issuer:         issuer,
		NotBefore:      notBefore,
		ExpirationDate: expirationDate,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// StoreCertificateData armazena os dados binários do certificado
func (c *Certificate) StoreCertificateData(data []byte, password string) error {
	if len(data) == 0 {
		return errors.New("dados do certificado não podem estar vazios")
	}
	if password == "" {
		return errors.New("senha do certificado é obrigatória")
	}

	c.CertificateData = data
	c.Password = password
	c.UpdatedAt = time.Now()
	return nil
}

// Activate ativa o certificado
func (c *Certificate) Activate() {
	c.IsActive = true
	c.UpdatedAt = time.Now()
}

// Deactivate desativa o certificado
func (c *Certificate) Deactivate() {
	c.IsActive = false
	c.UpdatedAt = time.Now()
}

// IsExpired verifica se o certificado está expirado
func (c *Certificate) IsExpired() bool {
	return time.Now().After(c.ExpirationDate)
}

// DaysToExpire retorna quantos dias faltam para o certificado expirar
func (c *Certificate) DaysToExpire() int {
	return int(time.Until(c.ExpirationDate).Hours() / 24)
}
