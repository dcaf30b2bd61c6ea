package dto

import (
	"time"

	"github.com/hugohenrick/gerador-nfe/internal/domain/certificate"
)

// CertificateResponse representa a resposta com dados de um certificado digital
type CertificateResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Subject        string    `json:"subject"`
	Issuer         string    `json:"issuer"`
	NotBefore      time.Time `json:"not_before"`
	ExpirationDate time.Time `json:"expiration_date"`
	DaysToExpire   int       `json:"days_to_expire"`
	IsActive       bool      `json:"is_active"`
	IsExpired      bool      `json:"is_expired"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewCertificateResponse converte um certificado do domínio para o DTO
func NewCertificateResponse(cert *certificate.Certificate) CertificateResponse {
	return CertificateResponse{
		ID:             cert.ID,
		Name:           cert.Name,
		Subject:        cert.Subject,
		Issuer:         cert.Issuer,
		NotBefore:      cert.NotBefore,
		ExpirationDate: cert.ExpirationDate,
		DaysToExpire:   cert.DaysToExpire(),
		IsActive:       cert.IsActive,
		IsExpired:      cert.IsExpired(),
		CreatedAt:      cert.CreatedAt,
	}
}
