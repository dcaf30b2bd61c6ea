package dto

import (
	"github.com/hugohenrick/gerador-nfe/internal/domain/fiscal"
	"github.com/hugohenrick/gerador-nfe/internal/domain/nfe"
)

// FiscalConfigRequest representa os dados para atualizar a configuração fiscal
type FiscalConfigRequest struct {
	Series             int             `json:"series" binding:"required,min=1"`
	NextNumber         int             `json:"next_number" binding:"required,min=1"`
	Environment        nfe.Environment `json:"environment" binding:"required"`
	CertificateID      string          `json:"certificate_id,omitempty"`
	ContingencyEnabled bool            `json:"contingency_enabled"`
}

// FiscalConfigResponse representa a resposta com a configuração fiscal
type FiscalConfigResponse struct {
	ID                 string          `json:"id"`
	Series             int             `json:"series"`
	NextNumber         int             `json:"next_number"`
	Environment        nfe.Environment `json:"environment"`
	CertificateID      string          `json:"certificate_id,omitempty"`
	ContingencyEnabled bool            `json:"contingency_enabled"`
}

// NewFiscalConfigResponse converte a configuração do domínio para o DTO
func NewFiscalConfigResponse(config *fiscal.Configuration) FiscalConfigResponse {
	return FiscalConfigResponse{
		ID:                 config.ID,
		Series:             config.Series,
		NextNumber:         config.NextNumber,
		Environment:        config.Environment,
		CertificateID:      config.CertificateID,
		ContingencyEnabled: config.ContingencyEnabled,
	}
}
