package nfe

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Document representa uma NF-e já gerada e persistida: a chave de acesso,
// os dados de identificação usados para consulta e o XML completo
type Document struct {
	ID          string      `json:"id"`
	AccessKey   string      `json:"access_key"`
	Series      int         `json:"series"`
	Number      int         `json:"number"`
	Environment Environment `json:"environment"`
	IssuerCNPJ  string      `json:"issuer_cnpj"`
	Recipient   string      `json:"recipient"`
	TotalValue  string      `json:"total_value"`
	XML         string      `json:"xml,omitempty"`
	IssuedAt    time.Time   `json:"issued_at"`
	CreatedAt   time.Time   `json:"created_at"`
}

// NewDocument cria o registro de um XML gerado
func NewDocument(key AccessKey, invoice *NFe, xml string) (*Document, error) {
	if len(key) != 44 {
		return nil, ErrInvalidAccessKey
	}
	if xml == "" {
		return nil, errors.New("XML gerado não pode estar vazio")
	}

	return &Document{
		ID:          uuid.New().String(),
		AccessKey:   key.String(),
		Series:      invoice.Identification.Series,
		Number:      invoice.Identification.Number,
		Environment: invoice.Identification.Environment,
		IssuerCNPJ:  invoice.Issuer.CNPJ,
		Recipient:   invoice.Recipient.Name,
		TotalValue:  invoice.Totals.InvoiceValue.StringFixed(2),
		XML:         xml,
		IssuedAt:    invoice.Identification.IssuedAt,
		CreatedAt:   time.Now(),
	}, nil
}
