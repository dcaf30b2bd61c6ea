package dto

import (
	"time"

	"github.com/hugohenrick/gerador-nfe/internal/domain/nfe"
)

// NFeRequest representa o modelo de NF-e recebido para geração de XML. Os
// blocos usam os mesmos registros do domínio: são structs planas com tags
// JSON, sem comportamento próprio.
type NFeRequest struct {
	Identification nfe.Identification        `json:"identification"`
	Issuer         nfe.Issuer                `json:"issuer" binding:"required"`
	Recipient      nfe.Recipient             `json:"recipient" binding:"required"`
	Items          []nfe.Item                `json:"items" binding:"required,min=1"`
	Transport      nfe.Transport             `json:"transport"`
	Billing        nfe.Billing               `json:"billing"`
	Payments       []nfe.Payment             `json:"payments"`
	AdditionalInfo nfe.AdditionalInfo        `json:"additional_info"`
	Protocol       nfe.AuthorizationProtocol `json:"protocol"`

	// Quando verdadeiro, o valor total e os impostos de cada item são
	// recalculados a partir de quantidade, valor unitário e alíquotas
	CalculateItemTaxes bool `json:"calculate_item_taxes"`
}

// ToDomain converte a requisição no modelo de domínio, renumerando os
// itens, preenchendo os códigos omitidos com os padrões do layout e
// recalculando os totais
func (r *NFeRequest) ToDomain() *nfe.NFe {
	invoice := nfe.NewNFe()

	if r.Identification.Model != "" {
		invoice.Identification = r.Identification
	} else if r.Issuer.Address.State != "" {
		// Sem o bloco de identificação, o cUF é derivado da UF do emitente
		invoice.Identification.StateCode = ""
	}
	invoice.Issuer = r.Issuer
	invoice.Recipient = r.Recipient
	invoice.Transport = r.Transport
	invoice.Billing = r.Billing
	invoice.Payments = r.Payments
	invoice.AdditionalInfo = r.AdditionalInfo
	invoice.Protocol = r.Protocol

	for _, item := range r.Items {
		if r.CalculateItemTaxes {
			item.CalculateTaxes()
		}
		invoice.AddItem(item)
	}
	invoice.FillDefaults()
	invoice.CalculateTotals()

	return invoice
}

// GenerateNFeResponse representa a resposta da geração de uma NF-e
type GenerateNFeResponse struct {
	ID        string `json:"id"`
	AccessKey string `json:"access_key"`
	Series    int    `json:"series"`
	Number    int    `json:"number"`
	XML       string `json:"xml"`
}

// DocumentResponse representa os metadados de um documento gerado
type DocumentResponse struct {
	ID          string    `json:"id"`
	AccessKey   string    `json:"access_key"`
	Series      int       `json:"series"`
	Number      int       `json:"number"`
	Environment string    `json:"environment"`
	IssuerCNPJ  string    `json:"issuer_cnpj"`
	Recipient   string    `json:"recipient"`
	TotalValue  string    `json:"total_value"`
	IssuedAt    time.Time `json:"issued_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewDocumentResponse converte um documento do domínio para o DTO de resposta
func NewDocumentResponse(doc *nfe.Document) DocumentResponse {
	return DocumentResponse{
		ID:          doc.ID,
		AccessKey:   doc.AccessKey,
		Series:      doc.Series,
		Number:      doc.Number,
		Environment: string(doc.Environment),
		IssuerCNPJ:  doc.IssuerCNPJ,
		Recipient:   doc.Recipient,
		TotalValue:  doc.TotalValue,
		IssuedAt:    doc.IssuedAt,
		CreatedAt:   doc.CreatedAt,
	}
}

// DocumentListResponse representa uma listagem paginada de documentos
type DocumentListResponse struct {
	Documents []DocumentResponse `json:"documents"`
	Meta      ListMeta           `json:"meta"`
}

// NewDocumentListResponse monta a resposta de listagem
func NewDocumentListResponse(docs []*nfe.Document, meta ListMeta) DocumentListResponse {
	responses := make([]DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		responses = append(responses, NewDocumentResponse(doc))
	}
	return DocumentListResponse{Documents: responses, Meta: meta}
}
