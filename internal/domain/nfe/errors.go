package nfe

import "errors"

// Erros de validação do modelo
var (
	ErrNoItems                  = errors.New("a NF-e deve ter pelo menos um item")
	ErrMissingItemCode          = errors.New("item sem código de produto")
	ErrMissingItemDescription   = errors.New("item sem descrição")
	ErrMissingIssuerCNPJ        = errors.New("CNPJ do emitente é obrigatório")
	ErrMissingRecipientName     = errors.New("razão social do destinatário é obrigatória")
	ErrRecipientDocumentBoth    = errors.New("destinatário não pode ter CNPJ e CPF ao mesmo tempo")
	ErrRecipientDocumentMissing = errors.New("destinatário deve ter CNPJ ou CPF")
	ErrMalformedIdentifier      = errors.New("identificador fiscal com formato inválido")
	ErrInvalidAccessKey         = errors.New("chave de acesso inválida")
)
