package nfe

import (
	"context"
)

// DocumentRepository define a interface para persistência dos documentos gerados
type DocumentRepository interface {
	// Create persiste um documento gerado
	Create(ctx context.Context, doc *Document) error

	// FindByID busca um documento pelo ID
	FindByID(ctx context.Context, id string) (*Document, error)

	// FindByAccessKey busca um documento pela chave de acesso
	FindByAccessKey(ctx context.Context, key string) (*Document, error)

	// List lista os documentos gerados com paginação, do mais recente para o mais antigo
	List(ctx context.Context, limit, offset int) ([]*Document, error)

	// Count retorna o total de documentos gerados
	Count(ctx context.Context) (int, error)

	// Delete remove um documento
	Delete(ctx context.Context, id string) error
}
