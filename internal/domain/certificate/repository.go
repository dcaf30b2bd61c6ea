package certificate

import (
	"context"
)

// Repository define a interface para operações de repositório de certificados digitais
type Repository interface {
	// Create cria um novo certificado digital
	Create(ctx context.Context, cert *Certificate) error

	// FindByID busca um certificado pelo ID
	FindByID(ctx context.Context, id string) (*Certificate, error)

	// FindActive busca o certificado ativo
	FindActive(ctx context.Context) (*Certificate, error)

	// List lista os certificados cadastrados com paginação
	List(ctx context.Context, limit, offset int) ([]*Certificate, error)

	// Delete remove um certificado
	Delete(ctx context.Context, id string) error

	// Activate ativa um certificado e desativa os demais
	Activate(ctx context.Context, id string) error
}
