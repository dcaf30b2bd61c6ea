package fiscal

import (
	"context"
)

// Repository define a interface para persistência da configuração fiscal.
// O serviço trabalha com uma única configuração ativa.
type Repository interface {
	// Save cria ou atualiza a configuração fiscal
	Save(ctx context.Context, config *Configuration) error

	// Get retorna a configuração fiscal ativa
	Get(ctx context.Context) (*Configuration, error)

	// NextNFeNumber obtém e incrementa atomicamente o próximo número de NF-e
	NextNFeNumber(ctx context.Context) (int, error)
}
