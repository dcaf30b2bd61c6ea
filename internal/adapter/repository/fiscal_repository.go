package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hugohenrick/gerador-nfe/internal/domain/fiscal"
	"github.com/hugohenrick/gerador-nfe/internal/domain/nfe"
)

// ErrConfigNotFound indica que a configuração fiscal ainda não foi criada
var ErrConfigNotFound = errors.New("configuração fiscal não encontrada")

// FiscalRepository implementa a interface fiscal.Repository
type FiscalRepository struct {
	db *pgxpool.Pool
}

// NewFiscalRepository cria uma nova instância de FiscalRepository
func NewFiscalRepository(db *pgxpool.Pool) fiscal.Repository {
	return &FiscalRepository{
		db: db,
	}
}

// Save implementa o método Save da interface fiscal.Repository
func (r *FiscalRepository) Save(ctx context.Context, config *fiscal.Configuration) error {
	query := `
		INSERT INTO fiscal_configurations (
			id, series, next_number, environment, certificate_id,
			contingency_enabled, created_at, updated_at
		) VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			series = EXCLUDED.series,
			next_number = EXCLUDED.next_number,
			environment = EXCLUDED.environment,
			certificate_id = EXCLUDED.certificate_id,
			contingency_enabled = EXCLUDED.contingency_enabled,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, query,
		config.ID, config.Series, config.NextNumber, string(config.Environment),
		config.CertificateID, config.ContingencyEnabled,
		config.CreatedAt, config.UpdatedAt)

	if err != nil {
		return fmt.Errorf("falha ao salvar configuração fiscal: %w", err)
	}

	return nil
}

// Get implementa o método Get da interface fiscal.Repository
func (r *FiscalRepository) Get(ctx context.Context) (*fiscal.Configuration, error) {
	query := `
		SELECT id, series, next_number, environment, COALESCE(certificate_id::text, ''),
		       contingency_enabled, created_at, updated_at
		FROM fiscal_configurations
		ORDER BY created_at
		LIMIT 1
	`

	var config fiscal.Configuration
	var environment string

	err := r.db.QueryRow(ctx, query).Scan(&config.ID, &config.Series, &config.NextNumber,
		&environment, &config.CertificateID, &config.ContingencyEnabled,
		&config.CreatedAt, &config.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("falha ao buscar configuração fiscal: %w", err)
	}

	config.Environment = nfe.Environment(environment)
	return &config, nil
}

// NextNFeNumber implementa o método NextNFeNumber da interface fiscal.Repository.
// O incremento acontece na mesma instrução para evitar corrida entre emissões
// concorrentes.
func (r *FiscalRepository) NextNFeNumber(ctx context.Context) (int, error) {
	query := `
		UPDATE fiscal_configurations
		SET next_number = next_number + 1, updated_at = NOW()
		WHERE id = (SELECT id FROM fiscal_configurations ORDER BY created_at LIMIT 1)
		RETURNING next_number - 1
	`

	var number int
	err := r.db.QueryRow(ctx, query).Scan(&number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrConfigNotFound
		}
		return 0, fmt.Errorf("falha ao obter próximo número de NF-e: %w", err)
	}

	return number, nil
}
