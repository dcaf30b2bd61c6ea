package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hugohenrick/gerador-nfe/internal/domain/certificate"
)

// CertificateRepository implementa a interface certificate.Repository
type CertificateRepository struct {
	db *pgxpool.Pool
}

// NewCertificateRepository cria uma nova instância de CertificateRepository
func NewCertificateRepository(db *pgxpool.Pool) certificate.Repository {
	return &CertificateRepository{
		db: db,
	}
}

// Create implementa o método Create da interface certificate.Repository
func (r *CertificateRepository) Create(ctx context.Context, cert *certificate.Certificate) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("falha ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	// Um único certificado fica ativo por vez
	if cert.IsActive {
		if _, err := tx.Exec(ctx, "UPDATE certificates SET is_active = false WHERE is_active = true"); err != nil {
			return fmt.Errorf("falha ao desativar certificados existentes: %w", err)
		}
	}

	query := `
		INSERT INTO certificates (
			id, name, subject, issuer, certificate_data, password,
			not_before, expiration_date, is_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err = tx.Exec(ctx, query,
		cert.ID, cert.Name, cert.Subject, cert.Issuer, cert.CertificateData,
		cert.Password, cert.NotBefore, cert.ExpirationDate, cert.IsActive,
		cert.CreatedAt, cert.UpdatedAt)
	if err != nil {
		return fmt.Errorf("falha ao inserir certificado: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("falha ao confirmar transação: %w", err)
	}

	return nil
}

// FindByID implementa o método FindByID da interface certificate.Repository
func (r *CertificateRepository) FindByID(ctx context.Context, id string) (*certificate.Certificate, error) {
	query := selectCertificate + " WHERE id = $1"
	return r.scanCertificate(r.db.QueryRow(ctx, query, id))
}

// FindActive implementa o método FindActive da interface certificate.Repository
func (r *CertificateRepository) FindActive(ctx context.Context) (*certificate.Certificate, error) {
	query := selectCertificate + " WHERE is_active = true LIMIT 1"
	return r.scanCertificate(r.db.QueryRow(ctx, query))
}

// List implementa o método List da interface certificate.Repository
func (r *CertificateRepository) List(ctx context.Context, limit, offset int) ([]*certificate.Certificate, error) {
	query := selectCertificate + " ORDER BY created_at DESC LIMIT $1 OFFSET $2"

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar certificados: %w", err)
	}
	defer rows.Close()

	certs := make([]*certificate.Certificate, 0)
	for rows.Next() {
		cert, err := r.scanCertificate(rows)
		if err != nil {
			return nil, err
		}
		certs = append(certs, cert)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("falha ao percorrer certificados: %w", err)
	}

	return certs, nil
}

// Delete implementa o método Delete da interface certificate.Repository
func (r *CertificateRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM certificates WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("falha ao remover certificado: %w", err)
	}
	if result.RowsAffected() == 0 {
		return errors.New("certificado não encontrado")
	}
	return nil
}

// Activate implementa o método Activate da interface certificate.Repository
func (r *CertificateRepository) Activate(ctx context.Context, id string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("falha ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "UPDATE certificates SET is_active = false, updated_at = NOW() WHERE is_active = true"); err != nil {
		return fmt.Errorf("falha ao desativar certificados existentes: %w", err)
	}

	result, err := tx.Exec(ctx, "UPDATE certificates SET is_active = true, updated_at = NOW() WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("falha ao ativar certificado: %w", err)
	}
	if result.RowsAffected() == 0 {
		return errors.New("certificado não encontrado")
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("falha ao confirmar transação: %w", err)
	}

	return nil
}

const selectCertificate = `
	SELECT id, name, subject, issuer, certificate_data, password,
	       not_before, expiration_date, is_active, created_at, updated_at
	FROM certificates
`

// scanCertificate preenche um certificado a partir de uma linha do banco
func (r *CertificateRepository) scanCertificate(row pgx.Row) (*certificate.Certificate, error) {
	var cert certificate.Certificate

	err := row.Scan(&cert.ID, &cert.Name, &cert.Subject, &cert.Issuer,
		&cert.CertificateData, &cert.Password, &cert.NotBefore,
		&cert.ExpirationDate, &cert.IsActive, &cert.CreatedAt, &cert.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("certificado não encontrado")
		}
		return nil, fmt.Errorf("falha ao buscar certificado: %w", err)
	}

	return &cert, nil
}
