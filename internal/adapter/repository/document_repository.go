package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hugohenrick/gerador-nfe/internal/domain/nfe"
)

// DocumentRepository implementa a interface nfe.DocumentRepository
type DocumentRepository struct {
	db *pgxpool.Pool
}

// NewDocumentRepository cria uma nova instância de DocumentRepository
func NewDocumentRepository(db *pgxpool.Pool) nfe.DocumentRepository {
	return &DocumentRepository{
		db: db,
	}
}

// Create implementa o método Create da interface nfe.DocumentRepository
func (r *DocumentRepository) Create(ctx context.Context, doc *nfe.Document) error {
	query := `
		INSERT INTO documents (
			id, access_key, series, number, environment, issuer_cnpj,
			recipient, total_value, xml, issued_at, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		doc.ID, doc.AccessKey, doc.Series, doc.Number, string(doc.Environment),
		doc.IssuerCNPJ, doc.Recipient, doc.TotalValue, doc.XML,
		doc.IssuedAt, doc.CreatedAt)

	if err != nil {
		return fmt.Errorf("falha ao inserir documento: %w", err)
	}

	return nil
}

// FindByID implementa o método FindByID da interface nfe.DocumentRepository
func (r *DocumentRepository) FindByID(ctx context.Context, id string) (*nfe.Document, error) {
	query := `
		SELECT id, access_key, series, number, environment, issuer_cnpj,
		       recipient, total_value, xml, issued_at, created_at
		FROM documents
		WHERE id = $1
	`

	return r.scanDocument(r.db.QueryRow(ctx, query, id))
}

// FindByAccessKey implementa o método FindByAccessKey da interface nfe.DocumentRepository
func (r *DocumentRepository) FindByAccessKey(ctx context.Context, accessKey string) (*nfe.Document, error) {
	query := `
		SELECT id, access_key, series, number, environment, issuer_cnpj,
		       recipient, total_value, xml, issued_at, created_at
		FROM documents
		WHERE access_key = $1
	`

	return r.scanDocument(r.db.QueryRow(ctx, query, accessKey))
}

// List implementa o método List da interface nfe.DocumentRepository
func (r *DocumentRepository) List(ctx context.Context, limit, offset int) ([]*nfe.Document, error) {
	query := `
		SELECT id, access_key, series, number, environment, issuer_cnpj,
		       recipient, total_value, xml, issued_at, created_at
		FROM documents
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar documentos: %w", err)
	}
	defer rows.Close()

	docs := make([]*nfe.Document, 0)
	for rows.Next() {
		doc, err := r.scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("falha ao percorrer documentos: %w", err)
	}

	return docs, nil
}

// Count implementa o método Count da interface nfe.DocumentRepository
func (r *DocumentRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM documents").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("falha ao contar documentos: %w", err)
	}
	return count, nil
}

// Delete implementa o método Delete da interface nfe.DocumentRepository
func (r *DocumentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM documents WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("falha ao remover documento: %w", err)
	}
	if result.RowsAffected() == 0 {
		return errors.New("documento não encontrado")
	}
	return nil
}

// scanDocument preenche um documento a partir de uma linha do banco
func (r *DocumentRepository) scanDocument(row pgx.Row) (*nfe.Document, error) {
	var doc nfe.Document
	var environment string

	err := row.Scan(&doc.ID, &doc.AccessKey, &doc.Series, &doc.Number, &environment,
		&doc.IssuerCNPJ, &doc.Recipient, &doc.TotalValue, &doc.XML,
		&doc.IssuedAt, &doc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("documento não encontrado")
		}
		return nil, fmt.Errorf("falha ao buscar documento: %w", err)
	}

	doc.Environment = nfe.Environment(environment)
	return &doc, nil
}
