package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository stores captured leads in Postgres.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a Postgres-backed lead repository.
func NewPostgres(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Insert appends a lead.
func (r *PostgresRepository) Insert(ctx context.Context, lead StoredLead) error {
	const query = `
		INSERT INTO captured_leads (
			id, name, city, budget, urgency, service_type, channel,
			quality_label, quality_score, scoring_mode, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.pool.Exec(ctx, query,
		lead.ID, lead.Name, lead.City, lead.Budget, lead.Urgency,
		lead.ServiceType, lead.Channel, lead.QualityLabel, lead.QualityScore,
		lead.ScoringMode, lead.CreatedAt,
	)
	return err
}

// List returns all stored leads in insertion order.
func (r *PostgresRepository) List(ctx context.Context) ([]StoredLead, error) {
	const query = `
		SELECT id, name, city, budget, urgency, service_type, channel,
		       quality_label, quality_score, scoring_mode, created_at
		FROM captured_leads
		ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []StoredLead
	for rows.Next() {
		var lead StoredLead
		if err := rows.Scan(
			&lead.ID, &lead.Name, &lead.City, &lead.Budget, &lead.Urgency,
			&lead.ServiceType, &lead.Channel, &lead.QualityLabel,
			&lead.QualityScore, &lead.ScoringMode, &lead.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, lead)
	}
	return out, rows.Err()
}

var _ Repository = (*PostgresRepository)(nil)
