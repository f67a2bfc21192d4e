package leads

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// rowQuerier is the subset of pgxpool.Pool the repository needs.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const insertLeadSQL = `
	INSERT INTO leads (name, email, business_name, contact_number)
	VALUES ($1, $2, $3, $4)
	RETURNING id::text, created_at
`

// PostgresRepository stores leads in the relational database.
type PostgresRepository struct {
	db     rowQuerier
	tracer trace.Tracer
}

// NewPostgresRepository initializes a repo backed by a pgx pool.
func NewPostgresRepository(db rowQuerier) *PostgresRepository {
	if db == nil {
		panic("leads: pgx pool required")
	}
	return &PostgresRepository{
		db:     db,
		tracer: otel.Tracer("aivora.internal.leads"),
	}
}

// Create inserts one row and returns it with the database-assigned id and timestamp.
func (r *PostgresRepository) Create(ctx context.Context, in CreateLeadInput) (*Lead, error) {
	ctx, span := r.tracer.Start(ctx, "leads.insert", trace.WithAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("db.sql.table", "leads"),
	))
	defer span.End()

	lead := &Lead{
		Name:          in.Name,
		Email:         in.Email,
		BusinessName:  in.BusinessName,
		ContactNumber: in.ContactNumber,
	}
	if err := r.db.QueryRow(ctx, insertLeadSQL,
		in.Name,
		in.Email,
		in.BusinessName,
		in.ContactNumber,
	).Scan(&lead.ID, &lead.CreatedAt); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		return nil, fmt.Errorf("leads: insert failed: %w", err)
	}
	span.SetAttributes(attribute.String("lead.id", lead.ID))
	return lead, nil
}
