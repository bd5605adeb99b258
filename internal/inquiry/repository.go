package inquiry

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, i *Inquiry) error
	GetByID(ctx context.Context, id string) (*Inquiry, error)
	List(ctx context.Context, filter Filter) ([]*Inquiry, int, error)
	SetResponse(ctx context.Context, id, response string) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, i *Inquiry) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.inquiries").
		Columns("name", "email", "message").
		Values(i.Name, i.Email, i.Message).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create inquiry query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&i.ID, &i.CreatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Inquiry, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "name", "email", "message", "response", "responded_at", "created_at",
	).
		From("public.inquiries").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get inquiry query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var i Inquiry
	if err := row.Scan(
		&i.ID, &i.Name, &i.Email, &i.Message, &i.Response, &i.RespondedAt, &i.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get inquiry failed: %w", err)
	}
	return &i, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Inquiry, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "name", "email", "message", "response", "responded_at", "created_at",
		"count(*) OVER() as total_count",
	).
		From("public.inquiries")

	if filter.Unanswered {
		query = query.Where(squirrel.Eq{"response": nil})
	}

	query = query.OrderBy("created_at DESC")

	// Pagination
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list inquiries query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list inquiries failed: %w", err)
	}
	defer rows.Close()

	var result []*Inquiry
	var total int

	for rows.Next() {
		var i Inquiry
		if err := rows.Scan(
			&i.ID, &i.Name, &i.Email, &i.Message, &i.Response, &i.RespondedAt, &i.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan inquiry failed: %w", err)
		}
		result = append(result, &i)
	}

	return result, total, nil
}

func (r *pgxRepository) SetResponse(ctx context.Context, id, response string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.inquiries").
		Set("response", response).
		Set("responded_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build respond inquiry query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("respond inquiry failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.inquiries").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete inquiry query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete inquiry failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
