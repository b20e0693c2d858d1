package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deppfellow/dictionary-api/internal/model"
	"github.com/deppfellow/dictionary-api/internal/query"
)

// PostgresExampleRepository stores examples in the "examples" table.
type PostgresExampleRepository struct {
	pool *pgxpool.Pool
}

var _ ExampleRepository = (*PostgresExampleRepository)(nil)

const exampleColumns = `id::text AS id, igbo, english, associated_words::text[] AS associated_words,
	pronunciation, created_at, updated_at`

type exampleRow struct {
	ID              string    `db:"id"`
	Igbo            string    `db:"igbo"`
	English         string    `db:"english"`
	AssociatedWords []string  `db:"associated_words"`
	Pronunciation   string    `db:"pronunciation"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func NewPostgresExampleRepository(pool *pgxpool.Pool) *PostgresExampleRepository {
	return &PostgresExampleRepository{pool: pool}
}

func (r *PostgresExampleRepository) FindExamples(ctx context.Context, filter query.Filter, page query.Page) ([]model.Example, int64, error) {
	where, args, err := toSQL(filter)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.pool.QueryRow(ctx, "SELECT count(*) FROM examples WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count examples: %w", err)
	}
	if total == 0 {
		return []model.Example{}, 0, nil
	}

	n := len(args)
	stmt := fmt.Sprintf(`
		SELECT %s
		FROM examples
		WHERE %s
		ORDER BY created_at, id
		OFFSET $%d LIMIT $%d`, exampleColumns, where, n+1, n+2)

	examples, err := r.query(ctx, stmt, append(args, page.Skip, page.Limit)...)
	if err != nil {
		return nil, 0, err
	}
	return examples, total, nil
}

func (r *PostgresExampleRepository) GetExampleByID(ctx context.Context, id string) (*model.Example, error) {
	if err := validUUID(id); err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, "SELECT "+exampleColumns+" FROM examples WHERE id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get example %q: %w", id, err)
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[exampleRow])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to collect example %q: %w", id, err)
	}

	example := row.toModel()
	return &example, nil
}

func (r *PostgresExampleRepository) GetExamplesByIDs(ctx context.Context, ids []string) ([]model.Example, error) {
	if len(ids) == 0 {
		return []model.Example{}, nil
	}
	if err := validUUIDs(ids); err != nil {
		return nil, err
	}

	examples, err := r.query(ctx, "SELECT "+exampleColumns+" FROM examples WHERE id = ANY($1::uuid[])", ids)
	if err != nil {
		return nil, err
	}
	return orderByIDs(examples, ids), nil
}

func (r *PostgresExampleRepository) CreateExample(ctx context.Context, example *model.Example) (*model.Example, error) {
	if err := validUUIDs(example.AssociatedWords); err != nil {
		return nil, err
	}

	stmt := `
		INSERT INTO examples (igbo, english, associated_words, pronunciation)
		VALUES ($1, $2, $3::uuid[], $4)
		RETURNING ` + exampleColumns

	rows, err := r.pool.Query(ctx, stmt,
		example.Igbo,
		example.English,
		nonNil(example.AssociatedWords),
		example.Pronunciation,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert example: %w", err)
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[exampleRow])
	if err != nil {
		return nil, fmt.Errorf("failed to collect created example: %w", err)
	}

	created := row.toModel()
	return &created, nil
}

func (r *PostgresExampleRepository) query(ctx context.Context, stmt string, args ...any) ([]model.Example, error) {
	rows, err := r.pool.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query examples: %w", err)
	}

	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[exampleRow])
	if err != nil {
		return nil, fmt.Errorf("failed to collect examples: %w", err)
	}

	examples := make([]model.Example, len(collected))
	for i, row := range collected {
		examples[i] = row.toModel()
	}
	return examples, nil
}

func (e exampleRow) toModel() model.Example {
	return model.Example{
		Base: model.Base{
			ID:        e.ID,
			CreatedAt: e.CreatedAt,
			UpdatedAt: e.UpdatedAt,
		},
		Igbo:            e.Igbo,
		English:         e.English,
		AssociatedWords: nonNil(e.AssociatedWords),
		Pronunciation:   e.Pronunciation,
	}
}
