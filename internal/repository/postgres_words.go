package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deppfellow/dictionary-api/internal/model"
	"github.com/deppfellow/dictionary-api/internal/query"
)

// PostgresWordRepository stores words in the "words" table.
type PostgresWordRepository struct {
	pool *pgxpool.Pool
}

var _ WordRepository = (*PostgresWordRepository)(nil)

const wordColumns = `id::text AS id, word, word_class, definitions, variations, stems, dialects,
	pronunciation, nsibidi, is_standard_igbo, examples::text[] AS examples, created_at, updated_at`

type wordRow struct {
	ID             string    `db:"id"`
	Word           string    `db:"word"`
	WordClass      string    `db:"word_class"`
	Definitions    []string  `db:"definitions"`
	Variations     []string  `db:"variations"`
	Stems          []string  `db:"stems"`
	Dialects       []byte    `db:"dialects"`
	Pronunciation  string    `db:"pronunciation"`
	Nsibidi        string    `db:"nsibidi"`
	IsStandardIgbo bool      `db:"is_standard_igbo"`
	Examples       []string  `db:"examples"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func NewPostgresWordRepository(pool *pgxpool.Pool) *PostgresWordRepository {
	return &PostgresWordRepository{pool: pool}
}

func (r *PostgresWordRepository) FindWords(ctx context.Context, filter query.Filter, page query.Page) ([]model.Word, int64, error) {
	where, args, err := toSQL(filter)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.pool.QueryRow(ctx, "SELECT count(*) FROM words WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count words: %w", err)
	}
	if total == 0 {
		return []model.Word{}, 0, nil
	}

	n := len(args)
	stmt := fmt.Sprintf(`
		SELECT %s
		FROM words
		WHERE %s
		ORDER BY word, id
		OFFSET $%d LIMIT $%d`, wordColumns, where, n+1, n+2)

	rows, err := r.pool.Query(ctx, stmt, append(args, page.Skip, page.Limit)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query words: %w", err)
	}

	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[wordRow])
	if err != nil {
		return nil, 0, fmt.Errorf("failed to collect words: %w", err)
	}

	words := make([]model.Word, len(collected))
	for i := range collected {
		if words[i], err = collected[i].toModel(); err != nil {
			return nil, 0, err
		}
	}
	return words, total, nil
}

func (r *PostgresWordRepository) GetWordByID(ctx context.Context, id string) (*model.Word, error) {
	if err := validUUID(id); err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, "SELECT "+wordColumns+" FROM words WHERE id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get word %q: %w", id, err)
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[wordRow])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to collect word %q: %w", id, err)
	}

	word, err := row.toModel()
	if err != nil {
		return nil, err
	}
	return &word, nil
}

func (r *PostgresWordRepository) CreateWord(ctx context.Context, word *model.Word) (*model.Word, error) {
	dialects, err := json.Marshal(nonNilDialects(word.Dialects))
	if err != nil {
		return nil, fmt.Errorf("failed to encode dialects: %w", err)
	}

	stmt := `
		INSERT INTO words (word, word_class, definitions, variations, stems, dialects,
			pronunciation, nsibidi, is_standard_igbo, examples)
		VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7, $8, $9, $10::uuid[])
		RETURNING ` + wordColumns

	rows, err := r.pool.Query(ctx, stmt,
		word.Word,
		word.WordClass,
		nonNil(word.Definitions),
		nonNil(word.Variations),
		nonNil(word.Stems),
		string(dialects),
		word.Pronunciation,
		word.Nsibidi,
		word.Attributes.IsStandardIgbo,
		nonNil(word.ExampleIDs),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert word: %w", err)
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[wordRow])
	if err != nil {
		return nil, fmt.Errorf("failed to collect created word: %w", err)
	}

	created, err := row.toModel()
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *PostgresWordRepository) SetWordExamples(ctx context.Context, id string, exampleIDs []string) error {
	if err := validUUID(id); err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx,
		"UPDATE words SET examples = $2::uuid[], updated_at = CURRENT_TIMESTAMP WHERE id = $1",
		id, nonNil(exampleIDs),
	)
	if err != nil {
		return fmt.Errorf("failed to set word examples %q: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresWordRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (w wordRow) toModel() (model.Word, error) {
	var dialects []model.Dialect
	if len(w.Dialects) > 0 {
		if err := json.Unmarshal(w.Dialects, &dialects); err != nil {
			return model.Word{}, fmt.Errorf("failed to decode dialects of word %s: %w", w.ID, err)
		}
	}

	return model.Word{
		Base: model.Base{
			ID:        w.ID,
			CreatedAt: w.CreatedAt,
			UpdatedAt: w.UpdatedAt,
		},
		Word:          w.Word,
		WordClass:     w.WordClass,
		Definitions:   nonNil(w.Definitions),
		Variations:    nonNil(w.Variations),
		Stems:         nonNil(w.Stems),
		Dialects:      nonNilDialects(dialects),
		Pronunciation: w.Pronunciation,
		Nsibidi:       w.Nsibidi,
		Attributes:    model.WordAttributes{IsStandardIgbo: w.IsStandardIgbo},
		ExampleIDs:    nonNil(w.Examples),
	}, nil
}

func validUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}

func validUUIDs(ids []string) error {
	for _, id := range ids {
		if err := validUUID(id); err != nil {
			return err
		}
	}
	return nil
}

func nonNilDialects(dialects []model.Dialect) []model.Dialect {
	if dialects == nil {
		return []model.Dialect{}
	}
	return dialects
}
