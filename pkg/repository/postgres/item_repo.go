package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/stockchat/pkg/item"
)

// ItemRepository stores stock items in a single Postgres table.
// The serial id column preserves insertion order, which is the order
// Search and GetAll return rows in.
type ItemRepository struct {
	pool *pgxpool.Pool
}

func NewItemRepository(pool *pgxpool.Pool) (*ItemRepository, error) {
	r := &ItemRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ItemRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS stock_items (
	id BIGINT GENERATED ALWAYS AS IDENTITY,
	code TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL DEFAULT '',
	unit TEXT NOT NULL DEFAULT '',
	price NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (price >= 0),
	keywords TEXT[] NOT NULL DEFAULT '{}'
);
`)
	return err
}

// likeEscape escapes LIKE wildcards so the user's term is matched literally.
func likeEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

func (r *ItemRepository) Search(ctx context.Context, term string) ([]item.StockItem, error) {
	if strings.TrimSpace(term) == "" {
		return []item.StockItem{}, nil
	}
	pattern := "%" + likeEscape(term) + "%"
	rows, err := r.pool.Query(ctx, `
SELECT code, name, description, category, unit, price, keywords
FROM stock_items
WHERE name ILIKE $1
   OR description ILIKE $1
   OR category ILIKE $1
   OR EXISTS (SELECT 1 FROM unnest(keywords) kw WHERE kw ILIKE $1)
ORDER BY id
`, pattern)
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *ItemRepository) GetByCode(ctx context.Context, code string) (item.StockItem, error) {
	row := r.pool.QueryRow(ctx, `
SELECT code, name, description, category, unit, price, keywords
FROM stock_items WHERE code = $1
`, code)
	it, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return item.StockItem{}, item.ErrNotFound
		}
		return item.StockItem{}, fmt.Errorf("get item: %w", err)
	}
	return it, nil
}

func (r *ItemRepository) GetAll(ctx context.Context) ([]item.StockItem, error) {
	rows, err := r.pool.Query(ctx, `
SELECT code, name, description, category, unit, price, keywords
FROM stock_items ORDER BY id
`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *ItemRepository) Add(ctx context.Context, it item.StockItem) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO stock_items (code, name, description, category, unit, price, keywords)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`, it.Code, it.Name, it.Description, it.Category, it.Unit, it.Price, it.Keywords)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return item.ErrDuplicateCode
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

func (r *ItemRepository) Update(ctx context.Context, code string, upd item.Update) (item.StockItem, error) {
	var kw []string
	if upd.Keywords != nil {
		kw = *upd.Keywords
	}
	row := r.pool.QueryRow(ctx, `
UPDATE stock_items SET
	name        = COALESCE($2, name),
	description = COALESCE($3, description),
	category    = COALESCE($4, category),
	unit        = COALESCE($5, unit),
	price       = COALESCE($6, price),
	keywords    = CASE WHEN $7 THEN $8 ELSE keywords END
WHERE code = $1
RETURNING code, name, description, category, unit, price, keywords
`, code, upd.Name, upd.Description, upd.Category, upd.Unit, upd.Price, upd.Keywords != nil, kw)
	it, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return item.StockItem{}, item.ErrNotFound
		}
		return item.StockItem{}, fmt.Errorf("update item: %w", err)
	}
	return it, nil
}

func (r *ItemRepository) Delete(ctx context.Context, code string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM stock_items WHERE code = $1`, code)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return item.ErrNotFound
	}
	return nil
}

// DeleteAll clears the table; used by cmd/seed before re-inserting samples.
func (r *ItemRepository) DeleteAll(ctx context.Context) (int64, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM stock_items`)
	if err != nil {
		return 0, fmt.Errorf("clear items: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// Count returns the number of stored items; used by cmd/dbcheck.
func (r *ItemRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM stock_items`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return n, nil
}

func scanItem(row pgx.Row) (item.StockItem, error) {
	var it item.StockItem
	if err := row.Scan(&it.Code, &it.Name, &it.Description, &it.Category, &it.Unit, &it.Price, &it.Keywords); err != nil {
		return item.StockItem{}, err
	}
	if it.Keywords == nil {
		it.Keywords = []string{}
	}
	return it, nil
}

func scanItems(rows pgx.Rows) ([]item.StockItem, error) {
	res := []item.StockItem{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
