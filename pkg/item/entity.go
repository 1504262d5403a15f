package item

import (
	"context"
	"errors"
)

// StockItem is one inventory record. Code is the human-readable primary key
// used for lookups and updates; it never changes after creation.
type StockItem struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Unit        string   `json:"unit"`
	Price       float64  `json:"price"`
	Keywords    []string `json:"keywords"`
}

// Update carries the partial fields of an item update. Nil means "keep the
// stored value". Code is intentionally absent: it is immutable.
type Update struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Unit        *string   `json:"unit"`
	Price       *float64  `json:"price"`
	Keywords    *[]string `json:"keywords"`
}

var (
	// ErrNotFound: no item with the requested code.
	ErrNotFound = errors.New("item not found")
	// ErrDuplicateCode: an item with the same code already exists.
	ErrDuplicateCode = errors.New("item code already exists")
)

// ErrValidation rejects malformed items before they reach the store.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

// Repository is the port to the stock item store.
//
// Search performs a case-insensitive substring match of term against name,
// description, category and each keyword; an item matches if any field
// matches. Results come back in store (insertion) order; no relevance
// ranking is applied or promised. A blank term matches nothing.
type Repository interface {
	Search(ctx context.Context, term string) ([]StockItem, error)
	GetByCode(ctx context.Context, code string) (StockItem, error)
	GetAll(ctx context.Context) ([]StockItem, error)
	Add(ctx context.Context, it StockItem) error
	Update(ctx context.Context, code string, upd Update) (StockItem, error)
	Delete(ctx context.Context, code string) error
}
