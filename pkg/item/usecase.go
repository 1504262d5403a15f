package item

import (
	"context"
	"strings"
)

// UseCase exposes catalog administration over the repository.
type UseCase interface {
	Search(ctx context.Context, term string) ([]StockItem, error)
	GetByCode(ctx context.Context, code string) (StockItem, error)
	List(ctx context.Context) ([]StockItem, error)
	Add(ctx context.Context, it StockItem) (StockItem, error)
	Update(ctx context.Context, code string, upd Update) (StockItem, error)
	Delete(ctx context.Context, code string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Search(ctx context.Context, term string) ([]StockItem, error) {
	return s.repo.Search(ctx, term)
}

func (s *service) GetByCode(ctx context.Context, code string) (StockItem, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return StockItem{}, ErrNotFound
	}
	return s.repo.GetByCode(ctx, code)
}

func (s *service) List(ctx context.Context) ([]StockItem, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) Add(ctx context.Context, it StockItem) (StockItem, error) {
	it.Code = strings.TrimSpace(it.Code)
	if err := validate(it); err != nil {
		return StockItem{}, err
	}
	if it.Keywords == nil {
		it.Keywords = []string{}
	}
	if err := s.repo.Add(ctx, it); err != nil {
		return StockItem{}, err
	}
	return it, nil
}

func (s *service) Update(ctx context.Context, code string, upd Update) (StockItem, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return StockItem{}, ErrNotFound
	}
	if upd.Price != nil && *upd.Price < 0 {
		return StockItem{}, ErrValidation("price must be non-negative")
	}
	return s.repo.Update(ctx, code, upd)
}

func (s *service) Delete(ctx context.Context, code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, code)
}

// validate enforces the invariants an item must satisfy before persistence.
func validate(it StockItem) error {
	if it.Code == "" {
		return ErrValidation("code is required")
	}
	if strings.TrimSpace(it.Name) == "" {
		return ErrValidation("name is required")
	}
	if it.Price < 0 {
		return ErrValidation("price must be non-negative")
	}
	return nil
}
