// Package memory provides an in-memory item.Repository used by tests and
// for running the service without a database.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/artem13815/stockchat/pkg/item"
)

// ItemRepository keeps items in a slice to preserve insertion order, matching
// the Postgres repository's ordering contract.
type ItemRepository struct {
	mu    sync.RWMutex
	items []item.StockItem
}

func NewItemRepository(seed ...item.StockItem) *ItemRepository {
	r := &ItemRepository{}
	for _, it := range seed {
		r.items = append(r.items, cloneItem(it))
	}
	return r
}

func (r *ItemRepository) Search(_ context.Context, term string) ([]item.StockItem, error) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return []item.StockItem{}, nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := []item.StockItem{}
	for _, it := range r.items {
		if matches(it, term) {
			res = append(res, cloneItem(it))
		}
	}
	return res, nil
}

func matches(it item.StockItem, lowered string) bool {
	if strings.Contains(strings.ToLower(it.Name), lowered) ||
		strings.Contains(strings.ToLower(it.Description), lowered) ||
		strings.Contains(strings.ToLower(it.Category), lowered) {
		return true
	}
	for _, kw := range it.Keywords {
		if strings.Contains(strings.ToLower(kw), lowered) {
			return true
		}
	}
	return false
}

func (r *ItemRepository) GetByCode(_ context.Context, code string) (item.StockItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, it := range r.items {
		if it.Code == code {
			return cloneItem(it), nil
		}
	}
	return item.StockItem{}, item.ErrNotFound
}

func (r *ItemRepository) GetAll(_ context.Context) ([]item.StockItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]item.StockItem, 0, len(r.items))
	for _, it := range r.items {
		res = append(res, cloneItem(it))
	}
	return res, nil
}

func (r *ItemRepository) Add(_ context.Context, it item.StockItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, have := range r.items {
		if have.Code == it.Code {
			return item.ErrDuplicateCode
		}
	}
	r.items = append(r.items, cloneItem(it))
	return nil
}

func (r *ItemRepository) Update(_ context.Context, code string, upd item.Update) (item.StockItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, have := range r.items {
		if have.Code != code {
			continue
		}
		if upd.Name != nil {
			have.Name = *upd.Name
		}
		if upd.Description != nil {
			have.Description = *upd.Description
		}
		if upd.Category != nil {
			have.Category = *upd.Category
		}
		if upd.Unit != nil {
			have.Unit = *upd.Unit
		}
		if upd.Price != nil {
			have.Price = *upd.Price
		}
		if upd.Keywords != nil {
			have.Keywords = append([]string(nil), (*upd.Keywords)...)
		}
		r.items[i] = have
		return cloneItem(have), nil
	}
	return item.StockItem{}, item.ErrNotFound
}

func (r *ItemRepository) Delete(_ context.Context, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, have := range r.items {
		if have.Code == code {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return item.ErrNotFound
}

func cloneItem(it item.StockItem) item.StockItem {
	it.Keywords = append([]string(nil), it.Keywords...)
	return it
}
