package chat

import (
	"context"

	"github.com/artem13815/stockchat/pkg/item"
)

// Retriever turns the newest user turn into a store query. The content is
// passed to the store verbatim: no rewriting, stemming or synonym expansion.
// Recall depends entirely on the substring and keyword coverage authored at
// data-entry time.
type Retriever struct {
	items item.Repository
}

func NewRetriever(items item.Repository) *Retriever { return &Retriever{items: items} }

// Retrieve searches the store with the last message's content and returns
// the candidates in store order.
func (r *Retriever) Retrieve(ctx context.Context, msgs []Message) ([]item.StockItem, error) {
	if len(msgs) == 0 {
		return nil, ErrEmptyConversation
	}
	return r.items.Search(ctx, msgs[len(msgs)-1].Content)
}
