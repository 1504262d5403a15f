package chat

import (
	"fmt"
	"strings"

	"github.com/artem13815/stockchat/pkg/item"
)

const (
	fallbackEmpty = "I couldn't find any matching items in our inventory."
	fallbackIntro = "Here are the items I found:"
)

// FormatFallback renders retrieved items as a deterministic, human-readable
// answer. It is the non-AI reply path used when the model call cannot be
// completed: pure, no I/O, byte-identical output for identical input.
func FormatFallback(items []item.StockItem) string {
	if len(items) == 0 {
		return fallbackEmpty
	}
	blocks := make([]string, len(items))
	for i, it := range items {
		blocks[i] = fmt.Sprintf(
			"• %s (Code: %s)\n  - Category: %s\n  - Description: %s\n  - Unit: %s\n  - Price: $%.2f",
			it.Name, it.Code, it.Category, it.Description, it.Unit, it.Price,
		)
	}
	return fallbackIntro + "\n\n" + strings.Join(blocks, "\n\n")
}
