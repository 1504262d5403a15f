package chat

import (
	"fmt"
	"strings"

	"github.com/artem13815/stockchat/pkg/item"
	"github.com/artem13815/stockchat/pkg/llm"
)

// systemDirective is the fixed assistant instruction sent on every request.
const systemDirective = `You are a helpful hotel inventory assistant. Your role is to help users find items in the hotel's stock system.
When answering:
1. Always mention the item codes when suggesting items
2. If multiple similar items exist, list all relevant options
3. Provide brief descriptions of items when relevant
4. If no exact match is found, suggest similar alternatives
5. Keep responses concise but informative
6. Format the response in a clear, easy-to-read manner`

// noMatchNotice instructs the model to suggest alternatives instead of
// staying silent when retrieval came back empty.
const noMatchNotice = "No exact matches found in our inventory. I will suggest alternatives or related items if appropriate."

// AssemblePrompt builds the message sequence for the model, in fixed order:
// the directive, then exactly one grounding block with the retrieved items
// (or the no-match notice), then the conversation unmodified. The grounding
// block always sits before the conversation so inventory facts stay in the
// prompt no matter how long the conversation has grown.
func AssemblePrompt(msgs []Message, retrieved []item.StockItem) []llm.Message {
	out := make([]llm.Message, 0, len(msgs)+2)
	out = append(out, llm.Message{Role: llm.RoleSystem, Content: systemDirective})
	out = append(out, llm.Message{Role: llm.RoleSystem, Content: groundingBlock(retrieved)})
	for _, m := range msgs {
		out = append(out, llm.Message{Role: m.Role, Content: m.Content})
	}
	return out
}

func groundingBlock(retrieved []item.StockItem) string {
	if len(retrieved) == 0 {
		return noMatchNotice
	}
	blocks := make([]string, len(retrieved))
	for i, it := range retrieved {
		blocks[i] = fmt.Sprintf(
			"• %s (Code: %s)\n  - Category: %s\n  - Description: %s\n  - Unit: %s\n  - Price: %.2f",
			it.Name, it.Code, it.Category, it.Description, it.Unit, it.Price,
		)
	}
	return "Here are the relevant items from our inventory:\n\n" + strings.Join(blocks, "\n\n")
}
