package ai

import (
	"context"
	"fmt"
	"strings"
)

const polishSystemPrompt = `אתה עורך תוכן לרשתות חברתיות בעברית. תפקידך ללטש כיתובים לסרטונים קצרים.

כללים:
- שמור על השפה יומיומית וטבעית, כאילו חבר מספר לחבר
- אל תוסיף מידע חדש, רק שפר את הניסוח הקיים
- אל תוסיף האשטגים או אימוג'ים
- שמור על אורך דומה לטקסט המקורי
- החזר רק את הטקסט המלוטש, ללא הסברים`

// PolishCaption runs a corrected caption through Claude for a final
// phrasing pass. The normalizer has already done the formal-to-casual
// conversion; this only smooths word order and flow.
func (c *Client) PolishCaption(ctx context.Context, caption, topic string) (string, error) {
	userMessage := fmt.Sprintf("נושא הסרטון: %s\n\nהכיתוב:\n%s", topic, caption)

	polished, err := c.Complete(ctx, polishSystemPrompt, userMessage)
	if err != nil {
		return "", fmt.Errorf("failed to polish caption: %w", err)
	}

	polished = strings.TrimSpace(polished)
	if polished == "" {
		// Fall back to the input rather than losing the caption
		return caption, nil
	}

	return polished, nil
}
