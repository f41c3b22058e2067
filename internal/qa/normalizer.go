// Package qa rewrites formal or robotic Hebrew into natural spoken
// Israeli Hebrew using ordered replacement tables and regex passes.
package qa

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/orizenati71-dev/media-agents/internal/models"
)

// longTextThreshold is the character count above which a shortening
// advisory is emitted.
const longTextThreshold = 300

var (
	multiSpaceRe   = regexp.MustCompile(`\s+`)
	spacePunctRe   = regexp.MustCompile(`\s+([.,!?])`)
	latinWordRe    = regexp.MustCompile(`[a-zA-Z]{3,}`)
	hebrewLetterRe = regexp.MustCompile(`[\x{0590}-\x{05FF}]`)
)

// Normalizer applies the Hebrew QA passes. The zero value is ready to use;
// all tables are package-level and built once.
type Normalizer struct{}

// NewNormalizer creates a new QA normalizer
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Process rewrites text through the table and pattern passes and reports
// every correction that fired. It never fails; re-running Process on its
// own output is not guaranteed to be a no-op, since a cringe-phrase
// replacement can introduce a phrase the formal table would catch.
func (n *Normalizer) Process(text string) models.QAResult {
	var corrections []string
	corrected := text

	// Formal to casual replacements
	for _, r := range formalToCasual {
		if strings.Contains(corrected, r.From) {
			corrected = strings.ReplaceAll(corrected, r.From, r.To)
			corrections = append(corrections, fmt.Sprintf("'%s' → '%s'", r.From, r.To))
		}
	}

	// Remove/replace cringe marketing phrases
	for _, r := range cringePhrases {
		if strings.Contains(corrected, r.From) {
			corrected = strings.ReplaceAll(corrected, r.From, r.To)
			corrections = append(corrections, fmt.Sprintf("הוסר/הוחלף: '%s'", r.From))
		}
	}

	// Pattern-based corrections
	for _, p := range formalPatterns {
		if p.Pattern.MatchString(corrected) {
			corrected = p.Pattern.ReplaceAllString(corrected, p.Replacement)
			corrections = append(corrections, fmt.Sprintf("תיקון תבנית: %s", p.Raw))
		}
	}

	// Clean up spacing and punctuation
	corrected = multiSpaceRe.ReplaceAllString(corrected, " ")
	corrected = spacePunctRe.ReplaceAllString(corrected, "$1")
	corrected = strings.TrimSpace(corrected)

	return models.QAResult{
		OriginalText:  text,
		CorrectedText: corrected,
		Corrections:   corrections,
		Notes:         generateNotes(text),
	}
}

// generateNotes produces advisory notes about the original text
func generateNotes(original string) []string {
	var notes []string

	if utf8.RuneCountInString(original) > longTextThreshold {
		notes = append(notes, "הטקסט ארוך - שקול לקצר לפורמט סושיאל")
	}

	if words := latinWords(original, 5); len(words) > 0 {
		notes = append(notes, fmt.Sprintf("מילים באנגלית: %s", strings.Join(words, ", ")))
	}

	if strings.Contains(original, "הנכם") ||
		strings.Contains(original, "הננו") ||
		strings.Contains(original, "באפשרותך") {
		notes = append(notes, "הטקסט המקורי היה פורמלי מדי - הותאם לעברית מדוברת")
	}

	if strings.Contains(original, "#") {
		notes = append(notes, "הטקסט כולל האשטאגים - יופרדו בפלט")
	}

	return notes
}

// latinWords returns up to max unique runs of 3+ Latin letters, in
// first-occurrence order.
func latinWords(text string, max int) []string {
	seen := make(map[string]bool)
	var words []string
	for _, w := range latinWordRe.FindAllString(text, -1) {
		if seen[w] {
			continue
		}
		seen[w] = true
		words = append(words, w)
		if len(words) == max {
			break
		}
	}
	return words
}

// ContainsHebrew reports whether text contains at least one Hebrew letter
func ContainsHebrew(text string) bool {
	return hebrewLetterRe.MatchString(text)
}

// HebrewWordCount counts whitespace-separated tokens containing Hebrew letters
func HebrewWordCount(text string) int {
	count := 0
	for _, w := range strings.Fields(text) {
		if hebrewLetterRe.MatchString(w) {
			count++
		}
	}
	return count
}
