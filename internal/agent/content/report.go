package content

import (
	"fmt"
	"strings"

	"github.com/orizenati71-dev/media-agents/internal/models"
)

var platformEmojis = map[models.Platform]string{
	models.PlatformTikTok:        "🎵",
	models.PlatformInstagram:     "📸",
	models.PlatformYouTubeShorts: "▶️",
}

// FormatReport renders the publishing package as a readable multi-line report
func FormatReport(pkg *models.PublishingPackage) string {
	var lines []string

	lines = append(lines, strings.Repeat("=", 60))
	lines = append(lines, "📦 חבילת פרסום - Hebrew Content Agent")
	lines = append(lines, strings.Repeat("=", 60))
	lines = append(lines, "")

	lines = append(lines, "📝 בדיקת איכות עברית (QA)")
	lines = append(lines, strings.Repeat("-", 40))
	lines = append(lines, fmt.Sprintf("טקסט מקורי: %s...", truncate(pkg.QAResult.OriginalText, 100)))
	lines = append(lines, fmt.Sprintf("טקסט מתוקן: %s...", truncate(pkg.QAResult.CorrectedText, 100)))
	if len(pkg.QAResult.Corrections) > 0 {
		lines = append(lines, fmt.Sprintf("תיקונים (%d):", len(pkg.QAResult.Corrections)))
		for i, correction := range pkg.QAResult.Corrections {
			if i >= 5 {
				break
			}
			lines = append(lines, fmt.Sprintf("  • %s", correction))
		}
	}
	if len(pkg.QAResult.Notes) > 0 {
		lines = append(lines, "הערות:")
		for _, note := range pkg.QAResult.Notes {
			lines = append(lines, fmt.Sprintf("  • %s", note))
		}
	}
	lines = append(lines, "")

	for _, platformPkg := range pkg.Platforms {
		lines = append(lines, formatPlatformPackage(platformPkg))
		lines = append(lines, "")
	}

	if pkg.GeneralNotes != "" {
		lines = append(lines, "📋 הערות כלליות")
		lines = append(lines, strings.Repeat("-", 40))
		lines = append(lines, pkg.GeneralNotes)
	}

	lines = append(lines, "")
	lines = append(lines, strings.Repeat("=", 60))

	return strings.Join(lines, "\n")
}

// formatPlatformPackage renders one platform section of the report
func formatPlatformPackage(pkg models.PlatformPackage) string {
	emoji, ok := platformEmojis[pkg.Platform]
	if !ok {
		emoji = "📱"
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("%s %s", emoji, strings.ToUpper(string(pkg.Platform))))
	lines = append(lines, strings.Repeat("-", 40))
	lines = append(lines, fmt.Sprintf("Caption A (קצר):\n%s", pkg.CaptionA))
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("Caption B (ארוך):\n%s", pkg.CaptionB))
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("Hashtags:\n%s", strings.Join(pkg.Hashtags, " ")))
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("המלצת פרסום: %s", pkg.PostingSuggestion))
	lines = append(lines, fmt.Sprintf("הערות טון: %s", pkg.ToneNotes))

	return strings.Join(lines, "\n")
}

// truncate cuts a string to at most n runes
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
