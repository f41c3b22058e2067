package hooks

import (
	"fmt"
	"strings"

	"github.com/orizenati71-dev/media-agents/internal/models"
)

// FormatReport renders the hook output as a readable multi-line report
func FormatReport(output *models.HookOutput) string {
	var lines []string

	lines = append(lines, strings.Repeat("=", 60))
	lines = append(lines, "Short Form Hook Agent - חבילת הוקים")
	lines = append(lines, strings.Repeat("=", 60))
	lines = append(lines, "")

	lines = append(lines, fmt.Sprintf("קלט: %s", output.InputSummary))
	lines = append(lines, "")

	lines = append(lines, "ההוק המומלץ")
	lines = append(lines, strings.Repeat("-", 40))
	lines = append(lines, fmt.Sprintf("סוג: %s", output.RecommendedHook.Style))
	lines = append(lines, fmt.Sprintf("טקסט: %s", output.RecommendedHook.Text))
	lines = append(lines, fmt.Sprintf("משך: %s", output.RecommendedHook.DurationEstimate))
	lines = append(lines, fmt.Sprintf("הערות: %s", output.RecommendedHook.EngagementNotes))
	lines = append(lines, "")

	lines = append(lines, "כל ההוקים")
	lines = append(lines, strings.Repeat("-", 40))
	for _, pkg := range output.Hooks {
		lines = append(lines, fmt.Sprintf("\n[%s]", pkg.Style))
		lines = append(lines, fmt.Sprintf("  %s", pkg.BaseHook.Text))
		if pkg.ABTestVariant != "" {
			lines = append(lines, fmt.Sprintf("  A/B: %s", pkg.ABTestVariant))
		}
	}
	lines = append(lines, "")

	lines = append(lines, "פתיחות מומלצות לתסריט")
	lines = append(lines, strings.Repeat("-", 40))
	for i, starter := range output.ScriptStarters {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, starter))
	}
	lines = append(lines, "")

	lines = append(lines, "טיפים למסירה אפקטיבית")
	lines = append(lines, strings.Repeat("-", 40))
	for _, tip := range output.GeneralTips {
		lines = append(lines, fmt.Sprintf("  %s", tip))
	}

	lines = append(lines, "")
	lines = append(lines, strings.Repeat("=", 60))

	return strings.Join(lines, "\n")
}
