package hooks

import (
	"fmt"
	"strings"

	"github.com/orizenati71-dev/media-agents/internal/hook"
	"github.com/orizenati71-dev/media-agents/internal/models"
	"github.com/orizenati71-dev/media-agents/pkg/logger"
)

// Agent generates attention-grabbing video openings across the requested
// hook styles, with per-platform variations and an A/B variant per style.
type Agent struct {
	composer *hook.Composer
	generic  *hook.GenericComposer
	log      *logger.Logger
}

// NewAgent creates a new hooks agent
func NewAgent(log *logger.Logger) *Agent {
	return &Agent{
		composer: hook.NewComposer(),
		generic:  hook.NewGenericComposer(),
		log:      log.WithComponent("hooks"),
	}
}

// Process generates the full Hebrew hook package for the given input
func (a *Agent) Process(input models.HookInput) (*models.HookOutput, error) {
	input = input.Normalize()
	if input.VideoTopic == "" {
		return nil, fmt.Errorf("video topic is required")
	}

	a.log.Info().
		Str("topic", input.VideoTopic).
		Str("tone", string(input.Tone)).
		Int("styles", len(input.HookStyles)).
		Msg("Generating hooks")

	packages := make([]models.HookPackage, 0, len(input.HookStyles))
	allHooks := make([]models.Hook, 0, len(input.HookStyles))

	for _, style := range input.HookStyles {
		pkg := a.hookPackage(style, input)
		packages = append(packages, pkg)
		allHooks = append(allHooks, pkg.BaseHook)
	}

	recommended, ok := a.composer.SelectBest(allHooks, input.Tone)
	if !ok {
		return nil, fmt.Errorf("no hooks generated for topic %q", input.VideoTopic)
	}

	return &models.HookOutput{
		InputSummary:    inputSummary(input),
		Hooks:           packages,
		RecommendedHook: recommended,
		ScriptStarters:  scriptStarters(allHooks, input.KeyMessage),
		GeneralTips:     a.composer.EngagementTips(input.Tone),
	}, nil
}

// ProcessGeneric generates hooks from the English template set, with
// attention scores, tone decoration, and a timed video plan per style.
func (a *Agent) ProcessGeneric(input models.HookInput) (*models.HookOutput, error) {
	input = input.Normalize()
	if input.VideoTopic == "" {
		return nil, fmt.Errorf("video topic is required")
	}

	a.log.Info().
		Str("topic", input.VideoTopic).
		Str("tone", string(input.Tone)).
		Msg("Generating generic hooks")

	packages := make([]models.HookPackage, 0, len(input.HookStyles))
	allHooks := make([]models.Hook, 0, len(input.HookStyles))

	for _, style := range input.HookStyles {
		baseHook := a.generic.GenerateForStyle(style, input.Tone, input.VideoTopic)

		variations := make([]models.HookVariation, 0, len(input.Platforms))
		for _, p := range input.Platforms {
			variations = append(variations, a.composer.OptimizeForPlatform(baseHook.Text, p, input.VideoTopic))
		}

		packages = append(packages, models.HookPackage{
			Style:              style,
			BaseHook:           baseHook,
			PlatformVariations: variations,
			ABTestVariant:      a.generic.ABVariant(style, input.Tone, input.VideoTopic),
			VideoPlan:          a.generic.VideoPlan(baseHook.Text, input.KeyMessage),
		})
		allHooks = append(allHooks, baseHook)
	}

	// With attention scores available, the highest score wins
	recommended := allHooks[0]
	for _, h := range allHooks[1:] {
		if h.AttentionScore > recommended.AttentionScore {
			recommended = h
		}
	}

	return &models.HookOutput{
		InputSummary:    inputSummary(input),
		Hooks:           packages,
		RecommendedHook: recommended,
		ScriptStarters:  scriptStarters(allHooks, input.KeyMessage),
		GeneralTips:     a.composer.EngagementTips(input.Tone),
	}, nil
}

// hookPackage builds the complete package for a single hook style
func (a *Agent) hookPackage(style models.HookStyle, input models.HookInput) models.HookPackage {
	baseHook := a.composer.GenerateForStyle(style, input.Tone, input.VideoTopic)

	variations := make([]models.HookVariation, 0, len(input.Platforms))
	for _, p := range input.Platforms {
		variations = append(variations, a.composer.OptimizeForPlatform(baseHook.Text, p, input.VideoTopic))
	}

	return models.HookPackage{
		Style:              style,
		BaseHook:           baseHook,
		PlatformVariations: variations,
		ABTestVariant:      a.composer.ABVariant(style, input.Tone, input.VideoTopic),
	}
}

// scriptStarters builds full opening lines for the first three hooks
func scriptStarters(hooks []models.Hook, keyMessage string) []string {
	starters := make([]string, 0, 3)
	for i, h := range hooks {
		if i >= 3 {
			break
		}
		starters = append(starters, h.Text+" "+keyMessage)
	}
	return starters
}

// inputSummary renders the request parameters as a single summary line
func inputSummary(input models.HookInput) string {
	names := make([]string, 0, len(input.Platforms))
	for _, p := range input.Platforms {
		names = append(names, string(p))
	}
	return fmt.Sprintf(
		"נושא: %s | קהל יעד: %s | טון: %s | פלטפורמות: %s",
		input.VideoTopic,
		input.TargetAudience,
		string(input.Tone),
		strings.Join(names, ", "),
	)
}
