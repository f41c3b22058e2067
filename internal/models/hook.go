package models

import (
	"fmt"
	"strings"
)

// HookStyle represents the rhetorical structure of a hook
type HookStyle string

const (
	HookQuestion      HookStyle = "question"
	HookBoldStatement HookStyle = "bold_statement"
	HookStory         HookStyle = "story"
	HookStatistic     HookStyle = "statistic"
	HookControversial HookStyle = "controversial"
	HookCuriosityGap  HookStyle = "curiosity_gap"
	HookDirectAddress HookStyle = "direct_address"
)

// AllHookStyles lists every hook style in canonical order
func AllHookStyles() []HookStyle {
	return []HookStyle{
		HookQuestion,
		HookBoldStatement,
		HookStory,
		HookStatistic,
		HookControversial,
		HookCuriosityGap,
		HookDirectAddress,
	}
}

// ParseHookStyle resolves a hook style token. Unknown tokens are an error.
func ParseHookStyle(s string) (HookStyle, error) {
	token := strings.ToLower(strings.TrimSpace(s))
	for _, style := range AllHookStyles() {
		if token == string(style) {
			return style, nil
		}
	}
	return "", fmt.Errorf("unknown hook style %q", s)
}

// HookInput is the input for hook generation
type HookInput struct {
	VideoTopic     string      `json:"video_topic"`
	TargetAudience string      `json:"target_audience"`
	KeyMessage     string      `json:"key_message"`
	Tone           Tone        `json:"tone"`
	Platforms      []Platform  `json:"platforms"`
	HookStyles     []HookStyle `json:"hook_styles,omitempty"` // Empty = all styles
}

// Normalize fills in default platforms and styles when none were requested
func (h HookInput) Normalize() HookInput {
	if len(h.Platforms) == 0 {
		h.Platforms = DefaultPlatforms()
	}
	if len(h.HookStyles) == 0 {
		h.HookStyles = AllHookStyles()
	}
	return h
}

// Hook is a single generated hook
type Hook struct {
	Style            HookStyle  `json:"style"`
	Text             string     `json:"text"`
	DurationEstimate string     `json:"duration_estimate"`
	PlatformFit      []Platform `json:"platform_fit"`
	EngagementNotes  string     `json:"engagement_notes"`
	AttentionScore   int        `json:"attention_score,omitempty"` // Generic profile only, 1-10
}

// HookVariation is a hook optimized for a single platform
type HookVariation struct {
	Platform         Platform `json:"platform"`
	HookText         string   `json:"hook_text"`
	VisualSuggestion string   `json:"visual_suggestion"`
	TextOverlay      string   `json:"text_overlay,omitempty"`
}

// HookPackage groups a base hook with its platform variations
type HookPackage struct {
	Style              HookStyle       `json:"style"`
	BaseHook           Hook            `json:"base_hook"`
	PlatformVariations []HookVariation `json:"platform_variations"`
	ABTestVariant      string          `json:"a_b_test_variant,omitempty"`
	VideoPlan          []VideoSection  `json:"video_plan,omitempty"` // Generic profile only
}

// VideoSection is one timed segment of a planned short-form video
type VideoSection struct {
	Name     string `json:"name"`     // hook, body, cta
	Timing   string `json:"timing"`   // e.g. "0-3s"
	Guidance string `json:"guidance"` // What should happen in the segment
}

// HookOutput is the aggregate result of a hook generation run
type HookOutput struct {
	InputSummary    string        `json:"input_summary"`
	Hooks           []HookPackage `json:"hooks"`
	RecommendedHook Hook          `json:"recommended_hook"`
	ScriptStarters  []string      `json:"script_starters"`
	GeneralTips     []string      `json:"general_tips"`
}
