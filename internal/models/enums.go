package models

import (
	"fmt"
	"strings"
)

// Platform represents a supported social media platform
type Platform string

const (
	PlatformTikTok        Platform = "tiktok"
	PlatformInstagram     Platform = "instagram"
	PlatformYouTubeShorts Platform = "youtube_shorts"
)

// AllPlatforms lists every supported platform in canonical order
func AllPlatforms() []Platform {
	return []Platform{PlatformTikTok, PlatformInstagram, PlatformYouTubeShorts}
}

// DefaultPlatforms returns the platform set used when a request names none
func DefaultPlatforms() []Platform {
	return AllPlatforms()
}

// platformAliases maps lenient CLI tokens to platforms
var platformAliases = map[string]Platform{
	"tiktok":         PlatformTikTok,
	"instagram":      PlatformInstagram,
	"ig":             PlatformInstagram,
	"youtube":        PlatformYouTubeShorts,
	"youtube_shorts": PlatformYouTubeShorts,
	"yt":             PlatformYouTubeShorts,
	"shorts":         PlatformYouTubeShorts,
}

// ParsePlatform resolves a single platform token.
// Aliases (ig, yt, shorts) are accepted; unknown tokens are an error.
func ParsePlatform(s string) (Platform, error) {
	if p, ok := platformAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return p, nil
	}
	return "", fmt.Errorf("unknown platform %q", s)
}

// HebrewName returns the Hebrew display name of the platform
func (p Platform) HebrewName() string {
	switch p {
	case PlatformTikTok:
		return "טיקטוק"
	case PlatformInstagram:
		return "אינסטגרם"
	case PlatformYouTubeShorts:
		return "יוטיוב שורטס"
	}
	return string(p)
}

// Tone represents the desired content tone/vibe
type Tone string

const (
	ToneCasual       Tone = "casual"
	ToneEducational  Tone = "educational"
	ToneMotivational Tone = "motivational"
	ToneSales        Tone = "sales"
)

// AllTones lists every supported tone in canonical order
func AllTones() []Tone {
	return []Tone{ToneCasual, ToneEducational, ToneMotivational, ToneSales}
}

// toneAliases maps lenient CLI tokens (including Hebrew names) to tones
var toneAliases = map[string]Tone{
	"casual":       ToneCasual,
	"קזואל":        ToneCasual,
	"קז׳ואל":       ToneCasual,
	"educational":  ToneEducational,
	"לימודי":       ToneEducational,
	"motivational": ToneMotivational,
	"מוטיבציוני":   ToneMotivational,
	"sales":        ToneSales,
	"מכירות":       ToneSales,
}

// ParseTone resolves a tone token. Hebrew names are accepted.
func ParseTone(s string) (Tone, error) {
	if t, ok := toneAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return t, nil
	}
	return "", fmt.Errorf("unknown tone %q", s)
}

// HebrewName returns the Hebrew display name of the tone
func (t Tone) HebrewName() string {
	switch t {
	case ToneCasual:
		return "קז׳ואל"
	case ToneEducational:
		return "לימודי"
	case ToneMotivational:
		return "מוטיבציוני"
	case ToneSales:
		return "מכירתי"
	}
	return string(t)
}
