package platform

import "github.com/orizenati71-dev/media-agents/internal/models"

// Profile holds the static advisory data for one platform
type Profile struct {
	Name             string
	HebrewName       string
	Tone             string
	MaxCaptionLength int
	Characteristics  []string
	BestPostingTimes []string
	EmojiStyle       string
}

// profiles is the platform profile table, built once
var profiles = map[models.Platform]Profile{
	models.PlatformTikTok: {
		Name:             "TikTok",
		HebrewName:       "טיקטוק",
		Tone:             "fast + casual",
		MaxCaptionLength: 150,
		Characteristics: []string{
			"קצר וקליט",
			"אנרגיה גבוהה",
			"שפה צעירה",
			"טרנדי",
		},
		BestPostingTimes: []string{
			"19:00-22:00 ימי חול",
			"12:00-15:00 סופ״ש",
		},
		EmojiStyle: "minimal",
	},
	models.PlatformInstagram: {
		Name:             "Instagram",
		HebrewName:       "אינסטגרם",
		Tone:             "emotional + clean",
		MaxCaptionLength: 500,
		Characteristics: []string{
			"רגשי ומחובר",
			"ויזואלי",
			"נקי ומסודר",
			"אסתטי",
		},
		BestPostingTimes: []string{
			"11:00-13:00 ימי חול",
			"19:00-21:00 ערב",
			"10:00-12:00 שישי",
		},
		EmojiStyle: "moderate",
	},
	models.PlatformYouTubeShorts: {
		Name:             "YouTube Shorts",
		HebrewName:       "יוטיוב שורטס",
		Tone:             "authority + clarity",
		MaxCaptionLength: 100,
		Characteristics: []string{
			"סמכותי",
			"ברור",
			"ערך מוסף",
			"מקצועי",
		},
		BestPostingTimes: []string{
			"15:00-18:00 ימי חול",
			"20:00-22:00 ערב",
		},
		EmojiStyle: "minimal",
	},
}

// toneAdjustments rewrite casual word choices per platform.
// Order matters; rules apply first to last.
var toneAdjustments = map[models.Platform][]struct {
	From string
	To   string
}{
	models.PlatformTikTok: {
		{"אני רוצה", "אני חייב"},
		{"כדאי ל", "חייבים ל"},
		{"חשוב ש", "שימו לב"},
		{"בואו נדבר", "נו אז"},
		{"הנה", "זהו"},
	},
	models.PlatformInstagram: {
		{"נו", ""},
		{"יאללה", "הנה"},
		{"סבבה", "מושלם"},
		{"אחלה", "נפלא"},
	},
	models.PlatformYouTubeShorts: {
		{"נו", ""},
		{"יאללה", "בואו"},
		{"סבבה", "טוב"},
		{"אחלה", "מצוין"},
		{"מגניב", "יעיל"},
	},
}

// toneVibeNotes advises on matching the requested tone to the platform
var toneVibeNotes = map[models.Tone]string{
	models.ToneCasual:       "מתאים מאוד לטון הפלטפורמה",
	models.ToneEducational:  "שמור על בהירות בלי להיות מורה",
	models.ToneMotivational: "אמיתי ולא גנרי",
	models.ToneSales:        "רך ולא אגרסיבי",
}

// toneTimingNotes advises on posting time per tone
var toneTimingNotes = map[models.Tone]string{
	models.ToneEducational:  "תוכן לימודי עובד טוב בבוקר כשאנשים פתוחים ללמוד",
	models.ToneMotivational: "תוכן מוטיבציוני עובד טוב בתחילת שבוע או בבוקר",
	models.ToneSales:        "תוכן מכירתי עובד טוב בסוף שבוע כשיש יותר זמן פנוי",
	models.ToneCasual:       "תוכן קז׳ואל עובד טוב בשעות הערב",
}

// platformStrategyNotes advises on platform-specific cadence
var platformStrategyNotes = map[models.Platform]string{
	models.PlatformTikTok:        "בטיקטוק חשוב להעלות בתדירות גבוהה - לפחות פעם ביום",
	models.PlatformInstagram:     "באינסטגרם כדאי להיות אקטיבי בסטוריז לפני ואחרי הפוסט",
	models.PlatformYouTubeShorts: "ביוטיוב שורטס חשוב הכותרת והתיאור ל-SEO",
}
