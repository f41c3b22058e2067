package hashtag

import "github.com/orizenati71-dev/media-agents/internal/models"

// broadReachBase is the generic Israeli discovery tag pool
var broadReachBase = []string{
	"#ישראל",
	"#תלאביב",
	"#ישראלי",
	"#עברית",
	"#חיים",
	"#יזמות",
	"#השראה",
	"#טיפים",
	"#לייף",
	"#ישראלים",
	"#תוכן",
	"#קריירה",
	"#פיתוחאישי",
	"#מוטיבציה",
	"#הצלחה",
	"#יומיום",
	"#fyp",
	"#foryou",
	"#viral",
	"#trending",
}

// nicheTags holds category-specific tag pools
var nicheTags = map[string][]string{
	"business": {
		"#עסקים",
		"#יזמות",
		"#עסקיםקטנים",
		"#מיתוג",
		"#שיווק",
		"#דיגיטל",
		"#סושיאל",
		"#פרילנס",
		"#עצמאים",
		"#סטארטאפ",
		"#ביזנס",
		"#כסף",
		"#הכנסה",
		"#השקעות",
	},
	"lifestyle": {
		"#לייפסטייל",
		"#שגרה",
		"#יומיומי",
		"#בית",
		"#משפחה",
		"#זוגיות",
		"#הורות",
		"#ילדים",
		"#אמא",
		"#אבא",
		"#חיידקהסדר",
		"#ארגון",
	},
	"fitness": {
		"#כושר",
		"#אימון",
		"#בריאות",
		"#תזונה",
		"#ספורט",
		"#חדרכושר",
		"#דיאטה",
		"#גוף",
		"#פיטנס",
		"#אימוןבית",
		"#ירידהבמשקל",
	},
	"food": {
		"#אוכל",
		"#מתכון",
		"#בישול",
		"#מטבח",
		"#טעים",
		"#אוכלביתי",
		"#מתכונים",
		"#שף",
		"#בריא",
		"#טבעוני",
		"#צמחוני",
	},
	"tech": {
		"#טכנולוגיה",
		"#הייטק",
		"#תכנות",
		"#קוד",
		"#סטארטאפ",
		"#אפליקציה",
		"#דיגיטל",
		"#AI",
		"#בינהמלאכותית",
		"#חדשנות",
	},
	"beauty": {
		"#יופי",
		"#איפור",
		"#טיפוח",
		"#עור",
		"#שיער",
		"#ביוטי",
		"#סקינקר",
		"#מייקאפ",
		"#טיפוחפנים",
		"#קוסמטיקה",
	},
	"fashion": {
		"#אופנה",
		"#סטייל",
		"#לבוש",
		"#אאוטפיט",
		"#ootd",
		"#fashionisrael",
		"#בגדים",
		"#נעליים",
		"#תיקים",
		"#אקססוריז",
	},
	"education": {
		"#לימודים",
		"#למידה",
		"#השכלה",
		"#קורס",
		"#הכשרה",
		"#מקצוע",
		"#תואר",
		"#סטודנטים",
		"#ידע",
		"#מיומנויות",
	},
	"travel": {
		"#טיול",
		"#נסיעה",
		"#תיירות",
		"#חופש",
		"#מטייל",
		"#ישראל",
		"#חול",
		"#יעדים",
		"#טיסה",
		"#מלון",
	},
	"content": {
		"#יוצרתוכן",
		"#קריאייטור",
		"#קונטנט",
		"#סושיאלמדיה",
		"#אינסטגרם",
		"#טיקטוק",
		"#יוטיוב",
		"#ריילס",
		"#וידאו",
		"#עריכה",
	},
	"motivation": {
		"#מוטיבציה",
		"#השראה",
		"#פיתוחאישי",
		"#הצלחה",
		"#חלומות",
		"#מטרות",
		"#אמונה",
		"#כוח",
		"#צמיחה",
		"#שינוי",
	},
}

// nicheKeywords maps topic keywords to niche categories.
// Detection order is the order of this slice.
var nicheKeywords = []struct {
	Niche    string
	Keywords []string
}{
	{"business", []string{"עסק", "כסף", "מכירות", "שיווק", "לקוחות", "יזמות", "עצמאי", "פרילנס"}},
	{"lifestyle", []string{"חיים", "בית", "משפחה", "יומיום", "שגרה", "זוגיות", "ילדים"}},
	{"fitness", []string{"כושר", "אימון", "בריאות", "ספורט", "דיאטה", "משקל", "גוף"}},
	{"food", []string{"אוכל", "מתכון", "בישול", "מטבח", "אכילה", "ארוחה", "טעים"}},
	{"tech", []string{"טכנולוגיה", "אפליקציה", "קוד", "תכנות", "הייטק", "מחשב", "ai"}},
	{"beauty", []string{"יופי", "איפור", "טיפוח", "עור", "שיער", "פנים"}},
	{"fashion", []string{"אופנה", "בגדים", "סטייל", "לבוש", "נעליים"}},
	{"education", []string{"לימודים", "קורס", "למידה", "הכשרה", "ידע"}},
	{"travel", []string{"טיול", "נסיעה", "חופש", "מלון", "טיסה", "יעד"}},
	{"content", []string{"תוכן", "קריאייטור", "וידאו", "עריכה", "סושיאל"}},
	{"motivation", []string{"מוטיבציה", "השראה", "הצלחה", "חלומות", "מטרות", "שינוי"}},
}

// platformTags are appended ahead of the generic pool per platform
var platformTags = map[models.Platform][]string{
	models.PlatformTikTok: {
		"#טיקטוק",
		"#טיקטוקישראל",
		"#tiktokisrael",
		"#fyp",
		"#foryoupage",
		"#viral",
		"#trending",
		"#ויראלי",
	},
	models.PlatformInstagram: {
		"#אינסטגרם",
		"#instaisrael",
		"#igisrael",
		"#reels",
		"#reelsisrael",
		"#explorepage",
		"#instagood",
	},
	models.PlatformYouTubeShorts: {
		"#shorts",
		"#youtubeshorts",
		"#יוטיוב",
		"#youtube",
		"#shortsisrael",
		"#ytshorts",
	},
}

// combineLimits caps the combined list per platform
var combineLimits = map[models.Platform]int{
	models.PlatformTikTok:        8,
	models.PlatformInstagram:     20,
	models.PlatformYouTubeShorts: 10,
}

// defaultCombineLimit applies for platforms without an explicit cap
const defaultCombineLimit = 15
