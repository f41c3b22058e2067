package caption

import "github.com/orizenati71-dev/media-agents/internal/models"

// hookStarters opens a caption, keyed by tone. Index 0 is the default pick.
var hookStarters = map[models.Tone][]string{
	models.ToneCasual: {
		"אוקיי אז",
		"שימו לב לזה",
		"רגע,",
		"בואו נדבר על",
		"אז ככה",
		"יאללה",
		"נו טוב",
	},
	models.ToneEducational: {
		"הנה משהו שלא ידעתם:",
		"טיפ מהיר:",
		"עובדה:",
		"דבר אחד שחשוב להבין:",
		"שאלה:",
		"בואו נבין משהו:",
	},
	models.ToneMotivational: {
		"זה הזמן שלך",
		"מה שאתם צריכים לשמוע:",
		"האמת?",
		"קחו את זה:",
		"הדבר הזה שינה לי הכל:",
		"תזכרו:",
	},
	models.ToneSales: {
		"חיכיתם לזה:",
		"סוף סוף:",
		"הנה מה שעובד:",
		"גיליתי משהו:",
		"עצרו הכל.",
		"זהו.",
	},
}

// softCTAs closes a caption, keyed by tone
var softCTAs = map[models.Tone][]string{
	models.ToneCasual: {
		"מה אתם אומרים?",
		"ספרו לי בתגובות",
		"שתפו אם הזדהיתם",
		"תייגו מישהו שצריך לראות את זה",
		"שמרו לאחר כך",
	},
	models.ToneEducational: {
		"שמרו את הפוסט הזה",
		"עקבו לעוד טיפים",
		"יש לכם שאלות? כתבו לי",
		"רוצים לדעת עוד?",
		"שתפו עם מישהו שזה רלוונטי לו",
	},
	models.ToneMotivational: {
		"מי איתי?",
		"תייגו מישהו שצריך לשמוע את זה",
		"שלחו למישהו שאתם אוהבים",
		"שמרו והחזיקו חזק",
	},
	models.ToneSales: {
		"קישור בביו",
		"שלחו הודעה ל",
		"כתבו לי בפרטי",
		"תייגו מישהו שזה רלוונטי לו",
		"רוצים פרטים? כתבו",
	},
}

// emojiByKeyword decorates captions, in priority order
var emojiByKeyword = []struct {
	Keyword string
	Emoji   string
}{
	{"טיפ", "💡"},
	{"חשוב", "⚡"},
	{"אהבה", "❤️"},
	{"כסף", "💰"},
	{"עבודה", "💼"},
	{"בריאות", "🏃"},
	{"אוכל", "🍽️"},
	{"נסיעה", "✈️"},
	{"לימוד", "📚"},
	{"הצלחה", "🎯"},
	{"שאלה", "🤔"},
	{"רעיון", "💡"},
}
