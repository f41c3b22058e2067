package qa

import "regexp"

// replacement is a single literal substring rewrite rule.
// Rules apply in definition order; order is part of the contract.
type replacement struct {
	From string
	To   string
}

// formalToCasual rewrites formal/robotic Hebrew into spoken Israeli Hebrew.
// Matching is plain substring, not word-boundary aware.
var formalToCasual = []replacement{
	{"אנו", "אנחנו"},
	{"הנכם", "אתם"},
	{"הננו", "אנחנו"},
	{"באפשרותך", "אתה יכול"},
	{"באפשרותכם", "אתם יכולים"},
	{"ניתן ל", "אפשר ל"},
	{"בהתאם ל", "לפי"},
	{"במידה ו", "אם"},
	{"לאור העובדה ש", "כי"},
	{"על מנת ש", "כדי ש"},
	{"על מנת ל", "כדי ל"},
	{"בגין", "בגלל"},
	{"לצורך", "בשביל"},
	{"אודות", "על"},
	{"הללו", "האלה"},
	{"לעיל", "למעלה"},
	{"להלן", "למטה"},
	{"בהמשך", "אחר כך"},
	{"לחילופין", "או"},
	{"כאמור", "כמו שאמרתי"},
	{"יצוין כי", ""},
	{"יש לציין כי", ""},
	{"ראוי לציין כי", ""},
	{"חשוב לציין כי", "חשוב ש"},
	{"אך ורק", "רק"},
	{"בלבד", "רק"},
	{"כלל וכלל", "בכלל"},
	{"מן הראוי", "כדאי"},
	{"עקב", "בגלל"},
	{"הואיל ו", "כי"},
	{"כפי ש", "כמו ש"},
	{"אשר", "ש"},
	{"מאחר ו", "כי"},
	{"לפיכך", "אז"},
	{"אי לכך", "לכן"},
	{"עם זאת", "אבל"},
	{"יחד עם זאת", "אבל"},
	{"למרות זאת", "אבל בכל זאת"},
	{"כמו כן", "וגם"},
	{"בנוסף לכך", "וגם"},
	{"בנוסף", "וגם"},
	{"לסיכום", "בקיצור"},
}

// cringePhrases removes or softens AI/marketing clichés.
// An empty replacement means pure deletion.
var cringePhrases = []replacement{
	{"הזדמנות אחרונה", "עכשיו זה הזמן"},
	{"מדהים", "מגניב"},
	{"מהפכני", "חדש"},
	{"חוויה יוצאת דופן", "חוויה טובה"},
	{"פורץ דרך", "חדשני"},
	{"ייחודי במינו", "מיוחד"},
	{"משנה חיים", "עוזר ברצינות"},
	{"הצלחה מסחררת", "הצלחה"},
	{"תוצאות מטורפות", "תוצאות טובות"},
	{"לא תאמינו", ""},
	{"מה שקורה אחר כך יפתיע אתכם", ""},
	{"הסוד ש", ""},
	{"הטריק ש", "הדרך ש"},
	{"שיטה סודית", "שיטה"},
	{"טיפ זהב", "טיפ טוב"},
	{"חייבים לדעת", "כדאי לדעת"},
	{"משהו ענק", "משהו טוב"},
	{"בום", ""},
	{"וואו", ""},
}

// patternFix is a regex rewrite rule. Raw keeps the pattern text for
// the correction record.
type patternFix struct {
	Raw         string
	Pattern     *regexp.Regexp
	Replacement string
}

func fix(raw, replacement string) patternFix {
	return patternFix{Raw: raw, Pattern: regexp.MustCompile(raw), Replacement: replacement}
}

// formalPatterns catches overly formal structures: passive constructions,
// hedging, heavy connectors.
var formalPatterns = []patternFix{
	fix(`יבוצע על ידי`, "יעשה"),
	fix(`יתבצע על ידי`, "יעשה"),
	fix(`בוצע על ידי`, "עשה"),
	fix(`נעשה על ידי`, "עשה"),
	fix(`למעשה,?\s*`, ""),
	fix(`בעצם,?\s*`, ""),
	fix(`כביכול,?\s*`, ""),
	fix(`אם כך,?\s*`, "אז "),
	fix(`\s+אולם\s+`, " אבל "),
	fix(`\s+אך\s+`, " אבל "),
	fix(`\s+כי אם\s+`, " אלא "),
}
