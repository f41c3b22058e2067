package hook

import "github.com/orizenati71-dev/media-agents/internal/models"

// hebrewTemplates holds the Hebrew hook templates per (style, tone).
// "{topic}" is the interpolation marker. Index 0 is the primary template;
// index 1 serves as the A/B variant.
var hebrewTemplates = map[models.HookStyle]map[models.Tone][]string{
	models.HookQuestion: {
		models.ToneCasual: {
			"מה אם אגיד לכם ש{topic}?",
			"רגע, אתם באמת חושבים ש{topic}?",
			"למה אף אחד לא מדבר על {topic}?",
		},
		models.ToneEducational: {
			"ידעתם ש{topic}?",
			"מה ההבדל בין {topic}?",
			"איך בעצם עובד {topic}?",
		},
		models.ToneMotivational: {
			"מה מונע ממך {topic}?",
			"למה אתם עדיין לא {topic}?",
			"מוכנים לשנות את {topic}?",
		},
		models.ToneSales: {
			"רוצים לדעת איך {topic}?",
			"מחפשים פתרון ל{topic}?",
			"נמאס לכם מ{topic}?",
		},
	},
	models.HookBoldStatement: {
		models.ToneCasual: {
			"{topic} - וזהו, נקודה.",
			"אני אומר את זה - {topic}.",
			"בואו נדבר על {topic}.",
		},
		models.ToneEducational: {
			"הנה האמת על {topic}.",
			"{topic} - ומדע מוכיח את זה.",
			"זה מה שאף אחד לא מספר לכם על {topic}.",
		},
		models.ToneMotivational: {
			"אתם יכולים {topic}.",
			"{topic} - ואני הולך להוכיח לכם.",
			"היום זה היום ש{topic}.",
		},
		models.ToneSales: {
			"זה הסוד ל{topic}.",
			"{topic} - והנה איך.",
			"תעצרו הכל - {topic}.",
		},
	},
	models.HookStory: {
		models.ToneCasual: {
			"אז לפני שבוע קרה לי משהו מטורף עם {topic}...",
			"סיפור קצר על {topic}...",
			"הייתי בדיוק באמצע {topic} כש...",
		},
		models.ToneEducational: {
			"בשנת 2023 גיליתי משהו על {topic}...",
			"כשהתחלתי לחקור {topic}, גיליתי ש...",
			"הנה מה שלמדתי על {topic}...",
		},
		models.ToneMotivational: {
			"לפני שנה הייתי במקום אחר לגמרי עם {topic}...",
			"כשהכל התחיל להתפרק, {topic}...",
			"הרגע שהכל השתנה עם {topic}...",
		},
		models.ToneSales: {
			"לקוח שלי בא אליי עם בעיה של {topic}...",
			"קיבלתי הודעה שאמרה {topic}...",
			"מישהו שאל אותי על {topic} ו...",
		},
	},
	models.HookStatistic: {
		models.ToneCasual: {
			"90% מהאנשים לא יודעים את זה על {topic}.",
			"רק 3% מצליחים ב{topic}.",
			"8 מתוך 10 אנשים טועים לגבי {topic}.",
		},
		models.ToneEducational: {
			"מחקרים מראים ש{topic}.",
			"הנתונים מדברים - {topic}.",
			"לפי המספרים, {topic}.",
		},
		models.ToneMotivational: {
			"אתם חלק מה-1% אם {topic}.",
			"רק 5% מהאנשים באמת {topic}.",
			"הסטטיסטיקה נגדכם, אבל {topic}.",
		},
		models.ToneSales: {
			"הלקוחות שלנו ראו עלייה של 300% ב{topic}.",
			"בממוצע, אנשים חוסכים 50% על {topic}.",
			"97% ממי שניסה {topic}.",
		},
	},
	models.HookControversial: {
		models.ToneCasual: {
			"אני הולך לעצבן אנשים עכשיו - {topic}.",
			"דעה לא פופולרית: {topic}.",
			"אני יודע שזה שנוי במחלוקת, אבל {topic}.",
		},
		models.ToneEducational: {
			"כולם טועים לגבי {topic}.",
			"הנה למה המומחים לא צודקים על {topic}.",
			"בניגוד למה שלימדו אתכם, {topic}.",
		},
		models.ToneMotivational: {
			"תפסיקו להאמין שאתם לא יכולים {topic}.",
			"כולם אמרו לי שזה בלתי אפשרי, אבל {topic}.",
			"הגיע הזמן לשבור את המיתוס על {topic}.",
		},
		models.ToneSales: {
			"המתחרים לא רוצים שתדעו על {topic}.",
			"הסוד ששומרים ממכם על {topic}.",
			"למה כולם משלמים יותר מדי על {topic}?",
		},
	},
	models.HookCuriosityGap: {
		models.ToneCasual: {
			"זה הדבר שאף אחד לא מספר לכם על {topic}...",
			"חכו לסוף כדי לראות מה קורה עם {topic}.",
			"מה שאני עומד לחשוף על {topic}...",
		},
		models.ToneEducational: {
			"יש סיבה נסתרת למה {topic}...",
			"הנה מה שחסר לכם על {topic}...",
			"הפרט הזה על {topic} ישנה הכל...",
		},
		models.ToneMotivational: {
			"הטריק הזה שינה לי את החיים עם {topic}...",
			"גיליתי משהו שכולם צריכים לדעת על {topic}...",
			"אחרי שתראו את זה, {topic} לעולם לא יהיה אותו דבר.",
		},
		models.ToneSales: {
			"הנה למה הלקוחות שלנו לא חוזרים לשיטה הישנה של {topic}...",
			"יש דבר אחד שמבדיל אותנו בנושא {topic}...",
			"השינוי הקטן הזה ב{topic} עשה את כל ההבדל...",
		},
	},
	models.HookDirectAddress: {
		models.ToneCasual: {
			"אם אתם מתמודדים עם {topic}, תשמעו.",
			"זה בשבילכם אם {topic}.",
			"עצרו - אם {topic}, אתם חייבים לראות את זה.",
		},
		models.ToneEducational: {
			"אם אתם רוצים להבין {topic}, הנה המדריך.",
			"למי שמחפש ללמוד על {topic}.",
			"בשבילכם שרוצים לדעת יותר על {topic}.",
		},
		models.ToneMotivational: {
			"אם נמאס לכם מ{topic}, הנה הפתרון.",
			"לכל מי שחולם על {topic} - זה הזמן.",
			"אם אתם מוכנים לשנות את {topic}, תתחילו כאן.",
		},
		models.ToneSales: {
			"אם אתם עדיין סובלים מ{topic}, יש פתרון.",
			"למי ששואל איך {topic} - הנה התשובה.",
			"אם אתם מחפשים {topic}, מצאתם.",
		},
	},
}

// platformFit maps each style to the platforms it performs best on
var platformFit = map[models.HookStyle][]models.Platform{
	models.HookQuestion:      {models.PlatformTikTok, models.PlatformInstagram, models.PlatformYouTubeShorts},
	models.HookBoldStatement: {models.PlatformTikTok, models.PlatformInstagram},
	models.HookStory:         {models.PlatformYouTubeShorts, models.PlatformInstagram},
	models.HookStatistic:     {models.PlatformYouTubeShorts, models.PlatformInstagram},
	models.HookControversial: {models.PlatformTikTok},
	models.HookCuriosityGap:  {models.PlatformTikTok, models.PlatformYouTubeShorts},
	models.HookDirectAddress: {models.PlatformInstagram, models.PlatformYouTubeShorts},
}

// engagementNotes explains why each style grabs attention
var engagementNotes = map[models.HookStyle]string{
	models.HookQuestion:      "שאלות מעוררות סקרנות ומושכות תגובות בקומנטס",
	models.HookBoldStatement: "טענות נועזות מושכות תשומת לב ומייצרות שיתופים",
	models.HookStory:         "סיפורים יוצרים חיבור רגשי ומגדילים צפייה עד הסוף",
	models.HookStatistic:     "מספרים מוסיפים אמינות ומשכנעים צופים להישאר",
	models.HookControversial: "תוכן שנוי במחלוקת מייצר דיון ומגביר אינטראקציה",
	models.HookCuriosityGap:  "פער סקרנות מבטיח צפייה מלאה בסרטון",
	models.HookDirectAddress: "פנייה ישירה יוצרת תחושת רלוונטיות אישית",
}

// defaultEngagementNote covers styles missing from engagementNotes
const defaultEngagementNote = "הוק אפקטיבי למשיכת תשומת לב"

// visualSuggestions guides framing per platform
var visualSuggestions = map[models.Platform]string{
	models.PlatformTikTok:        "תקריב פנים עם אנרגיה גבוהה, תנועת ידיים דינמית",
	models.PlatformInstagram:     "קומפוזיציה אסתטית, תאורה טובה, מבט ישיר למצלמה",
	models.PlatformYouTubeShorts: "מסגור ברור, רקע נקי, הבעת פנים מסקרנת",
}

// defaultVisualSuggestion covers platforms missing from visualSuggestions
const defaultVisualSuggestion = "הקפידו על איכות תמונה גבוהה"

// tonePriority orders hook styles by expected performance per tone.
// SelectBest walks this list before falling back to generation order.
var tonePriority = map[models.Tone][]models.HookStyle{
	models.ToneCasual:       {models.HookQuestion, models.HookBoldStatement},
	models.ToneEducational:  {models.HookStatistic, models.HookCuriosityGap},
	models.ToneMotivational: {models.HookDirectAddress, models.HookStory},
	models.ToneSales:        {models.HookCuriosityGap, models.HookDirectAddress},
}

// engagementTips coaches delivery per tone
var engagementTips = map[models.Tone][]string{
	models.ToneCasual: {
		"דברו בגובה העיניים, כאילו לחבר",
		"השתמשו בשפה יומיומית ואותנטית",
		"אל תפחדו מהומור קליל",
	},
	models.ToneEducational: {
		"התחילו עם הנקודה החשובה ביותר",
		"השתמשו במספרים ועובדות",
		"הבטיחו ערך ברור תוך שניות",
	},
	models.ToneMotivational: {
		"דברו באנרגיה ובביטחון",
		"השתמשו בשפת גוף פתוחה",
		"צרו קשר עין עם המצלמה",
	},
	models.ToneSales: {
		"התמקדו בבעיה לפני הפתרון",
		"צרו תחושת דחיפות",
		"הציגו תוצאות, לא תכונות",
	},
}
