package promo

// Message is the localized content of a popup.
type Message struct {
	Lang    string
	Title   string
	Body    string
	Accept  string
	Dismiss string
	RTL     bool
}

var messages = map[Campaign]map[string]Message{
	NewYear: {
		"en": {
			Lang:    "en",
			Title:   "Happy New Year from Holland Flowers",
			Body:    "Start the year with fresh blooms. Bouquets and arrangements delivered across Kuwait.",
			Accept:  "Shop now",
			Dismiss: "Maybe later",
		},
		"ar": {
			Lang:    "ar",
			Title:   "سنة جديدة سعيدة من هولند فلاورز",
			Body:    "ابدأ العام بأزهار طازجة. باقات وتنسيقات تصلك إلى جميع مناطق الكويت.",
			Accept:  "تسوق الآن",
			Dismiss: "لاحقاً",
			RTL:     true,
		},
	},
	Valentine: {
		"en": {
			Lang:    "en",
			Title:   "Happy Valentine's Day",
			Body:    "Say it with roses. Order before 2 PM for same-day delivery in Kuwait.",
			Accept:  "Send roses",
			Dismiss: "Maybe later",
		},
		"ar": {
			Lang:    "ar",
			Title:   "عيد حب سعيد",
			Body:    "عبّر بالورود. اطلب قبل الساعة ٢ ظهراً للتوصيل في نفس اليوم داخل الكويت.",
			Accept:  "أرسل الورود",
			Dismiss: "لاحقاً",
			RTL:     true,
		},
	},
}

// MessageFor returns the campaign's message in lang, falling back to English.
func MessageFor(c Campaign, lang string) (Message, bool) {
	byLang, ok := messages[c]
	if !ok {
		return Message{}, false
	}
	if m, ok := byLang[lang]; ok {
		return m, true
	}
	return byLang[fallbackLanguage], true
}
