package places

// Language is a language code accepted by the Places API. The zero value
// falls back to English at flatten time.
type Language string

const (
	LanguageArabic     Language = "ar"
	LanguageChinese    Language = "zh"
	LanguageDutch      Language = "nl"
	LanguageEnglish    Language = "en"
	LanguageFrench     Language = "fr"
	LanguageGerman     Language = "de"
	LanguageHindi      Language = "hi"
	LanguageItalian    Language = "it"
	LanguageJapanese   Language = "ja"
	LanguageKorean     Language = "ko"
	LanguagePolish     Language = "pl"
	LanguagePortuguese Language = "pt"
	LanguageRussian    Language = "ru"
	LanguageSpanish    Language = "es"
	LanguageTurkish    Language = "tr"
	LanguageUkrainian  Language = "uk"
)

// queryValue returns the code sent on the wire, defaulting to English.
func (l Language) queryValue() string {
	if l == "" {
		return string(LanguageEnglish)
	}
	return string(l)
}
