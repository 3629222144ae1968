package services

import "unicode"

// Language selects the template set used for replies and prompts
type Language string

const (
	LanguageChinese Language = "zh"
	LanguageEnglish Language = "en"
)

// DetectLanguage returns LanguageChinese when text contains any Han character
func DetectLanguage(text string) Language {
	for _, r := range text {
		if unicode.Is(unicode.Han, r) {
			return LanguageChinese
		}
	}
	return LanguageEnglish
}
