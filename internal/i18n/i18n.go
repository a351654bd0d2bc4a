package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,pt;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "en" from "en-US")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		// Normalize to lowercase
		lang = strings.ToLower(lang)
		// Validate it's a supported locale
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"error.invalid_request":        "Invalid request",
			"error.invalid_request_body":   "Invalid request body",
			"error.internal_error":         "An unexpected error occurred",
			"error.not_found":              "Not found",
			"error.rate_limit_exceeded":    "Too many requests, please try again later",
			"error.timeout":                "Request timed out",
			"error.validation.coordinates": "latitude must be within [-90, 90] and longitude within [-180, 180]",
			"error.validation.weight":      "weight: must be greater than 0 and at most 5000 kg",
			"error.validation.items":       "items: a list of materials with weights is required",
			"error.validation.query":       "query: must not be empty",
			"error.validation.message":     "message: must not be empty",
		},
		"hi": {
			"error.invalid_request":        "अमान्य अनुरोध",
			"error.invalid_request_body":   "अनुरोध का मुख्य भाग अमान्य है",
			"error.internal_error":         "एक अप्रत्याशित त्रुटि हुई",
			"error.not_found":              "नहीं मिला",
			"error.rate_limit_exceeded":    "बहुत अधिक अनुरोध, कृपया बाद में पुनः प्रयास करें",
			"error.timeout":                "अनुरोध का समय समाप्त हो गया",
			"error.validation.coordinates": "अक्षांश [-90, 90] और देशांतर [-180, 180] के भीतर होना चाहिए",
			"error.validation.weight":      "वज़न 0 से अधिक और अधिकतम 5000 किलो होना चाहिए",
			"error.validation.items":       "items: वज़न सहित सामग्रियों की सूची आवश्यक है",
			"error.validation.query":       "query: खाली नहीं होना चाहिए",
			"error.validation.message":     "message: खाली नहीं होना चाहिए",
		},
	}
}
