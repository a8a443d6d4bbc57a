package i18n

import "errors"

var (
	ErrNilSource          = errors.New("i18n: translation source is nil")
	ErrNilParser          = errors.New("i18n: parser is nil")
	ErrEmptyLanguageCode  = errors.New("i18n: empty language code")
	ErrInvalidCatalog     = errors.New("i18n: invalid catalog structure")
	ErrNoTranslationFiles = errors.New("i18n: no translation files found")
	ErrFailedToReadFile   = errors.New("i18n: failed to read translation file")
	ErrFailedToParseFile  = errors.New("i18n: failed to parse translation file")
	ErrFailedToReadDir    = errors.New("i18n: failed to read translation directory")
	ErrFailedToParseJSON  = errors.New("i18n: failed to parse JSON content")
	ErrFailedToParseYAML  = errors.New("i18n: failed to parse YAML content")
)
