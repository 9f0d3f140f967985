package i18n

import (
	"errors"
	"fmt"
)

var (
	ErrTranslationNotFound = errors.New("translation not found")
	ErrInvalidCatalog      = errors.New("invalid catalog")
	ErrEmptyLanguage       = errors.New("language cannot be empty")
	ErrEmptyNamespace      = errors.New("namespace cannot be empty")
	ErrNilPluralRule       = errors.New("plural rule cannot be nil")
)

// TranslationError ties a compile or format failure to the translation it came from.
type TranslationError struct {
	Language  string
	Namespace string
	Key       string
	Err       error
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("%s:%s:%s: %v", e.Language, e.Namespace, e.Key, e.Err)
}

func (e *TranslationError) Unwrap() error {
	return e.Err
}
