// Package normalizer validates input documents and normalizes raw forum
// articles into the canonical shape used by the exporter.
package normalizer

import "errors"

// Validation errors.
var (
	ErrInvalidDocumentType = errors.New("invalid data type: expected top-level JSON object")
	ErrMissingArticles     = errors.New(`document has no "articles" key`)
	ErrArticlesNotList     = errors.New(`"articles" must be an array`)
)

// Validator handles input document validation.
type Validator struct{}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks that the decoded document holds an article collection.
// Individual articles are not validated here: missing article fields are
// resolved to defaults during transformation, never rejected.
func (v *Validator) Validate(data any) error {
	doc, ok := data.(map[string]any)
	if !ok {
		return ErrInvalidDocumentType
	}

	raw, ok := doc["articles"]
	if !ok {
		return ErrMissingArticles
	}

	if _, ok := raw.([]any); !ok {
		return ErrArticlesNotList
	}

	return nil
}
