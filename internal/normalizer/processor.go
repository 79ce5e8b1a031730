package normalizer

import (
	"fmt"

	"pttrag/internal/models"
)

// Processor handles document validation and article normalization.
type Processor struct {
	validator   *Validator
	transformer *Transformer
}

// NewProcessor creates a new processor instance.
func NewProcessor() *Processor {
	return &Processor{
		validator:   NewValidator(),
		transformer: NewTransformer(),
	}
}

// Process validates the decoded input document and returns its articles in
// normalized form, preserving input order.
func (p *Processor) Process(data any) ([]*models.Article, error) {
	if err := p.validator.Validate(data); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	list := data.(map[string]any)["articles"].([]any)

	articles := make([]*models.Article, 0, len(list))
	for _, item := range list {
		articles = append(articles, p.transformer.Transform(item))
	}

	return articles, nil
}
