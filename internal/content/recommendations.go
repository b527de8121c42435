// Package content loads the static recommendation blocks shown on the
// dashboard.
package content

import (
	_ "embed"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"cac-insights/internal/core/domain"
)

//go:embed recommendations.yaml
var defaultRecommendations []byte

type document struct {
	Blocks []domain.RecommendationBlock `yaml:"blocks"`
}

// LoadRecommendations reads recommendation blocks from path, or from the
// embedded defaults when path is empty. When keys is non-empty only blocks
// with those keys are returned, in the order given by keys.
func LoadRecommendations(path string, keys []string) ([]domain.RecommendationBlock, error) {
	raw := defaultRecommendations
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read recommendations: %w", err)
		}
		raw = b
	}
	blocks, err := ParseRecommendations(raw)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return blocks, nil
	}

	out := make([]domain.RecommendationBlock, 0, len(keys))
	for _, k := range keys {
		i := slices.IndexFunc(blocks, func(b domain.RecommendationBlock) bool { return b.Key == k })
		if i < 0 {
			return nil, fmt.Errorf("unknown recommendation block %q", k)
		}
		out = append(out, blocks[i])
	}
	return out, nil
}

// ParseRecommendations decodes a YAML document with a top-level blocks list.
func ParseRecommendations(raw []byte) ([]domain.RecommendationBlock, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse recommendations: %w", err)
	}
	for i, b := range doc.Blocks {
		if b.Key == "" {
			return nil, fmt.Errorf("recommendation block %d has no key", i)
		}
	}
	return doc.Blocks, nil
}
