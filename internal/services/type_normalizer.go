package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"ledger-agent/internal/models"
)

var (
	ErrUnrecognizedTypeLabel = errors.New("unrecognized transaction type label")
)

// typeNormalizer is immutable after construction and safe for concurrent use
type typeNormalizer struct {
	synonyms map[string]models.TransactionType
	labels   map[models.TransactionType][]string
}

// NewTypeNormalizer builds the synonym table from the defaults plus extra label -> canonical pairs.
func NewTypeNormalizer(extra map[string]string) (TypeNormalizerInterface, error) {
	synonyms := models.DefaultTypeSynonyms()

	for label, canonical := range extra {
		t := models.TransactionType(strings.ToLower(strings.TrimSpace(canonical)))
		if !t.IsValid() {
			return nil, fmt.Errorf("synonym %q maps to unknown type %q", label, canonical)
		}
		key := normalizeLabel(label)
		if key == "" {
			continue
		}
		synonyms[key] = t
	}

	labels := make(map[models.TransactionType][]string)
	for label, t := range synonyms {
		labels[t] = append(labels[t], label)
	}
	for t := range labels {
		sort.Strings(labels[t])
	}

	return &typeNormalizer{synonyms: synonyms, labels: labels}, nil
}

func (n *typeNormalizer) Normalize(label string) (*models.TransactionType, error) {
	key := normalizeLabel(label)
	if key == "" {
		return nil, nil
	}

	t, ok := n.synonyms[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnrecognizedTypeLabel, strings.TrimSpace(label))
	}
	return t.Ptr(), nil
}

func (n *typeNormalizer) Classify(label string) (models.TransactionType, bool) {
	t, ok := n.synonyms[normalizeLabel(label)]
	return t, ok
}

func (n *typeNormalizer) Labels(t models.TransactionType) []string {
	labels := n.labels[t]
	out := make([]string, len(labels))
	copy(out, labels)
	return out
}

func normalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}
