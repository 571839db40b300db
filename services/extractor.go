package services

import "strings"

// Entity kinds produced by the NLU layer.
const (
	EntityCity      = "city"
	EntityPrice     = "price"
	EntityPartySize = "party_size"
)

// Entity is one typed value pulled from an utterance.
type Entity struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

// EntityExtractor is the NLU boundary. Implementations have no guaranteed
// recall; the resolver must cope with an empty result.
type EntityExtractor interface {
	Extract(utterance string) ([]Entity, error)
}

// KeywordExtractor is the built-in extractor, backed by the same lexicon the
// resolver falls back on. It stands in for an external NLU service when none
// is wired up.
type KeywordExtractor struct{}

func NewKeywordExtractor() *KeywordExtractor {
	return &KeywordExtractor{}
}

func (e *KeywordExtractor) Extract(utterance string) ([]Entity, error) {
	text := strings.ToLower(utterance)
	var entities []Entity

	if city, ok := cityFromText(text); ok {
		entities = append(entities, Entity{Kind: EntityCity, Value: city})
	}
	if price, ok := priceFromText(text); ok {
		entities = append(entities, Entity{Kind: EntityPrice, Value: formatPrice(price)})
	}
	if size, ok := partySizeFromText(text); ok {
		entities = append(entities, Entity{Kind: EntityPartySize, Value: formatInt(size)})
	}

	return entities, nil
}
