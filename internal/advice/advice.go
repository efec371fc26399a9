// Package advice resolves a disease identifier and language into treatment,
// prevention and description text. All lookups are total: an unknown
// identifier yields the language's default entry, never an error.
package advice

import (
	"github.com/example/leafcheck/internal/classifier"
	"github.com/example/leafcheck/internal/locale"
)

// Recommendation carries the care guidance for one diagnosis. It is always
// recomputed from (identifier, language) and never stored.
type Recommendation struct {
	Treatment  string
	Prevention string
}

// ResolveRecommendation returns treatment and prevention text for the
// identifier in the given language.
func ResolveRecommendation(id classifier.DiseaseID, lang locale.Language) Recommendation {
	table := recommendationsEn
	fallback := defaultRecommendationEn
	if lang == locale.Sinhala {
		table = recommendationsSi
		fallback = defaultRecommendationSi
	}
	if rec, ok := table[id]; ok {
		return rec
	}
	return fallback
}

// ResolveDescription returns the human description of the diagnosis in the
// given language.
func ResolveDescription(id classifier.DiseaseID, lang locale.Language) string {
	table := descriptionsEn
	fallback := defaultDescriptionEn
	if lang == locale.Sinhala {
		table = descriptionsSi
		fallback = defaultDescriptionSi
	}
	if desc, ok := table[id]; ok {
		return desc
	}
	return fallback
}
