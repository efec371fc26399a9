package advice

import (
	"testing"

	"github.com/example/leafcheck/internal/classifier"
	"github.com/example/leafcheck/internal/locale"
)

func TestResolverIsTotalOverKnownDiseases(t *testing.T) {
	for _, id := range classifier.KnownDiseases {
		for _, lang := range []locale.Language{locale.English, locale.Sinhala} {
			rec := ResolveRecommendation(id, lang)
			if rec.Treatment == "" || rec.Prevention == "" {
				t.Fatalf("empty recommendation for %s in %s", id, lang)
			}
			if desc := ResolveDescription(id, lang); desc == "" {
				t.Fatalf("empty description for %s in %s", id, lang)
			}
		}
	}
}

func TestResolverFallsBackForUnknownIdentifier(t *testing.T) {
	unknown := classifier.DiseaseID("Alien_blotch")

	rec := ResolveRecommendation(unknown, locale.English)
	if rec != defaultRecommendationEn {
		t.Fatalf("expected english default recommendation, got %+v", rec)
	}
	if rec := ResolveRecommendation(unknown, locale.Sinhala); rec != defaultRecommendationSi {
		t.Fatalf("expected sinhala default recommendation, got %+v", rec)
	}

	if desc := ResolveDescription(unknown, locale.English); desc != defaultDescriptionEn {
		t.Fatalf("expected english default description, got %q", desc)
	}
	if desc := ResolveDescription(unknown, locale.Sinhala); desc != defaultDescriptionSi {
		t.Fatalf("expected sinhala default description, got %q", desc)
	}
}

func TestResolverSeparatesLanguages(t *testing.T) {
	en := ResolveDescription(classifier.EarlyBlight, locale.English)
	si := ResolveDescription(classifier.EarlyBlight, locale.Sinhala)
	if en == si {
		t.Fatal("expected different text per language")
	}

	recEn := ResolveRecommendation(classifier.Healthy, locale.English)
	recSi := ResolveRecommendation(classifier.Healthy, locale.Sinhala)
	if recEn.Treatment == recSi.Treatment {
		t.Fatal("expected different treatment text per language")
	}
}
