package locale

import (
	"testing"

	"github.com/example/leafcheck/internal/classifier"
)

func TestTranslateResolvesBothLanguages(t *testing.T) {
	if got := Translate("result.treatment", English); got != "Treatment" {
		t.Fatalf("unexpected english translation: %q", got)
	}
	if got := Translate("result.treatment", Sinhala); got != "ප්‍රතිකාර" {
		t.Fatalf("unexpected sinhala translation: %q", got)
	}
}

func TestTranslateFallsBackToDefaultLanguageThenKey(t *testing.T) {
	// Key present in the default tree only still resolves for Sinhala.
	if got := Translate("home.title", Language("xx")); got != "Tomato Leaf Disease Detection" {
		t.Fatalf("expected default-language fallback, got %q", got)
	}

	// Missing everywhere: the key itself comes back, never empty.
	for _, key := range []string{"nosuch.key", "common.nosuch", "", "a.b.c.d", "common"} {
		got := Translate(key, Sinhala)
		if got != key {
			t.Fatalf("expected key %q verbatim, got %q", key, got)
		}
	}
}

func TestTranslateUnknownKeyIsStable(t *testing.T) {
	key := "totally.unknown"
	once := Translate(key, English)
	twice := Translate(once, English)
	if once != key || twice != key {
		t.Fatalf("expected unknown key to pass through unchanged, got %q then %q", once, twice)
	}
}

func TestDiseaseTranslationKeyIsTotal(t *testing.T) {
	for _, id := range classifier.KnownDiseases {
		key := DiseaseTranslationKey(id)
		if key == "" {
			t.Fatalf("empty key for %s", id)
		}
		for _, lang := range []Language{English, Sinhala} {
			if name := Translate(key, lang); name == "" || name == key {
				t.Fatalf("unresolved disease name for %s in %s: %q", id, lang, name)
			}
		}
	}

	if key := DiseaseTranslationKey("mystery_condition"); key != "diseases.overview" {
		t.Fatalf("expected overview fallback, got %s", key)
	}
}

func TestSeverityTranslationKeyDefaultsToNotApplicable(t *testing.T) {
	if key := SeverityTranslationKey(classifier.SeverityHigh); key != "severity.high" {
		t.Fatalf("unexpected key: %s", key)
	}
	if key := SeverityTranslationKey(classifier.Severity("Catastrophic")); key != "severity.na" {
		t.Fatalf("expected na fallback, got %s", key)
	}
}

func TestDisplayNameRoundTripsThroughSinhala(t *testing.T) {
	for _, id := range classifier.KnownDiseases {
		english := DisplayName(id)
		if english == "" {
			t.Fatalf("empty display name for %s", id)
		}
		sinhala := DiseaseNameForLanguage(english, Sinhala)
		back := EnglishDiseaseName(sinhala)
		if back != english {
			t.Fatalf("round trip broke for %s: %q -> %q -> %q", id, english, sinhala, back)
		}
	}
}

func TestDisplayNameSentinelsProjectToOverview(t *testing.T) {
	if got := DisplayName(classifier.Healthy); got != "overview" {
		t.Fatalf("expected overview for healthy, got %q", got)
	}
	if got := DisplayName("never_seen_before"); got != "overview" {
		t.Fatalf("expected overview for unknown id, got %q", got)
	}
}

func TestDiseaseNameForLanguageIsBestEffort(t *testing.T) {
	if got := DiseaseNameForLanguage("Early Blight", Sinhala); got != "පෙරළිත රෝගය" {
		t.Fatalf("unexpected sinhala name: %q", got)
	}
	if got := DiseaseNameForLanguage("Unknown Disease", Sinhala); got != "Unknown Disease" {
		t.Fatalf("expected english name unchanged, got %q", got)
	}
	if got := DiseaseNameForLanguage("Early Blight", English); got != "Early Blight" {
		t.Fatalf("expected english passthrough, got %q", got)
	}
}

func TestLocalizedDiseaseName(t *testing.T) {
	if got := LocalizedDiseaseName(classifier.Healthy, Sinhala); got != "සෞඛ්‍ය සම්පන්න" {
		t.Fatalf("unexpected localized healthy name: %q", got)
	}
	if got := LocalizedDiseaseName("mystery", English); got != "Common Tomato Leaf Diseases" {
		t.Fatalf("expected overview entry for unknown id, got %q", got)
	}
}
