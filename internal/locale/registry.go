package locale

import (
	"strings"

	"github.com/example/leafcheck/internal/classifier"
)

// Translate resolves a dot separated key path in the requested language.
// A missing segment falls back to the same path in the default language;
// if that also misses, the key path itself is returned so an untranslated
// key stays visible instead of silently disappearing.
func Translate(keyPath string, lang Language) string {
	segments := strings.Split(keyPath, ".")
	if value, ok := walk(translations[lang], segments); ok {
		return value
	}
	if value, ok := walk(translations[DefaultLanguage], segments); ok {
		return value
	}
	return keyPath
}

func walk(node tree, segments []string) (string, bool) {
	var current any = node
	for _, segment := range segments {
		branch, ok := current.(tree)
		if !ok {
			return "", false
		}
		current, ok = branch[segment]
		if !ok {
			return "", false
		}
	}
	leaf, ok := current.(string)
	return leaf, ok
}

var diseaseKeys = map[classifier.DiseaseID]string{
	classifier.BacterialSpot:     "diseases.bacterialSpot",
	classifier.EarlyBlight:       "diseases.earlyBlight",
	classifier.LateBlight:        "diseases.lateBlight",
	classifier.LeafMold:          "diseases.leafMold",
	classifier.SeptoriaLeafSpot:  "diseases.septoriaLeafSpot",
	classifier.SpiderMites:       "diseases.spiderMites",
	classifier.TargetSpot:        "diseases.targetSpot",
	classifier.YellowLeafCurl:    "diseases.yellowLeafCurl",
	classifier.TomatoMosaicVirus: "diseases.mosaicVirus",
	classifier.PowderyMildew:     "diseases.powderyMildew",
	classifier.Healthy:           "diseases.healthy",
	classifier.NotTomatoLeaf:     "diseases.notTomatoLeaf",
}

// DiseaseTranslationKey maps a disease identifier to its translation key
// path, defaulting to the overview entry for anything unrecognized.
func DiseaseTranslationKey(id classifier.DiseaseID) string {
	if key, ok := diseaseKeys[id]; ok {
		return key
	}
	return "diseases.overview"
}

var severityKeys = map[classifier.Severity]string{
	classifier.SeverityLow:           "severity.low",
	classifier.SeverityMedium:        "severity.medium",
	classifier.SeverityHigh:          "severity.high",
	classifier.SeverityNotApplicable: "severity.na",
}

// SeverityTranslationKey maps a severity level to its translation key path,
// defaulting to "not applicable".
func SeverityTranslationKey(sev classifier.Severity) string {
	if key, ok := severityKeys[sev]; ok {
		return key
	}
	return "severity.na"
}

// LocalizedDiseaseName returns the disease name for the identifier in the
// given language.
func LocalizedDiseaseName(id classifier.DiseaseID, lang Language) string {
	return Translate(DiseaseTranslationKey(id), lang)
}

var englishNames = map[classifier.DiseaseID]string{
	classifier.BacterialSpot:     "Bacterial Spot",
	classifier.EarlyBlight:       "Early Blight",
	classifier.LateBlight:        "Late Blight",
	classifier.LeafMold:          "Leaf Mold",
	classifier.SeptoriaLeafSpot:  "Septoria Leaf Spot",
	classifier.SpiderMites:       "Spider Mites",
	classifier.TargetSpot:        "Target Spot",
	classifier.YellowLeafCurl:    "Tomato Yellow Leaf Curl Virus",
	classifier.TomatoMosaicVirus: "Tomato Mosaic Virus",
	classifier.PowderyMildew:     "Powdery Mildew",
}

// DisplayName projects a disease identifier onto its English display name.
// Sentinels and unknown identifiers project onto "overview", which routes
// the info view to the general catalogue page.
func DisplayName(id classifier.DiseaseID) string {
	if name, ok := englishNames[id]; ok {
		return name
	}
	return "overview"
}

var sinhalaNames = map[string]string{
	"Bacterial Spot":                "බැක්ටීරියා තිත්",
	"Early Blight":                  "පෙරළිත රෝගය",
	"Late Blight":                   "පශ්චිමාංගමාරය",
	"Leaf Mold":                     "පත්‍ර පූස්",
	"Septoria Leaf Spot":            "සෙප්ටෝරියා පත්‍ර ලප",
	"Spider Mites":                  "මකුළු මයිට්",
	"Target Spot":                   "ඉලක්ක ලප",
	"Tomato Yellow Leaf Curl Virus": "තක්කාලි කහ පත්‍ර කැරලි වෛරසය",
	"Tomato Mosaic Virus":           "තක්කාලි මොසෙයික් වෛරසය",
	"Powdery Mildew":                "පිටි පස් රෝගය",
}

// DiseaseNameForLanguage translates an English display name into the target
// language. Translation is best effort: when no mapping exists the English
// name is returned unchanged.
func DiseaseNameForLanguage(englishName string, lang Language) string {
	if lang != Sinhala {
		return englishName
	}
	if name, ok := sinhalaNames[englishName]; ok {
		return name
	}
	return englishName
}

// EnglishDiseaseName is the inverse projection: a Sinhala display name back
// to its English form, unchanged when no mapping exists.
func EnglishDiseaseName(localizedName string) string {
	for english, sinhala := range sinhalaNames {
		if sinhala == localizedName {
			return english
		}
	}
	return localizedName
}
