package classifier

// DiseaseID is the canonical, language independent token produced by the
// remote model. It is the only stable join key across the system; display
// names and translation keys are derived from it.
type DiseaseID string

const (
	BacterialSpot     DiseaseID = "Bacterial_spot"
	EarlyBlight       DiseaseID = "Early_blight"
	LateBlight        DiseaseID = "Late_blight"
	LeafMold          DiseaseID = "Leaf_Mold"
	SeptoriaLeafSpot  DiseaseID = "Septoria_leaf_spot"
	SpiderMites       DiseaseID = "Spider_mites Two-spotted_spider_mite"
	TargetSpot        DiseaseID = "Target_Spot"
	YellowLeafCurl    DiseaseID = "Tomato_Yellow_Leaf_Curl_Virus"
	TomatoMosaicVirus DiseaseID = "Tomato_mosaic_virus"
	PowderyMildew     DiseaseID = "powdery_mildew"
	Healthy           DiseaseID = "healthy"
	NotTomatoLeaf     DiseaseID = "not_tomato_leaf"
)

// KnownDiseases enumerates every identifier the model can emit, sentinels
// included.
var KnownDiseases = []DiseaseID{
	BacterialSpot,
	EarlyBlight,
	LateBlight,
	LeafMold,
	SeptoriaLeafSpot,
	SpiderMites,
	TargetSpot,
	YellowLeafCurl,
	TomatoMosaicVirus,
	PowderyMildew,
	Healthy,
	NotTomatoLeaf,
}

// Severity is the ordinal risk level attached to a diagnosis.
type Severity string

const (
	SeverityLow           Severity = "Low"
	SeverityMedium        Severity = "Medium"
	SeverityHigh          Severity = "High"
	SeverityNotApplicable Severity = "N/A"
)

// ParseSeverity normalizes a wire severity value, defaulting to N/A for
// anything unrecognized.
func ParseSeverity(s string) Severity {
	switch Severity(s) {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return Severity(s)
	default:
		return SeverityNotApplicable
	}
}

// Result is the outcome of one classification call. DisplayName and
// Description arrive in English and are overwritten downstream with
// localized text; Disease, Confidence and Severity never change after
// creation.
type Result struct {
	Disease     DiseaseID
	DisplayName string
	Confidence  int
	Severity    Severity
	Description string
}
