package icv

// Level is the qualitative band of an ICV score.
type Level string

const (
	LevelErgonomic Level = "ergonomic"
	LevelTolerable Level = "tolerable"
	LevelHighRisk  Level = "high-risk"
)

// Severity orders levels for display.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Band upper bounds, inclusive.
const (
	ErgonomicMax = 30
	TolerableMax = 60
)

// Rating describes an ICV score for humans.
type Rating struct {
	Level       Level    `json:"level"`
	Label       string   `json:"label"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
}

// Rate maps a score onto its rating band: <=30 ergonomic, <=60 tolerable,
// anything higher is high risk.
func Rate(score int) Rating {
	switch {
	case score <= ErgonomicMax:
		return Rating{
			Level:       LevelErgonomic,
			Label:       "Ergonomic",
			Severity:    SeverityLow,
			Description: "Low visual load. Comfortable.",
		}
	case score <= TolerableMax:
		return Rating{
			Level:       LevelTolerable,
			Label:       "Tolerable",
			Severity:    SeverityMedium,
			Description: "Medium load. Acceptable for short periods.",
		}
	default:
		return Rating{
			Level:       LevelHighRisk,
			Label:       "High Risk",
			Severity:    SeverityHigh,
			Description: "Rapid visual fatigue. Not recommended.",
		}
	}
}
