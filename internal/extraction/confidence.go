// internal/extraction/confidence.go
package extraction

import (
	"math"

	"mission-quotation/internal/models"
)

const confidenceFields = 6

// Confidence is the share of the six scored mission fields that carry a
// real value, as a rounded percentage.
func Confidence(m *models.Mission) int {
	if m == nil {
		return 0
	}

	score := 0
	if determined(m.MissionName) {
		score++
	}
	if determined(string(m.LocationType)) {
		score++
	}
	if determined(string(m.MissionType)) {
		score++
	}
	if len(m.Personnel) > 0 {
		score++
	}
	if determined(m.SpecialRequirements) {
		score++
	}
	if determined(string(m.ThreatLevel)) {
		score++
	}

	return int(math.Round(float64(score) / confidenceFields * 100))
}

func determined(v string) bool {
	return v != "" && v != models.NotIncluded
}
