// internal/extraction/heuristic.go
package extraction

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"mission-quotation/internal/common/logger"
	"mission-quotation/internal/models"
)

const (
	placeholderMissionName = "Demo Mission"
	defaultInfantryCount   = 4
	defaultMedicCount      = 1
	defaultDurationDays    = 7

	infantryTask       = "Security and reconnaissance operations"
	medicTask          = "Medical support and casualty care"
	communicationsTask = "Communication and coordination"

	specialRequirementsEnhanced = "Enhanced protection and specialized equipment required"
	specialRequirementsStandard = "Standard operational requirements"
)

// A count binds to the nearest following role keyword on the same line.
var (
	infantryPattern       = regexp.MustCompile(`(\d+)[^\d\n]*?(?:infantry|soldier|rifleman|trooper)`)
	medicPattern          = regexp.MustCompile(`(\d+)[^\d\n]*?(?:medic|corpsman|medical|doc)`)
	communicationsPattern = regexp.MustCompile(`(\d+)[^\d\n]*?(?:communications|comms|radio|signal)`)
	durationPattern       = regexp.MustCompile(`(\d+)[\s-]*(days?|weeks?)`)
)

var (
	desertKeywords = []string{"desert", "hot", "arid", "sand"}
	coldKeywords   = []string{"cold", "winter", "snow", "arctic"}

	missionTypeKeywords = []struct {
		missionType models.MissionType
		keywords    []string
	}{
		{models.MissionReconnaissance, []string{"reconnaissance", "recon"}},
		{models.MissionAssault, []string{"assault", "attack"}},
		{models.MissionHumanitarian, []string{"humanitarian", "relief"}},
		{models.MissionTraining, []string{"training", "exercise"}},
		{models.MissionLogistics, []string{"logistics", "supply"}},
	}

	lowThreatKeywords  = []string{"low threat", "minimal threat"}
	highThreatKeywords = []string{"high threat", "extreme", "hostile"}
)

// HeuristicExtractor parses documents locally with keyword and pattern
// matching. It never fails.
type HeuristicExtractor struct {
	logger logger.Logger
}

func NewHeuristic(log logger.Logger) *HeuristicExtractor {
	return &HeuristicExtractor{
		logger: log.With(map[string]interface{}{"strategy": StrategyHeuristic}),
	}
}

func (h *HeuristicExtractor) Strategy() string {
	return StrategyHeuristic
}

func (h *HeuristicExtractor) Extract(_ context.Context, documentText string) models.ExtractionResult {
	mission := Parse(documentText)

	h.logger.Debug("heuristic extraction completed", map[string]interface{}{
		"missionName":    mission.MissionName,
		"locationType":   mission.LocationType,
		"missionType":    mission.MissionType,
		"personnelCount": len(mission.Personnel),
		"durationDays":   mission.DurationDays,
	})

	return succeeded(StrategyHeuristic, mission)
}

// Parse applies the keyword heuristic to documentText.
func Parse(documentText string) *models.Mission {
	text := strings.ToLower(documentText)

	personnel := parsePersonnel(text)

	return &models.Mission{
		MissionName:         missionName(documentText),
		LocationType:        locationType(text),
		MissionType:         missionType(text),
		Personnel:           personnel,
		DurationDays:        durationDays(text),
		SpecialRequirements: specialRequirements(text),
		ThreatLevel:         threatLevel(text),
	}
}

func missionName(documentText string) string {
	for _, line := range strings.Split(documentText, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return placeholderMissionName
}

func locationType(text string) models.LocationType {
	switch {
	case containsAny(text, desertKeywords):
		return models.LocationDesert
	case containsAny(text, coldKeywords):
		return models.LocationCold
	default:
		return models.LocationNotIncluded
	}
}

func missionType(text string) models.MissionType {
	for _, mt := range missionTypeKeywords {
		if containsAny(text, mt.keywords) {
			return mt.missionType
		}
	}
	return models.MissionNotIncluded
}

func parsePersonnel(text string) []models.PersonnelRequirement {
	var personnel []models.PersonnelRequirement

	if count, ok := matchCount(infantryPattern, text); ok {
		personnel = append(personnel, models.PersonnelRequirement{Role: models.RoleInfantry, Count: count, TaskAssignment: infantryTask})
	} else {
		personnel = append(personnel, models.PersonnelRequirement{Role: models.RoleInfantry, Count: defaultInfantryCount, TaskAssignment: infantryTask})
	}

	// personnel holds exactly one entry here, so the default medic never fires.
	if count, ok := matchCount(medicPattern, text); ok {
		personnel = append(personnel, models.PersonnelRequirement{Role: models.RoleMedic, Count: count, TaskAssignment: medicTask})
	} else if len(personnel) > 2 {
		personnel = append(personnel, models.PersonnelRequirement{Role: models.RoleMedic, Count: defaultMedicCount, TaskAssignment: medicTask})
	}

	if count, ok := matchCount(communicationsPattern, text); ok {
		personnel = append(personnel, models.PersonnelRequirement{Role: models.RoleCommunications, Count: count, TaskAssignment: communicationsTask})
	}

	return personnel
}

func matchCount(pattern *regexp.Regexp, text string) (int, bool) {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

func durationDays(text string) int {
	m := durationPattern.FindStringSubmatch(text)
	if m == nil {
		return defaultDurationDays
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return defaultDurationDays
	}
	if strings.HasPrefix(m[2], "week") {
		n *= 7
	}
	return n
}

func threatLevel(text string) models.ThreatLevel {
	switch {
	case containsAny(text, lowThreatKeywords):
		return models.ThreatLow
	case containsAny(text, highThreatKeywords):
		return models.ThreatHigh
	default:
		return models.ThreatMedium
	}
}

func specialRequirements(text string) string {
	if strings.Contains(text, "special") {
		return specialRequirementsEnhanced
	}
	return specialRequirementsStandard
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
