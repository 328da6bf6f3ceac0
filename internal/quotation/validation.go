// internal/quotation/validation.go
package quotation

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"mission-quotation/internal/common/validation"
	"mission-quotation/internal/models"
)

var ErrInvalidMission = errors.New("invalid mission")

// MissionValidationError carries the schema violations of a rejected mission.
type MissionValidationError struct {
	Result *validation.ValidationResult
}

func (e *MissionValidationError) Error() string {
	return fmt.Sprintf("%v: %s", ErrInvalidMission, strings.Join(e.Result.GetErrorMessages(), "; "))
}

func (e *MissionValidationError) Unwrap() error {
	return ErrInvalidMission
}

// PersonnelErrors returns the violations found in the personnel list.
func (e *MissionValidationError) PersonnelErrors() []validation.ValidationError {
	return e.Result.GetErrorsForField("personnel")
}

// MissingRequired reports whether a top-level required field was absent.
func (e *MissionValidationError) MissingRequired() bool {
	return e.Result.HasErrors("(root)")
}

func enumOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// MissionInputSchema describes a mission as accepted for pricing, after any
// manual edits. Unknown fields are tolerated.
func MissionInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"mission_name":  {Type: "string"},
			"location_type": {Type: "string", Enum: enumOf(models.LocationTypes)},
			"mission_type":  {Type: "string", Enum: enumOf(models.MissionTypes)},
			"personnel": {
				Type:     "array",
				MinItems: validation.Int(1),
				Items: &validation.Property{
					Type: "object",
					Properties: map[string]validation.Property{
						"role":            {Type: "string", Enum: enumOf(models.Roles)},
						"count":           {Type: "integer", Minimum: validation.Float(1)},
						"task_assignment": {Type: "string"},
					},
					Required: []string{"role", "count"},
				},
			},
			"duration_days":        {Type: "integer", Minimum: validation.Float(1)},
			"special_requirements": {Type: "string"},
			"threat_level":         {Type: "string", Enum: enumOf(models.ThreatLevels)},
			"budget":               {Type: "string"},
		},
		Required: []string{"mission_name", "location_type", "personnel"},
	}
}

// DecodeMission checks raw against MissionInputSchema and decodes it. An
// absent mission type or threat level becomes "Not included".
func DecodeMission(raw []byte) (*models.Mission, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, fmt.Errorf("%w: mission is required", ErrInvalidMission)
	}

	result, err := validation.ValidateJSON(raw, MissionInputSchema())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMission, err)
	}
	if !result.Valid {
		return nil, &MissionValidationError{Result: result}
	}

	var mission models.Mission
	if err := json.Unmarshal(raw, &mission); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMission, err)
	}
	defaultOptional(&mission)
	return &mission, nil
}

// ValidateMission applies the same checks as DecodeMission to a mission
// already in memory.
func ValidateMission(mission models.Mission) error {
	defaultOptional(&mission)

	result, err := validation.Validate(mission, MissionInputSchema())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMission, err)
	}
	if !result.Valid {
		return &MissionValidationError{Result: result}
	}
	return nil
}

func defaultOptional(m *models.Mission) {
	if m.MissionType == "" {
		m.MissionType = models.MissionNotIncluded
	}
	if m.ThreatLevel == "" {
		m.ThreatLevel = models.ThreatNotIncluded
	}
}
