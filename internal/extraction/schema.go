// internal/extraction/schema.go
package extraction

import (
	"mission-quotation/internal/common/validation"
	"mission-quotation/internal/models"
)

const schemaName = "mission_extraction"

func enumOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// MissionSchema is the structured-output contract sent to the extraction
// API and used to validate what comes back.
func MissionSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"mission_name": {
				Type:        "string",
				Description: "Name or title of the mission/operation",
			},
			"location_type": {
				Type:        "string",
				Enum:        enumOf(models.LocationTypes),
				Description: "Environment type - must be either 'desert', 'cold', or 'Not included'",
			},
			"mission_type": {
				Type:        "string",
				Enum:        enumOf(models.MissionTypes),
				Description: "Type of military mission",
			},
			"personnel": {
				Type: "array",
				Items: &validation.Property{
					Type: "object",
					Properties: map[string]validation.Property{
						"role": {
							Type:        "string",
							Enum:        enumOf(models.Roles),
							Description: "Personnel role - must be infantry, medic, or communications",
						},
						"count": {
							Type:        "integer",
							Minimum:     validation.Float(1),
							Description: "Number of personnel in this role",
						},
						"task_assignment": {
							Type:        "string",
							Description: "Specific tasks assigned to this role",
						},
					},
					Required:             []string{"role", "count", "task_assignment"},
					AdditionalProperties: validation.Bool(false),
				},
			},
			"duration_days": {
				Type:        "integer",
				Minimum:     validation.Float(1),
				Description: "Mission duration in days",
			},
			"special_requirements": {
				Type:        "string",
				Description: "Any special equipment or operational requirements",
			},
			"threat_level": {
				Type:        "string",
				Enum:        enumOf(models.ThreatLevels),
				Description: "Assessed threat level for the operation",
			},
		},
		Required: []string{
			"mission_name", "location_type", "mission_type", "personnel",
			"duration_days", "special_requirements", "threat_level",
		},
		AdditionalProperties: validation.Bool(false),
	}
}
