// internal/quotation/sample.go
package quotation

import "mission-quotation/internal/models"

// SampleMission is the demonstration mission offered when no document is
// available.
func SampleMission() models.Mission {
	return models.Mission{
		MissionName:  "Operation Desert Falcon",
		MissionType:  models.MissionReconnaissance,
		LocationType: models.LocationDesert,
		ThreatLevel:  models.ThreatMedium,
		DurationDays: 21,
		Personnel: []models.PersonnelRequirement{
			{Role: models.RoleInfantry, Count: 4, TaskAssignment: "Security and reconnaissance operations"},
			{Role: models.RoleMedic, Count: 1, TaskAssignment: "Medical support and casualty care"},
			{Role: models.RoleCommunications, Count: 2, TaskAssignment: "Communication and coordination"},
		},
		SpecialRequirements: "Extra water storage capacity and sand protection required",
	}
}

func (g *Generator) GenerateSample() *models.Quotation {
	return g.Generate(SampleMission())
}
