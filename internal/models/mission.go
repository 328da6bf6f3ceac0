// internal/models/mission.go
package models

import "fmt"

// NotIncluded is the wire value for a mission field that could not be
// determined from the source document.
const NotIncluded = "Not included"

type LocationType string

const (
	LocationDesert      LocationType = "desert"
	LocationCold        LocationType = "cold"
	LocationNotIncluded LocationType = NotIncluded
)

type MissionType string

const (
	MissionReconnaissance MissionType = "reconnaissance"
	MissionAssault        MissionType = "assault"
	MissionHumanitarian   MissionType = "humanitarian"
	MissionTraining       MissionType = "training"
	MissionLogistics      MissionType = "logistics"
	MissionNotIncluded    MissionType = NotIncluded
)

type ThreatLevel string

const (
	ThreatLow         ThreatLevel = "low"
	ThreatMedium      ThreatLevel = "medium"
	ThreatHigh        ThreatLevel = "high"
	ThreatNotIncluded ThreatLevel = NotIncluded
)

type Role string

const (
	RoleInfantry       Role = "infantry"
	RoleMedic          Role = "medic"
	RoleCommunications Role = "communications"
)

var (
	LocationTypes = []LocationType{LocationDesert, LocationCold, LocationNotIncluded}
	MissionTypes  = []MissionType{MissionReconnaissance, MissionAssault, MissionHumanitarian, MissionTraining, MissionLogistics, MissionNotIncluded}
	ThreatLevels  = []ThreatLevel{ThreatLow, ThreatMedium, ThreatHigh, ThreatNotIncluded}
	Roles         = []Role{RoleInfantry, RoleMedic, RoleCommunications}
)

type Mission struct {
	MissionName         string                 `json:"mission_name"`
	LocationType        LocationType           `json:"location_type"`
	MissionType         MissionType            `json:"mission_type"`
	Personnel           []PersonnelRequirement `json:"personnel"`
	DurationDays        int                    `json:"duration_days"`
	SpecialRequirements string                 `json:"special_requirements"`
	ThreatLevel         ThreatLevel            `json:"threat_level"`
	Budget              string                 `json:"budget,omitempty"`
}

type PersonnelRequirement struct {
	Role           Role   `json:"role"`
	Count          int    `json:"count"`
	TaskAssignment string `json:"task_assignment"`
}

// TotalPersonnel sums the headcount across all requirements.
func (m *Mission) TotalPersonnel() int {
	total := 0
	for _, p := range m.Personnel {
		total += p.Count
	}
	return total
}

// ReplacePersonnel overwrites the requirement at index. Counts below 1 are
// rejected.
func (m *Mission) ReplacePersonnel(index int, req PersonnelRequirement) error {
	if index < 0 || index >= len(m.Personnel) {
		return fmt.Errorf("personnel index %d out of range [0,%d)", index, len(m.Personnel))
	}
	if req.Count < 1 {
		return fmt.Errorf("personnel count must be at least 1, got %d", req.Count)
	}
	m.Personnel[index] = req
	return nil
}

// AddPersonnel appends a requirement. A zero count is raised to 1.
func (m *Mission) AddPersonnel(req PersonnelRequirement) {
	if req.Count < 1 {
		req.Count = 1
	}
	m.Personnel = append(m.Personnel, req)
}

func (m *Mission) RemovePersonnel(index int) error {
	if index < 0 || index >= len(m.Personnel) {
		return fmt.Errorf("personnel index %d out of range [0,%d)", index, len(m.Personnel))
	}
	m.Personnel = append(m.Personnel[:index:index], m.Personnel[index+1:]...)
	return nil
}

// Clone returns a deep copy so callers can edit without aliasing the
// personnel slice.
func (m Mission) Clone() Mission {
	out := m
	if m.Personnel != nil {
		out.Personnel = make([]PersonnelRequirement, len(m.Personnel))
		copy(out.Personnel, m.Personnel)
	}
	return out
}
