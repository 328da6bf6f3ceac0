package extraction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mission-quotation/internal/common/logger"
	"mission-quotation/internal/models"
)

const sampleBrief = `OPERATION DESERT FALCON
CLASSIFICATION: UNCLASSIFIED

MISSION BRIEF:
Operation Desert Falcon is a reconnaissance mission in arid desert terrain.

PERSONNEL REQUIREMENTS:
- 4x Infantry soldiers for reconnaissance and security
- 1x Combat medic for medical support
- 2x Communications specialists for radio operations

OPERATIONAL ENVIRONMENT:
- Location: Desert region with extreme heat conditions
- Temperature: 110-120°F during day operations

MISSION DURATION: 21 days

SPECIAL REQUIREMENTS:
- Extra water storage capacity required
- Desert camouflage uniforms mandatory
- Sand protection for sensitive equipment

THREAT ASSESSMENT: Medium threat level`

func roles(personnel []models.PersonnelRequirement) []models.PersonnelRequirement {
	out := make([]models.PersonnelRequirement, len(personnel))
	for i, p := range personnel {
		out[i] = models.PersonnelRequirement{Role: p.Role, Count: p.Count}
	}
	return out
}

func TestParse_InlineSummary(t *testing.T) {
	m := Parse("4x Infantry soldiers... 1x Combat medic... 2x Communications specialists... desert... 21 days... medium threat")

	assert.Equal(t, []models.PersonnelRequirement{
		{Role: models.RoleInfantry, Count: 4},
		{Role: models.RoleMedic, Count: 1},
		{Role: models.RoleCommunications, Count: 2},
	}, roles(m.Personnel))
	assert.Equal(t, models.LocationDesert, m.LocationType)
	assert.Equal(t, 21, m.DurationDays)
	assert.Equal(t, models.ThreatMedium, m.ThreatLevel)
}

func TestParse_SampleBrief(t *testing.T) {
	m := Parse(sampleBrief)

	assert.Equal(t, "OPERATION DESERT FALCON", m.MissionName)
	assert.Equal(t, models.LocationDesert, m.LocationType)
	assert.Equal(t, models.MissionReconnaissance, m.MissionType)
	assert.Equal(t, []models.PersonnelRequirement{
		{Role: models.RoleInfantry, Count: 4, TaskAssignment: infantryTask},
		{Role: models.RoleMedic, Count: 1, TaskAssignment: medicTask},
		{Role: models.RoleCommunications, Count: 2, TaskAssignment: communicationsTask},
	}, m.Personnel)
	assert.Equal(t, 21, m.DurationDays)
	// "extreme heat" reads as a high threat keyword.
	assert.Equal(t, models.ThreatHigh, m.ThreatLevel)
	assert.Equal(t, specialRequirementsEnhanced, m.SpecialRequirements)
	assert.Empty(t, m.Budget)
}

func TestParse_EmptyDocument(t *testing.T) {
	m := Parse("  \n\t\n")

	assert.Equal(t, placeholderMissionName, m.MissionName)
	assert.Equal(t, models.LocationNotIncluded, m.LocationType)
	assert.Equal(t, models.MissionNotIncluded, m.MissionType)
	assert.Equal(t, []models.PersonnelRequirement{
		{Role: models.RoleInfantry, Count: defaultInfantryCount, TaskAssignment: infantryTask},
	}, m.Personnel)
	assert.Equal(t, defaultDurationDays, m.DurationDays)
	assert.Equal(t, models.ThreatMedium, m.ThreatLevel)
	assert.Equal(t, specialRequirementsStandard, m.SpecialRequirements)
}

func TestParse_MissionName(t *testing.T) {
	assert.Equal(t, "Operation Frost", Parse("\n\n   Operation Frost  \nsecond line").MissionName)
}

func TestParse_LocationType(t *testing.T) {
	tests := []struct {
		text string
		want models.LocationType
	}{
		{"arid plateau", models.LocationDesert},
		{"SAND storms expected", models.LocationDesert},
		{"winter deployment", models.LocationCold},
		{"Arctic survey", models.LocationCold},
		{"desert by day, cold at night", models.LocationDesert},
		{"jungle patrol", models.LocationNotIncluded},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.text).LocationType)
		})
	}
}

func TestParse_MissionTypePriority(t *testing.T) {
	tests := []struct {
		text string
		want models.MissionType
	}{
		{"recon patrol", models.MissionReconnaissance},
		{"assault and recon", models.MissionReconnaissance},
		{"attack during training", models.MissionAssault},
		{"disaster relief", models.MissionHumanitarian},
		{"field exercise", models.MissionTraining},
		{"supply convoy", models.MissionLogistics},
		{"something else", models.MissionNotIncluded},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.text).MissionType)
		})
	}
}

func TestParse_Personnel(t *testing.T) {
	t.Run("only infantry", func(t *testing.T) {
		m := Parse("12 soldiers on patrol")
		assert.Equal(t, []models.PersonnelRequirement{{Role: models.RoleInfantry, Count: 12}}, roles(m.Personnel))
	})

	t.Run("synonyms", func(t *testing.T) {
		m := Parse("6 troopers\n2 navy corpsman\n3 signal operators")
		assert.Equal(t, []models.PersonnelRequirement{
			{Role: models.RoleInfantry, Count: 6},
			{Role: models.RoleMedic, Count: 2},
			{Role: models.RoleCommunications, Count: 3},
		}, roles(m.Personnel))
	})

	t.Run("count must share the line with the role", func(t *testing.T) {
		m := Parse("team of 5\nmedic attached")
		assert.Equal(t, []models.PersonnelRequirement{{Role: models.RoleInfantry, Count: defaultInfantryCount}}, roles(m.Personnel))
	})

	t.Run("no default medic", func(t *testing.T) {
		m := Parse("2 radio operators")
		assert.Equal(t, []models.PersonnelRequirement{
			{Role: models.RoleInfantry, Count: defaultInfantryCount},
			{Role: models.RoleCommunications, Count: 2},
		}, roles(m.Personnel))
	})

	t.Run("zero count ignored", func(t *testing.T) {
		m := Parse("0 soldiers")
		assert.Equal(t, defaultInfantryCount, m.Personnel[0].Count)
	})
}

func TestParse_Duration(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"for 10 days", 10},
		{"1 day only", 1},
		{"3 weeks in theatre", 21},
		{"a 2-week exercise", 14},
		{"lasting 5 days, maybe 2 weeks", 5},
		{"no timeline", defaultDurationDays},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.text).DurationDays)
		})
	}
}

func TestParse_ThreatLevel(t *testing.T) {
	tests := []struct {
		text string
		want models.ThreatLevel
	}{
		{"Low threat environment", models.ThreatLow},
		{"minimal threat", models.ThreatLow},
		{"HIGH THREAT area", models.ThreatHigh},
		{"hostile forces nearby", models.ThreatHigh},
		{"low threat, though extreme weather", models.ThreatLow},
		{"nothing stated", models.ThreatMedium},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.text).ThreatLevel)
		})
	}
}

func TestParse_SpecialRequirements(t *testing.T) {
	assert.Equal(t, specialRequirementsEnhanced, Parse("Special forces support").SpecialRequirements)
	assert.Equal(t, specialRequirementsStandard, Parse("routine").SpecialRequirements)
}

func TestHeuristicExtractor_Extract(t *testing.T) {
	ex := NewHeuristic(logger.NewTestLogger(t))
	assert.Equal(t, StrategyHeuristic, ex.Strategy())

	result := ex.Extract(context.Background(), sampleBrief)

	require.True(t, result.Success)
	require.NotNil(t, result.Data)
	assert.Equal(t, 100, result.Confidence)
	assert.Empty(t, result.Error)
	assert.Equal(t, StrategyHeuristic, result.Strategy)

	empty := ex.Extract(context.Background(), "")
	require.True(t, empty.Success)
	assert.Equal(t, 67, empty.Confidence)
}
