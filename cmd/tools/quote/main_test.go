package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mission-quotation/internal/models"
	"mission-quotation/internal/quotation"
)

func writeMission(t *testing.T, body string) string {
	path := filepath.Join(t.TempDir(), "mission.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadMission(t *testing.T) {
	m, err := loadMission(writeMission(t, `{
		"mission_name": "Operation North Wind",
		"location_type": "cold",
		"duration_days": 5,
		"personnel": [{"role": "infantry", "count": 3}]
	}`))
	require.NoError(t, err)
	assert.Equal(t, "Operation North Wind", m.MissionName)
	assert.Equal(t, models.ThreatNotIncluded, m.ThreatLevel)
}

func TestLoadMission_Rejected(t *testing.T) {
	tests := map[string]string{
		"negative count": `{"mission_name":"Op","location_type":"desert","personnel":[{"role":"infantry","count":-3}]}`,
		"no personnel":   `{"mission_name":"Op","location_type":"desert","personnel":[]}`,
		"not json":       `{"mission_name":`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := loadMission(writeMission(t, body))
			assert.ErrorIs(t, err, quotation.ErrInvalidMission)
		})
	}

	_, err := loadMission(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
