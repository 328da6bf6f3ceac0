package generatequotation

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mission-quotation/internal/common/logger"
	"mission-quotation/internal/common/observability"
	"mission-quotation/internal/models"
	"mission-quotation/internal/quotation"
)

func newTestHandler(t *testing.T) *Handler {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	gen := quotation.NewGenerator(quotation.DefaultConfig(), logger.NewTestLogger(t),
		quotation.WithClock(func() time.Time { return now }),
		quotation.WithIDSuffix(func() string { return "7c1e9a04b3f2" }))
	return NewHandler(LoadConfig(), gen, observability.NewNoop(), logger.NewTestLogger(t))
}

func missionJSON(t *testing.T, m models.Mission) json.RawMessage {
	raw, err := json.Marshal(m)
	require.NoError(t, err)
	return raw
}

func TestHandler_Execute_Success(t *testing.T) {
	h := newTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{Mission: missionJSON(t, quotation.SampleMission())})
	require.NoError(t, err)
	require.NotNil(t, output.Quotation)

	q := output.Quotation
	assert.Equal(t, "MPS-1709294400000-7c1e9a04b3f2", q.QuotationID)
	assert.Equal(t, "Operation Desert Falcon", q.MissionName)
	assert.Len(t, q.Items, 14)
	assert.Equal(t, 9890.6, q.Summary.Total)
}

func TestHandler_Execute_FromJobVariables(t *testing.T) {
	h := newTestHandler(t)

	variables := `{
		"mission": {
			"mission_name": "Operation North Wind",
			"location_type": "cold",
			"personnel": [{"role": "medic", "count": 2}],
			"budget": "$20,000",
			"notes": "ignored"
		},
		"otherVariable": true
	}`

	var input Input
	require.NoError(t, json.Unmarshal([]byte(variables), &input))

	output, err := h.Execute(context.Background(), &input)
	require.NoError(t, err)

	q := output.Quotation
	assert.Equal(t, models.LocationCold, q.Environment)
	assert.Equal(t, models.MissionNotIncluded, q.MissionType)
	assert.Equal(t, models.ThreatNotIncluded, q.ThreatLevel)
	require.Len(t, q.Items, 7)
	assert.Equal(t, "medic (2x)", q.Items[0].AssignedTo)
	assert.Equal(t, "cold package (2x)", q.Items[6].AssignedTo)
}

func TestHandler_Execute_ValidationFailures(t *testing.T) {
	tests := []struct {
		name      string
		mission   string
		wantInErr string
	}{
		{
			name:      "missing mission",
			mission:   ``,
			wantInErr: "mission is required",
		},
		{
			name:      "null mission",
			mission:   `null`,
			wantInErr: "mission is required",
		},
		{
			name:      "empty personnel",
			mission:   `{"mission_name":"Op","location_type":"desert","personnel":[]}`,
			wantInErr: "personnel",
		},
		{
			name:      "zero count",
			mission:   `{"mission_name":"Op","location_type":"desert","personnel":[{"role":"infantry","count":0}]}`,
			wantInErr: "personnel.0.count",
		},
		{
			name:      "unknown role",
			mission:   `{"mission_name":"Op","location_type":"desert","personnel":[{"role":"pilot","count":1}]}`,
			wantInErr: "personnel.0.role",
		},
		{
			name:      "unknown location",
			mission:   `{"mission_name":"Op","location_type":"jungle","personnel":[{"role":"medic","count":1}]}`,
			wantInErr: "location_type",
		},
		{
			name:      "missing name",
			mission:   `{"location_type":"desert","personnel":[{"role":"medic","count":1}]}`,
			wantInErr: "mission_name",
		},
		{
			name:      "zero duration",
			mission:   `{"mission_name":"Op","location_type":"desert","duration_days":0,"personnel":[{"role":"medic","count":1}]}`,
			wantInErr: "duration_days",
		},
		{
			name:      "fractional count",
			mission:   `{"mission_name":"Op","location_type":"desert","personnel":[{"role":"medic","count":1.5}]}`,
			wantInErr: "count",
		},
	}

	h := newTestHandler(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := h.Execute(context.Background(), &Input{Mission: json.RawMessage(tt.mission)})
			require.Error(t, err)
			assert.Nil(t, output)
			assert.ErrorIs(t, err, quotation.ErrInvalidMission)
			assert.Contains(t, err.Error(), tt.wantInErr)
		})
	}
}
