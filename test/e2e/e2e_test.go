// test/e2e/e2e_test.go
package e2e

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mission-quotation/internal/catalog"
	"mission-quotation/internal/common/camunda"
	"mission-quotation/internal/common/config"
	"mission-quotation/internal/common/logger"
	"mission-quotation/internal/common/observability"
	"mission-quotation/internal/export"
	"mission-quotation/internal/extraction"
	"mission-quotation/internal/models"
	"mission-quotation/internal/quotation"

	em "mission-quotation/internal/workers/mission/extract-mission"
	eq "mission-quotation/internal/workers/quotation/export-quotation"
	gq "mission-quotation/internal/workers/quotation/generate-quotation"
)

const processID = "mission-quotation-e2e"

// Extract, price and export in one straight-through process. The extracted
// mission is mapped onto the variable the generator reads.
const processXML = `<?xml version="1.0" encoding="UTF-8"?>
<bpmn:definitions xmlns:bpmn="http://www.omg.org/spec/BPMN/20100524/MODEL"
                  xmlns:zeebe="http://camunda.org/schema/zeebe/1.0"
                  id="Definitions_1" targetNamespace="http://bpmn.io/schema/bpmn">
  <bpmn:process id="mission-quotation-e2e" isExecutable="true">
    <bpmn:startEvent id="start"><bpmn:outgoing>f1</bpmn:outgoing></bpmn:startEvent>
    <bpmn:serviceTask id="extract" name="Extract mission">
      <bpmn:extensionElements>
        <zeebe:taskDefinition type="extract-mission" />
        <zeebe:ioMapping><zeebe:output source="=extraction.data" target="mission" /></zeebe:ioMapping>
      </bpmn:extensionElements>
      <bpmn:incoming>f1</bpmn:incoming><bpmn:outgoing>f2</bpmn:outgoing>
    </bpmn:serviceTask>
    <bpmn:serviceTask id="generate" name="Generate quotation">
      <bpmn:extensionElements><zeebe:taskDefinition type="generate-quotation" /></bpmn:extensionElements>
      <bpmn:incoming>f2</bpmn:incoming><bpmn:outgoing>f3</bpmn:outgoing>
    </bpmn:serviceTask>
    <bpmn:serviceTask id="export" name="Export quotation">
      <bpmn:extensionElements><zeebe:taskDefinition type="export-quotation" /></bpmn:extensionElements>
      <bpmn:incoming>f3</bpmn:incoming><bpmn:outgoing>f4</bpmn:outgoing>
    </bpmn:serviceTask>
    <bpmn:endEvent id="end"><bpmn:incoming>f4</bpmn:incoming></bpmn:endEvent>
    <bpmn:sequenceFlow id="f1" sourceRef="start" targetRef="extract" />
    <bpmn:sequenceFlow id="f2" sourceRef="extract" targetRef="generate" />
    <bpmn:sequenceFlow id="f3" sourceRef="generate" targetRef="export" />
    <bpmn:sequenceFlow id="f4" sourceRef="export" targetRef="end" />
  </bpmn:process>
</bpmn:definitions>`

const brief = `OPERATION SAND VIPER
Reconnaissance patrol in hot desert terrain.
Team: 3 infantry soldiers, 1 medic and 1 radio operator.
Duration: 10 days. Hostile activity reported.`

func TestMissionQuotationProcess(t *testing.T) {
	address := os.Getenv("ZEEBE_ADDRESS")
	if address == "" {
		t.Skip("ZEEBE_ADDRESS not set, skipping end-to-end test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := camunda.NewClient(address)
	require.NoError(t, err, "connect to Zeebe")
	defer client.Close()

	zc := client.GetClient()
	_, err = client.ExecuteWithRetry(ctx, func(ctx context.Context) (interface{}, error) {
		return zc.NewDeployResourceCommand().AddResource([]byte(processXML), "mission-quotation-e2e.bpmn").Send(ctx)
	}, "deploy process")
	require.NoError(t, err)

	log := logger.NewTestLogger(t)
	obs := observability.NewNoop()
	cat := catalog.Default()
	app := &config.Config{}

	extractHandler := em.NewHandler(em.ConfigFrom(app), extraction.NewHeuristic(log), obs, log)
	generateHandler := gq.NewHandler(gq.ConfigFrom(app), quotation.NewGenerator(quotation.DefaultConfig(), log), obs, log)
	exportHandler := eq.NewHandler(eq.ConfigFrom(app), cat, obs, log)

	workers := []*camunda.Worker{
		camunda.StartWorker(zc, app, em.TaskType, extractHandler.Handle, log),
		camunda.StartWorker(zc, app, gq.TaskType, generateHandler.Handle, log),
		camunda.StartWorker(zc, app, eq.TaskType, exportHandler.Handle, log),
	}
	defer func() {
		for _, w := range workers {
			w.Stop()
		}
	}()

	cmd, err := zc.NewCreateInstanceCommand().
		BPMNProcessId(processID).
		LatestVersion().
		VariablesFromMap(map[string]interface{}{
			"documentText": brief,
			"fileName":     "sand-viper.txt",
			"format":       "xlsx",
		})
	require.NoError(t, err)

	result, err := cmd.WithResult().Send(ctx)
	require.NoError(t, err, "process did not complete")

	var vars struct {
		Extraction      models.ExtractionResult `json:"extraction"`
		Mission         models.Mission          `json:"mission"`
		Quotation       models.Quotation        `json:"quotation"`
		FileName        string                  `json:"fileName"`
		ContentType     string                  `json:"contentType"`
		ContentEncoding string                  `json:"contentEncoding"`
		Content         string                  `json:"content"`
	}
	require.NoError(t, json.Unmarshal([]byte(result.GetVariables()), &vars))

	assert.True(t, vars.Extraction.Success)
	assert.Equal(t, extraction.StrategyHeuristic, vars.Extraction.Strategy)
	assert.Equal(t, "OPERATION SAND VIPER", vars.Mission.MissionName)
	assert.Equal(t, models.LocationDesert, vars.Mission.LocationType)
	assert.Equal(t, models.ThreatHigh, vars.Mission.ThreatLevel)
	assert.Equal(t, 10, vars.Mission.DurationDays)

	q := vars.Quotation
	assert.Equal(t, "OPERATION SAND VIPER", q.MissionName)
	assert.NotEmpty(t, q.Items)
	assert.InDelta(t, q.Summary.Subtotal+q.Summary.Tax+q.Summary.Shipping, q.Summary.Total, 0.01)

	assert.Equal(t, q.QuotationID+"_quotation.xlsx", vars.FileName)
	assert.Equal(t, eq.EncodingBase64, vars.ContentEncoding)
	content, err := base64.StdEncoding.DecodeString(vars.Content)
	require.NoError(t, err)
	assert.NotEmpty(t, content)

	// The quotation survives the round trip through process variables.
	raw, err := json.Marshal(q)
	require.NoError(t, err)
	parsed, err := export.ParseJSON(raw)
	require.NoError(t, err)
	assert.Equal(t, q.Summary, parsed.Summary)
}
