// internal/extraction/remote.go
package extraction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"mission-quotation/internal/common/config"
	httpclient "mission-quotation/internal/common/http"
	"mission-quotation/internal/common/logger"
	"mission-quotation/internal/common/validation"
	"mission-quotation/internal/models"
)

var ErrRemoteService = errors.New("REMOTE_SERVICE_ERROR")

// RemoteServiceError describes a failed call to the extraction API. StatusCode
// is zero when no HTTP response was received.
type RemoteServiceError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *RemoteServiceError) Error() string {
	msg := e.Message
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s: %d", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *RemoteServiceError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrRemoteService}
	}
	return []error{ErrRemoteService, e.Err}
}

// IsTimeout reports whether the call was abandoned because its context
// expired.
func (e *RemoteServiceError) IsTimeout() bool {
	return errors.Is(e.Err, context.DeadlineExceeded)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type       string     `json:"type"`
	JSONSchema jsonSchema `json:"json_schema"`
}

type jsonSchema struct {
	Name   string                 `json:"name"`
	Schema map[string]interface{} `json:"schema"`
	Strict bool                   `json:"strict"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	ResponseFormat responseFormat `json:"response_format"`
	Temperature    float64        `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
			Refusal string `json:"refusal,omitempty"`
		} `json:"message"`
	} `json:"choices"`
}

// RemoteExtractor calls a chat-completions API with a strict JSON schema
// response format. It does not retry and does not set its own deadline.
type RemoteExtractor struct {
	config config.OpenAIConfig
	client *httpclient.Client
	schema validation.JSONSchema
	logger logger.Logger
}

func NewRemote(cfg config.OpenAIConfig, log logger.Logger) *RemoteExtractor {
	return &RemoteExtractor{
		config: cfg,
		client: httpclient.NewClient(0),
		schema: MissionSchema(),
		logger: log.With(map[string]interface{}{"strategy": StrategyRemote}),
	}
}

func (r *RemoteExtractor) Strategy() string {
	return StrategyRemote
}

func (r *RemoteExtractor) Extract(ctx context.Context, documentText string) models.ExtractionResult {
	mission, err := r.extract(ctx, documentText)
	if err != nil {
		r.logger.Error("remote extraction failed", map[string]interface{}{
			"error": err.Error(),
		})
		return failed(StrategyRemote, err)
	}

	r.logger.Info("remote extraction completed", map[string]interface{}{
		"missionName":    mission.MissionName,
		"personnelCount": len(mission.Personnel),
	})
	return succeeded(StrategyRemote, mission)
}

func (r *RemoteExtractor) extract(ctx context.Context, documentText string) (*models.Mission, error) {
	schemaMap, err := r.schema.ToMap()
	if err != nil {
		return nil, &RemoteServiceError{Message: "build request schema", Err: err}
	}

	req := chatRequest{
		Model: r.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt(documentText)},
		},
		ResponseFormat: responseFormat{
			Type: "json_schema",
			JSONSchema: jsonSchema{
				Name:   schemaName,
				Schema: schemaMap,
				Strict: true,
			},
		},
		Temperature: r.config.Temperature,
	}

	url := strings.TrimRight(r.config.BaseURL, "/") + "/chat/completions"
	resp, err := r.client.PostJSON(ctx, url, map[string]string{
		"Authorization": "Bearer " + r.config.APIKey,
	}, req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, &RemoteServiceError{Message: "extraction API request abandoned", Err: ctxErr}
		}
		return nil, &RemoteServiceError{Message: "extraction API request failed", Err: err}
	}
	if !resp.OK() {
		return nil, &RemoteServiceError{StatusCode: resp.StatusCode, Message: "extraction API error"}
	}

	var body chatResponse
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return nil, &RemoteServiceError{StatusCode: resp.StatusCode, Message: "malformed extraction API response", Err: err}
	}
	if len(body.Choices) == 0 {
		return nil, &RemoteServiceError{StatusCode: resp.StatusCode, Message: "malformed extraction API response", Err: errors.New("no choices")}
	}

	msg := body.Choices[0].Message
	if msg.Refusal != "" {
		return nil, &RemoteServiceError{StatusCode: resp.StatusCode, Message: "extraction refused", Err: errors.New(msg.Refusal)}
	}

	return r.decodeMission([]byte(msg.Content))
}

func (r *RemoteExtractor) decodeMission(content []byte) (*models.Mission, error) {
	result, err := validation.ValidateJSON(content, r.schema)
	if err != nil {
		return nil, &RemoteServiceError{Message: "malformed mission data", Err: err}
	}
	if !result.Valid {
		return nil, &RemoteServiceError{
			Message: "mission data does not match schema",
			Err:     errors.New(strings.Join(result.GetErrorMessages(), "; ")),
		}
	}

	var mission models.Mission
	if err := json.Unmarshal(content, &mission); err != nil {
		return nil, &RemoteServiceError{Message: "malformed mission data", Err: err}
	}
	return &mission, nil
}
