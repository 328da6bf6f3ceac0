// internal/workers/mission/extract-mission/models.go
package extractmission

import "mission-quotation/internal/models"

type Input struct {
	DocumentText string `json:"documentText"`
	FileName     string `json:"fileName,omitempty"`
}

type Output struct {
	Extraction models.ExtractionResult `json:"extraction"`
	FileName   string                  `json:"fileName,omitempty"`
}
