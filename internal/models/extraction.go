// internal/models/extraction.go
package models

// ExtractionResult is the outcome of turning a document into a Mission.
// On failure Data is nil and Error carries a human-readable message.
type ExtractionResult struct {
	Success    bool     `json:"success"`
	Data       *Mission `json:"data"`
	Confidence int      `json:"confidence"`
	Error      string   `json:"error,omitempty"`
	Strategy   string   `json:"strategy,omitempty"`
}
