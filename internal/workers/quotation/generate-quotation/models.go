// internal/workers/quotation/generate-quotation/models.go
package generatequotation

import (
	"encoding/json"

	"mission-quotation/internal/models"
)

// Input keeps the mission raw so it can be checked against the schema
// before it is decoded.
type Input struct {
	Mission json.RawMessage `json:"mission"`
}

type Output struct {
	Quotation *models.Quotation `json:"quotation"`
}
