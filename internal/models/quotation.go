// internal/models/quotation.go
package models

import (
	"strings"
	"time"
)

type QuotationLineItem struct {
	SKU        string  `json:"sku"`
	Name       string  `json:"name"`
	Brand      string  `json:"brand"`
	Category   string  `json:"category"`
	UnitPrice  float64 `json:"unitPrice"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"totalPrice"`
	AssignedTo string  `json:"assignedTo"`
	LeadTime   int     `json:"leadTime"`
	Weight     float64 `json:"weight"`
	Vendor     string  `json:"vendor"`
	InStock    bool    `json:"inStock"`
}

// Assignee is the role or environment part of AssignedTo, without the
// quantity label.
func (li QuotationLineItem) Assignee() string {
	if i := strings.Index(li.AssignedTo, " ("); i >= 0 {
		return li.AssignedTo[:i]
	}
	return li.AssignedTo
}

type QuotationSummary struct {
	TotalItems    int     `json:"totalItems"`
	TotalQuantity int     `json:"totalQuantity"`
	TotalWeight   float64 `json:"totalWeight"`
	MaxLeadTime   int     `json:"maxLeadTime"`
	Subtotal      float64 `json:"subtotal"`
	Tax           float64 `json:"tax"`
	Shipping      float64 `json:"shipping"`
	Total         float64 `json:"total"`
}

type Quotation struct {
	QuotationID         string                 `json:"quotationId"`
	MissionName         string                 `json:"missionName"`
	MissionType         MissionType            `json:"missionType"`
	Environment         LocationType           `json:"environment"`
	ThreatLevel         ThreatLevel            `json:"threatLevel"`
	Duration            int                    `json:"duration"`
	Created             time.Time              `json:"created"`
	ValidUntil          time.Time              `json:"validUntil"`
	Items               []QuotationLineItem    `json:"items"`
	Summary             QuotationSummary       `json:"summary"`
	Personnel           []PersonnelRequirement `json:"personnel"`
	SpecialRequirements string                 `json:"specialRequirements"`
}

// ItemGroup is a run of line items sharing an assignee.
type ItemGroup struct {
	Assignee string              `json:"assignee"`
	Items    []QuotationLineItem `json:"items"`
	Subtotal float64             `json:"subtotal"`
}

// GroupByAssignee groups line items by role or environment package, keeping
// the order in which each assignee first appears.
func (q *Quotation) GroupByAssignee() []ItemGroup {
	var groups []ItemGroup
	index := map[string]int{}
	for _, item := range q.Items {
		key := item.Assignee()
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, ItemGroup{Assignee: key})
		}
		groups[i].Items = append(groups[i].Items, item)
		groups[i].Subtotal += item.TotalPrice
	}
	return groups
}
