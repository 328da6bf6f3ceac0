// pkg/registry/schema.go
package registry

// EquipmentRegistry is the on-disk form of the equipment catalog: items
// grouped by role or environment, then by category, in kit index order.
type EquipmentRegistry struct {
	Version     string                                 `json:"version"`
	LastUpdated string                                 `json:"lastUpdated"`
	Groups      map[string]map[string][]EquipmentEntry `json:"groups"`
	Vendors     []VendorEntry                          `json:"vendors,omitempty"`
}

type EquipmentEntry struct {
	SKU            string                 `json:"sku"`
	Name           string                 `json:"name"`
	Brand          string                 `json:"brand"`
	Category       string                 `json:"category"`
	Price          float64                `json:"price"`
	WeightLbs      float64                `json:"weight_lbs"`
	Description    string                 `json:"description,omitempty"`
	Specifications map[string]interface{} `json:"specifications,omitempty"`
	Vendor         string                 `json:"vendor"`
	InStock        bool                   `json:"in_stock"`
	LeadTimeDays   int                    `json:"lead_time_days"`
}

type VendorEntry struct {
	Name             string `json:"name"`
	Website          string `json:"website,omitempty"`
	Contact          string `json:"contact,omitempty"`
	ShippingPolicy   string `json:"shipping_policy,omitempty"`
	ReturnPolicy     string `json:"return_policy,omitempty"`
	MilitaryDiscount bool   `json:"military_discount"`
	GSAContract      bool   `json:"gsa_contract"`
}
