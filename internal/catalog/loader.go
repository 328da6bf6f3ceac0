// internal/catalog/loader.go
package catalog

import (
	"fmt"
	"time"

	"mission-quotation/pkg/registry"
)

// LoadFile reads a replacement catalog from a registry JSON file.
func LoadFile(path string) (*Catalog, error) {
	reg, err := registry.LoadRegistry(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return FromRegistry(reg)
}

func FromRegistry(reg *registry.EquipmentRegistry) (*Catalog, error) {
	if err := reg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	items := make(map[CategoryKey][]CatalogItem)
	for group, categories := range reg.Groups {
		for category, entries := range categories {
			key := CategoryKey{Group: group, Category: category}
			list := make([]CatalogItem, len(entries))
			for i, e := range entries {
				list[i] = CatalogItem{
					SKU:            e.SKU,
					Name:           e.Name,
					Brand:          e.Brand,
					Category:       e.Category,
					Price:          e.Price,
					WeightLbs:      e.WeightLbs,
					LeadTimeDays:   e.LeadTimeDays,
					Vendor:         e.Vendor,
					InStock:        e.InStock,
					Description:    e.Description,
					Specifications: e.Specifications,
				}
			}
			items[key] = list
		}
	}

	vendors := make([]Vendor, len(reg.Vendors))
	for i, v := range reg.Vendors {
		vendors[i] = Vendor{
			Name:             v.Name,
			Website:          v.Website,
			Contact:          v.Contact,
			ShippingPolicy:   v.ShippingPolicy,
			ReturnPolicy:     v.ReturnPolicy,
			MilitaryDiscount: v.MilitaryDiscount,
			GSAContract:      v.GSAContract,
		}
	}

	return New(items, vendors), nil
}

// ToRegistry converts the catalog back into its file form.
func (c *Catalog) ToRegistry(version string) *registry.EquipmentRegistry {
	reg := &registry.EquipmentRegistry{
		Version:     version,
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
		Groups:      map[string]map[string][]registry.EquipmentEntry{},
	}
	for _, key := range c.Keys() {
		if reg.Groups[key.Group] == nil {
			reg.Groups[key.Group] = map[string][]registry.EquipmentEntry{}
		}
		entries := make([]registry.EquipmentEntry, 0, len(c.items[key]))
		for _, item := range c.items[key] {
			entries = append(entries, registry.EquipmentEntry{
				SKU:            item.SKU,
				Name:           item.Name,
				Brand:          item.Brand,
				Category:       item.Category,
				Price:          item.Price,
				WeightLbs:      item.WeightLbs,
				Description:    item.Description,
				Specifications: item.Specifications,
				Vendor:         item.Vendor,
				InStock:        item.InStock,
				LeadTimeDays:   item.LeadTimeDays,
			})
		}
		reg.Groups[key.Group][key.Category] = entries
	}
	for _, v := range c.Vendors() {
		reg.Vendors = append(reg.Vendors, registry.VendorEntry{
			Name:             v.Name,
			Website:          v.Website,
			Contact:          v.Contact,
			ShippingPolicy:   v.ShippingPolicy,
			ReturnPolicy:     v.ReturnPolicy,
			MilitaryDiscount: v.MilitaryDiscount,
			GSAContract:      v.GSAContract,
		})
	}
	return reg
}
