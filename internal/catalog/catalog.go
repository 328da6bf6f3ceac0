// internal/catalog/catalog.go
package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// CategoryKey addresses one ordered list of items, e.g. infantry/protection.
type CategoryKey struct {
	Group    string `json:"group"`
	Category string `json:"category"`
}

func (k CategoryKey) String() string {
	return k.Group + "." + k.Category
}

// ParseCategoryPath converts the dotted form "infantry.protection".
func ParseCategoryPath(path string) (CategoryKey, error) {
	parts := strings.Split(path, ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return CategoryKey{}, fmt.Errorf("invalid category path %q: want <group>.<category>", path)
	}
	return CategoryKey{Group: parts[0], Category: parts[1]}, nil
}

// ItemRef points at a single catalog entry by position.
type ItemRef struct {
	Key   CategoryKey `json:"key"`
	Index int         `json:"index"`
}

func Ref(group, category string, index int) ItemRef {
	return ItemRef{Key: CategoryKey{Group: group, Category: category}, Index: index}
}

func (r ItemRef) String() string {
	return fmt.Sprintf("%s[%d]", r.Key, r.Index)
}

// CatalogItem is immutable reference data. Specifications is shared between
// copies and must not be modified.
type CatalogItem struct {
	SKU            string                 `json:"sku"`
	Name           string                 `json:"name"`
	Brand          string                 `json:"brand"`
	Category       string                 `json:"category"`
	Price          float64                `json:"price"`
	WeightLbs      float64                `json:"weight_lbs"`
	LeadTimeDays   int                    `json:"lead_time_days"`
	Vendor         string                 `json:"vendor"`
	InStock        bool                   `json:"in_stock"`
	Description    string                 `json:"description,omitempty"`
	Specifications map[string]interface{} `json:"specifications,omitempty"`
}

type Vendor struct {
	Name             string `json:"name"`
	Website          string `json:"website"`
	Contact          string `json:"contact"`
	ShippingPolicy   string `json:"shipping_policy"`
	ReturnPolicy     string `json:"return_policy"`
	MilitaryDiscount bool   `json:"military_discount"`
	GSAContract      bool   `json:"gsa_contract"`
}

// Catalog is a read-only table of equipment. It is safe for concurrent use
// because nothing mutates it after construction.
type Catalog struct {
	items   map[CategoryKey][]CatalogItem
	vendors map[string]Vendor
}

func New(items map[CategoryKey][]CatalogItem, vendors []Vendor) *Catalog {
	c := &Catalog{
		items:   make(map[CategoryKey][]CatalogItem, len(items)),
		vendors: make(map[string]Vendor, len(vendors)),
	}
	for k, list := range items {
		c.items[k] = append([]CatalogItem(nil), list...)
	}
	for _, v := range vendors {
		c.vendors[v.Name] = v
	}
	return c
}

// Lookup resolves ref. Unknown keys and out-of-range indexes report false.
func (c *Catalog) Lookup(ref ItemRef) (CatalogItem, bool) {
	list, ok := c.items[ref.Key]
	if !ok || ref.Index < 0 || ref.Index >= len(list) {
		return CatalogItem{}, false
	}
	return list[ref.Index], true
}

// LookupPath is Lookup for the dotted path form.
func (c *Catalog) LookupPath(path string, index int) (CatalogItem, bool) {
	key, err := ParseCategoryPath(path)
	if err != nil {
		return CatalogItem{}, false
	}
	return c.Lookup(ItemRef{Key: key, Index: index})
}

func (c *Catalog) Items(key CategoryKey) []CatalogItem {
	return append([]CatalogItem(nil), c.items[key]...)
}

// Keys lists every category key in group/category order.
func (c *Catalog) Keys() []CategoryKey {
	keys := make([]CategoryKey, 0, len(c.items))
	for k := range c.items {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Group != keys[j].Group {
			return keys[i].Group < keys[j].Group
		}
		return keys[i].Category < keys[j].Category
	})
	return keys
}

func (c *Catalog) Size() int {
	n := 0
	for _, list := range c.items {
		n += len(list)
	}
	return n
}

// FindSKU returns the first item with the given sku.
func (c *Catalog) FindSKU(sku string) (CatalogItem, ItemRef, bool) {
	for _, k := range c.Keys() {
		for i, item := range c.items[k] {
			if item.SKU == sku {
				return item, ItemRef{Key: k, Index: i}, true
			}
		}
	}
	return CatalogItem{}, ItemRef{}, false
}

func (c *Catalog) Vendor(name string) (Vendor, bool) {
	v, ok := c.vendors[name]
	return v, ok
}

func (c *Catalog) Vendors() []Vendor {
	out := make([]Vendor, 0, len(c.vendors))
	for _, v := range c.vendors {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

var defaultCatalog = New(builtinItems(), builtinVendors())

// Default is the built-in equipment catalog.
func Default() *Catalog {
	return defaultCatalog
}
