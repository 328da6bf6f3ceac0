// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
)

func LoadRegistry(path string) (*EquipmentRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg EquipmentRegistry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &reg, nil
}

func SaveRegistry(path string, reg *EquipmentRegistry) error {
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports every structural problem in the registry at once.
func (r *EquipmentRegistry) Validate() error {
	var errs []error
	if len(r.Groups) == 0 {
		errs = append(errs, errors.New("registry has no groups"))
	}

	skus := map[string]string{}
	for _, group := range sortedKeys(r.Groups) {
		for _, category := range sortedKeys(r.Groups[group]) {
			for i, e := range r.Groups[group][category] {
				path := fmt.Sprintf("%s.%s[%d]", group, category, i)
				if e.SKU == "" {
					errs = append(errs, fmt.Errorf("%s: sku is required", path))
				} else if prev, dup := skus[e.SKU]; dup {
					errs = append(errs, fmt.Errorf("%s: duplicate sku %q (first seen at %s)", path, e.SKU, prev))
				} else {
					skus[e.SKU] = path
				}
				if e.Price < 0 {
					errs = append(errs, fmt.Errorf("%s: price must be >= 0", path))
				}
				if e.WeightLbs < 0 {
					errs = append(errs, fmt.Errorf("%s: weight_lbs must be >= 0", path))
				}
				if e.LeadTimeDays < 0 {
					errs = append(errs, fmt.Errorf("%s: lead_time_days must be >= 0", path))
				}
			}
		}
	}
	return errors.Join(errs...)
}

// ItemCount is the number of entries across all groups.
func (r *EquipmentRegistry) ItemCount() int {
	n := 0
	for _, categories := range r.Groups {
		for _, entries := range categories {
			n += len(entries)
		}
	}
	return n
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
