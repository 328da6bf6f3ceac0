package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRegistry() *EquipmentRegistry {
	return &EquipmentRegistry{
		Version: "1.0.0",
		Groups: map[string]map[string][]EquipmentEntry{
			"infantry": {
				"footwear": {
					{SKU: "BOOT-1", Name: "Boot", Price: 100, WeightLbs: 2, LeadTimeDays: 3, Vendor: "V", InStock: true},
				},
			},
		},
		Vendors: []VendorEntry{{Name: "V", GSAContract: true}},
	}
}

func TestSaveAndLoadRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, SaveRegistry(path, sampleRegistry()))

	reg, err := LoadRegistry(path)
	require.NoError(t, err)
	assert.Equal(t, sampleRegistry(), reg)
	assert.Equal(t, 1, reg.ItemCount())
	assert.NoError(t, reg.Validate())
}

func TestLoadRegistry_Errors(t *testing.T) {
	_, err := LoadRegistry(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"groups":`), 0644))
	_, err = LoadRegistry(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	reg := sampleRegistry()
	reg.Groups["medic"] = map[string][]EquipmentEntry{
		"first_aid": {
			{SKU: "BOOT-1", Price: 1},
			{SKU: "", Price: -1, WeightLbs: -1, LeadTimeDays: -1},
		},
	}

	err := reg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate sku "BOOT-1"`)
	assert.Contains(t, err.Error(), "medic.first_aid[1]: sku is required")
	assert.Contains(t, err.Error(), "price must be >= 0")
	assert.Contains(t, err.Error(), "weight_lbs must be >= 0")
	assert.Contains(t, err.Error(), "lead_time_days must be >= 0")

	assert.Error(t, (&EquipmentRegistry{}).Validate())
}
