package catalog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mission-quotation/internal/models"
	"mission-quotation/pkg/registry"
)

func TestParseCategoryPath(t *testing.T) {
	key, err := ParseCategoryPath("infantry.protection")
	require.NoError(t, err)
	assert.Equal(t, CategoryKey{Group: "infantry", Category: "protection"}, key)
	assert.Equal(t, "infantry.protection", key.String())

	for _, bad := range []string{"", "infantry", "infantry.", ".protection", "a.b.c"} {
		_, err := ParseCategoryPath(bad)
		assert.Error(t, err, bad)
	}
}

func TestLookup(t *testing.T) {
	c := Default()

	tests := []struct {
		name    string
		ref     ItemRef
		wantSKU string
		found   bool
	}{
		{"first armor", Ref("infantry", "protection", 0), "5M9-BP-PRAR6-BA-3ST-BC", true},
		{"helmet", Ref("infantry", "protection", 1), "AS-501-GEN2", true},
		{"cold boots", Ref("cold", "footwear", 0), "C755", true},
		{"index past end", Ref("infantry", "footwear", 1), "", false},
		{"negative index", Ref("infantry", "footwear", -1), "", false},
		{"unknown category", Ref("infantry", "load_bearing", 0), "", false},
		{"unknown group", Ref("jungle", "clothing", 0), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, ok := c.Lookup(tt.ref)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.wantSKU, item.SKU)
		})
	}
}

func TestLookupPath(t *testing.T) {
	item, ok := Default().LookupPath("medic.trauma_care", 1)
	require.True(t, ok)
	assert.Equal(t, "AMK-MOLLE-TRAUMA-05", item.SKU)
	assert.Equal(t, 95.0, item.Price)

	_, ok = Default().LookupPath("medic", 0)
	assert.False(t, ok)
}

func TestDefaultCatalog_Contents(t *testing.T) {
	c := Default()
	assert.Equal(t, 20, c.Size())
	assert.Len(t, c.Keys(), 13)

	for _, key := range c.Keys() {
		for _, item := range c.Items(key) {
			assert.Equal(t, "OpticsPlanet", item.Vendor, item.SKU)
			assert.True(t, item.InStock, item.SKU)
			assert.GreaterOrEqual(t, item.Price, 0.0)
			assert.GreaterOrEqual(t, item.WeightLbs, 0.0)
			assert.GreaterOrEqual(t, item.LeadTimeDays, 0)
		}
	}

	v, ok := c.Vendor("OpticsPlanet")
	require.True(t, ok)
	assert.Equal(t, "1-800-504-5897", v.Contact)
	assert.True(t, v.GSAContract)
	assert.Len(t, c.Vendors(), 1)
}

func TestItemsReturnsCopy(t *testing.T) {
	c := Default()
	key := CategoryKey{Group: "desert", Category: "clothing"}
	items := c.Items(key)
	items[0].Price = 0

	item, _ := c.Lookup(ItemRef{Key: key, Index: 0})
	assert.Equal(t, 65.0, item.Price)
}

func TestFindSKU(t *testing.T) {
	item, ref, ok := Default().FindSKU("TR960Z")
	require.True(t, ok)
	assert.Equal(t, "Belleville TR960Z Desert Boots", item.Name)
	assert.Equal(t, Ref("desert", "footwear", 0), ref)

	_, _, ok = Default().FindSKU("NOPE")
	assert.False(t, ok)
}

func TestKits(t *testing.T) {
	infantry, ok := RoleKit(models.RoleInfantry)
	require.True(t, ok)
	assert.Equal(t, "Infantry Rifleman Kit", infantry.Name)
	assert.Len(t, infantry.Items, 4)

	medic, _ := RoleKit(models.RoleMedic)
	assert.Len(t, medic.Items, 4)
	comms, _ := RoleKit(models.RoleCommunications)
	assert.Len(t, comms.Items, 3)

	_, ok = RoleKit("pilot")
	assert.False(t, ok)

	desert, ok := EnvironmentPackage(models.LocationDesert)
	require.True(t, ok)
	assert.Equal(t, "Desert Environment Package", desert.Name)
	cold, _ := EnvironmentPackage(models.LocationCold)
	assert.Equal(t, "Cold Weather Package", cold.Name)

	_, ok = EnvironmentPackage(models.LocationNotIncluded)
	assert.False(t, ok)
}

func TestDefaultCatalog_ResolvesEveryKit(t *testing.T) {
	assert.Empty(t, Default().UnresolvedRefs())
	for _, role := range models.Roles {
		assert.Empty(t, Default().MissingRequired(role), string(role))
	}
}

func TestMissingRequiredAndUnresolved(t *testing.T) {
	c := New(map[CategoryKey][]CatalogItem{
		{Group: "infantry", Category: "protection"}: {{SKU: "A"}},
	}, nil)

	assert.Equal(t, []string{"footwear", "eye_protection"}, c.MissingRequired(models.RoleInfantry))

	unresolved := c.UnresolvedRefs()
	assert.Equal(t, []ItemRef{
		Ref("infantry", "protection", 1),
		Ref("infantry", "footwear", 0),
		Ref("infantry", "eye_protection", 0),
	}, unresolved["Infantry Rifleman Kit"])
	assert.Len(t, unresolved["Combat Medic Kit"], 4)

	compat, ok := CompatibilityFor(models.RoleCommunications)
	require.True(t, ok)
	assert.False(t, compat.EnvironmentalRequired)
	assert.Equal(t, []string{"antennas"}, compat.Optional)
}

func TestLoadFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, registry.SaveRegistry(path, Default().ToRegistry("1.0.0")))

	loaded, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, Default().Size(), loaded.Size())
	assert.Equal(t, Default().Keys(), loaded.Keys())
	for _, key := range Default().Keys() {
		want := Default().Items(key)
		got := loaded.Items(key)
		require.Len(t, got, len(want))
		for i := range want {
			assert.Equal(t, want[i].SKU, got[i].SKU)
			assert.Equal(t, want[i].Price, got[i].Price)
			assert.Equal(t, want[i].WeightLbs, got[i].WeightLbs)
			assert.Equal(t, want[i].LeadTimeDays, got[i].LeadTimeDays)
		}
	}
	assert.Equal(t, Default().Vendors(), loaded.Vendors())
}

func TestLoadFile_Invalid(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "dup.json")
	reg := &registry.EquipmentRegistry{Groups: map[string]map[string][]registry.EquipmentEntry{
		"infantry": {"footwear": {{SKU: "X"}, {SKU: "X"}}},
	}}
	require.NoError(t, registry.SaveRegistry(path, reg))

	_, err = LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate sku")
}
