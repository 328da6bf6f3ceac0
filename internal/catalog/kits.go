// internal/catalog/kits.go
package catalog

import "mission-quotation/internal/models"

// KitDefinition is a named, ordered list of catalog references.
type KitDefinition struct {
	Name  string    `json:"name"`
	Items []ItemRef `json:"items"`
}

var roleKits = map[models.Role]KitDefinition{
	models.RoleInfantry: {
		Name: "Infantry Rifleman Kit",
		Items: []ItemRef{
			Ref("infantry", "protection", 0),
			Ref("infantry", "protection", 1),
			Ref("infantry", "footwear", 0),
			Ref("infantry", "eye_protection", 0),
		},
	},
	models.RoleMedic: {
		Name: "Combat Medic Kit",
		Items: []ItemRef{
			Ref("medic", "medical_storage", 0),
			Ref("medic", "trauma_care", 0),
			Ref("medic", "trauma_care", 1),
			Ref("medic", "first_aid", 0),
		},
	},
	models.RoleCommunications: {
		Name: "Communications Kit",
		Items: []ItemRef{
			Ref("communications", "headsets", 0),
			Ref("communications", "antennas", 0),
			Ref("communications", "pouches", 0),
		},
	},
}

var environmentPackages = map[models.LocationType]KitDefinition{
	models.LocationDesert: {
		Name: "Desert Environment Package",
		Items: []ItemRef{
			Ref("desert", "clothing", 0),
			Ref("desert", "clothing", 1),
			Ref("desert", "footwear", 0),
		},
	},
	models.LocationCold: {
		Name: "Cold Weather Package",
		Items: []ItemRef{
			Ref("cold", "clothing", 0),
			Ref("cold", "clothing", 1),
			Ref("cold", "footwear", 0),
		},
	},
}

// RoleKit returns the kit issued per person in role.
func RoleKit(role models.Role) (KitDefinition, bool) {
	kit, ok := roleKits[role]
	return kit, ok
}

// EnvironmentPackage returns the package issued per person for a location.
// NotIncluded never has a package.
func EnvironmentPackage(location models.LocationType) (KitDefinition, bool) {
	kit, ok := environmentPackages[location]
	return kit, ok
}

// Compatibility lists which categories a role must and may carry.
type Compatibility struct {
	Required              []string `json:"required"`
	Optional              []string `json:"optional"`
	EnvironmentalRequired bool     `json:"environmental_required"`
}

var compatibility = map[models.Role]Compatibility{
	models.RoleInfantry: {
		Required:              []string{"protection", "footwear", "eye_protection"},
		Optional:              []string{"load_bearing", "accessories"},
		EnvironmentalRequired: true,
	},
	models.RoleMedic: {
		Required:              []string{"medical_storage", "trauma_care", "first_aid"},
		Optional:              []string{"medical_organization"},
		EnvironmentalRequired: true,
	},
	models.RoleCommunications: {
		Required:              []string{"headsets", "pouches"},
		Optional:              []string{"antennas"},
		EnvironmentalRequired: false,
	},
}

func CompatibilityFor(role models.Role) (Compatibility, bool) {
	c, ok := compatibility[role]
	return c, ok
}

// MissingRequired returns the required categories of role that have no items
// in the catalog.
func (c *Catalog) MissingRequired(role models.Role) []string {
	compat, ok := compatibility[role]
	if !ok {
		return nil
	}
	var missing []string
	for _, category := range compat.Required {
		if len(c.items[CategoryKey{Group: string(role), Category: category}]) == 0 {
			missing = append(missing, category)
		}
	}
	return missing
}

// UnresolvedRefs lists kit and package references the catalog cannot
// satisfy, keyed by kit name.
func (c *Catalog) UnresolvedRefs() map[string][]ItemRef {
	out := map[string][]ItemRef{}
	check := func(kit KitDefinition) {
		for _, ref := range kit.Items {
			if _, ok := c.Lookup(ref); !ok {
				out[kit.Name] = append(out[kit.Name], ref)
			}
		}
	}
	for _, role := range models.Roles {
		check(roleKits[role])
	}
	for _, loc := range []models.LocationType{models.LocationDesert, models.LocationCold} {
		check(environmentPackages[loc])
	}
	return out
}
