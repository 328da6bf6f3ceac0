// internal/catalog/data.go
package catalog

const vendorOpticsPlanet = "OpticsPlanet"

func builtinVendors() []Vendor {
	return []Vendor{
		{
			Name:             vendorOpticsPlanet,
			Website:          "https://www.opticsplanet.com",
			Contact:          "1-800-504-5897",
			ShippingPolicy:   "Standard 3-5 business days",
			ReturnPolicy:     "30 day returns",
			MilitaryDiscount: true,
			GSAContract:      true,
		},
	}
}

func builtinItems() map[CategoryKey][]CatalogItem {
	return map[CategoryKey][]CatalogItem{
		{Group: "infantry", Category: "protection"}: {
			{
				SKU:          "5M9-BP-PRAR6-BA-3ST-BC",
				Name:         "Predator Armor Level III",
				Brand:        "Predator Armor",
				Category:     "Body Armor",
				Price:        175.00,
				WeightLbs:    8.5,
				LeadTimeDays: 5,
				Vendor:       vendorOpticsPlanet,
				InStock:      true,
				Description:  "Level III steel body armor, Shooters Cut design for enhanced mobility",
				Specifications: map[string]interface{}{
					"protection_level": "Level III",
					"material":         "Steel",
					"cut_style":        "Shooters Cut",
					"sizes_available":  []string{"S", "M", "L", "XL", "XXL"},
				},
			},
			{
				SKU:          "AS-501-GEN2",
				Name:         "ArmorSource AS-501 Gen2 Helmet",
				Brand:        "ArmorSource",
				Category:     "Helmets",
				Price:        765.00,
				WeightLbs:    2.8,
				LeadTimeDays: 7,
				Vendor:       vendorOpticsPlanet,
				InStock:      true,
				Description:  "Level IIIA high-cut advanced tactical helmet with superior protection",
				Specifications: map[string]interface{}{
					"protection_level": "Level IIIA",
					"style":            "High-cut",
					"shell_material":   "Aramid composite",
					"sizes_available":  []string{"S", "M", "L", "XL"},
				},
			},
			{
				SKU:          "3PE-APC-CP3A-CPC-RG-SM-MD-IIIA",
				Name:         "Premier Body Armor Carrier",
				Brand:        "Premier Body Armor",
				Category:     "Plate Carriers",
				Price:        275.00,
				WeightLbs:    3.2,
				LeadTimeDays: 3,
				Vendor:       vendorOpticsPlanet,
				InStock:      true,
				Description:  "Modular plate carrier with Level IIIA cummerbund and MOLLE compatibility",
				Specifications: map[string]interface{}{
					"protection_level": "Level IIIA",
					"color":            "Ranger Green",
					"molle_compatible": true,
					"adjustable":       true,
				},
			},
		},
		{Group: "infantry", Category: "footwear"}: {
			{
				SKU:          "OAKLEY-SI-LIGHT-ASSAULT",
				Name:         "Oakley SI Light Assault Boots",
				Brand:        "Oakley",
				Category:     "Tactical Boots",
				Price:        130.00,
				WeightLbs:    2.1,
				LeadTimeDays: 2,
				Vendor:       vendorOpticsPlanet,
				InStock:      true,
				Description:  "Lightweight tactical leather boots for extended operations",
				Specifications: map[string]interface{}{
					"material":        "Leather",
					"sole_type":       "Vibram",
					"height":          "6 inch",
					"sizes_available": []string{"7", "7.5", "8", "8.5", "9", "9.5", "10", "10.5", "11", "11.5", "12", "13", "14"},
				},
			},
		},
		{Group: "infantry", Category: "eye_protection"}: {
			{
				SKU:          "OAKLEY-SI-M-FRAME",
				Name:         "Oakley SI Ballistic M Frame",
				Brand:        "Oakley",
				Category:     "Eye Protection",
				Price:        85.00,
				WeightLbs:    0.3,
				LeadTimeDays: 1,
				Vendor:       vendorOpticsPlanet,
				InStock:      true,
				Description:  "Ballistic eye protection with anti-fog coating and interchangeable lenses",
				Specifications: map[string]interface{}{
					"ballistic_rating":       "ANSI Z87.1",
					"lens_material":          "Plutonite",
					"anti_fog":               true,
					"interchangeable_lenses": true,
				},
			},
		},
		{Group: "medic", Category: "medical_storage"}: {
			{
				SKU:          "60MP00OD",
				Name:         "BlackHawk Special Operations Medical Backpack",
				Brand:        "BlackHawk",
				Category:     "Medical Bags",
				Price:        185.00,
				WeightLbs:    4.2,
				LeadTimeDays: 4,
				Vendor:       vendorOpticsPlanet,
				InStock:      true,
				Description:  "Modular full opening medical backpack with S.T.R.I.K.E. webbing system",
				Specifications: map[string]interface{}{
					"capacity":         "3000 cubic inches",
					"opening_style":    "Full opening",
					"molle_compatible": true,
					"color":            "Olive Drab",
				},
			},
			{
				SKU:          "TT-M5-MEDIC",
				Name:         "Tactical Tailor M5 Medic Pack",
				Brand:        "Tactical Tailor",
				Category:     "Medical Bags",
				Price:        225.00,
				WeightLbs:    6.8,
				LeadTimeDays: 6,
				Vendor:       vendorOpticsPlanet,
				InStock:      true,
				Description:  "Large capacity medical pack designed for platoon-level medical support",
				Specifications: map[string]interface{}{
					"capacity":             "5000 cubic inches",
					"compartments":         8,
					"hydration_compatible": true,
					"color":                "Coyote Brown",
				},
			},
		},
		{Group: "medic", Category: "trauma_care"}: {
			{
				SKU:          "BFG-NOW-NANO",
				Name:         "Blue Force Gear NOW Trauma Nano Kit",
				Brand:        "Blue Force Gear",
				Category:     "Trauma Kits",
				Price:        125.00,
				WeightLbs:    1.8,
				LeadTimeDays: 3,
				Vendor:       vendorOpticsPlanet,
				InStock:      true,
				Description:  "Compact bleeding control kit with MOLLE compatibility",
				Specifications: map[string]interface{}{
					"contents":         []string{"Combat Gauze", "Pressure Bandage", "Chest Seal", "Tourniquet"},
					"molle_compatible": true,
					"water_resistant":  true,
				},
			},
			{
				SKU:          "AMK-MOLLE-TRAUMA-05",
				Name:         "Adventure Medical Kits .5 MOLLE Trauma",
				Brand:        "Adventure Medical Kits",
				Category:     "Trauma Kits",
				Price:        95.00,
				WeightLbs:    1.2,
				LeadTimeDays: 2,
				Vendor:       vendorOpticsPlanet,
				InStock:      true,
				Description:  "Comprehensive trauma kit with trauma pad, tourniquet, and medical gloves",
				Specifications: map[string]interface{}{
					"contents":         []string{"Trauma Pad", "CAT Tourniquet", "Nitrile Gloves", "Bandages"},
					"molle_compatible": true,
					"compact_design":   true,
				},
			},
		},
		{Group: "medic", Category: "first_aid"}: {
			{
				SKU:          "15-0021016000",
				Name:         "Voodoo Tactical Individual First Aid Kit",
				Brand:        "Voodoo Tactical",
				Category:     "First Aid Kits",
				Price:        45.00,
				WeightLbs:    0.8,
				LeadTimeDays: 1,
				Vendor:       vendorOpticsPlanet,
				InStock:      true,
				Description:  "Dual pouch MOLLE compatible IFAK, empty for custom configuration",
				Specifications: map[string]interface{}{
					"pouch_style":      "Dual compartment",
					"molle_compatible": true,
					"contents":         "Empty - for customization",
					"color":            "Coyote",
				},
			},
			{
				SKU:          "ROTHCO-IFAK-STOCKED",
				Name:         "Rothco IFAK",
				Brand:        "Rothco",
				Category:     "First Aid Kits",
				Price:        75.00,
				WeightLbs:    1.5,
				LeadTimeDays: 2,
				Vendor:       vendorOpticsPlanet,
				InStock:      true,
				Description:  "Pre-stocked individual first aid kit, field-ready configuration",
				Specifications: map[string]interface{}{
					"contents":    []string{"Bandages", "Gauze", "Tape", "Antiseptic", "Pain Relief"},
					"pre_stocked": true,
					"field_ready": true,
				},
			},
		},
		{Group: "communications", Category: "headsets"}: {
			{
				SKU:          "MT53H7A4610",
				Name:         "3M Peltor PowerCom Plus 2-Way Radio Headset",
				Brand:        "3M Peltor",
				Category:     "Communication Headsets",
				Price:        640.00,
				WeightLbs:    1.4,
				LeadTimeDays: 8,
				Vendor:       vendorOpticsPlanet,
				InStock:      true,
				Description:  "Integrated radio headset with noise-canceling and ruggedized design",
				Specifications: map[string]interface{}{
					"noise_reduction":   "26 dB",
					"battery_life":      "16 hours",
					"water_resistant":   "IP68",
					"radio_integration": "Built-in",
				},
			},
		},
		{Group: "communications", Category: "antennas"}: {
			{
				SKU:          "EA00125004S",
				Name:         "Revolve Emergency VHF Antenna",
				Brand:        "Revolve",
				Category:     "Antennas",
				Price:        175.00,
				WeightLbs:    0.8,
				LeadTimeDays: 5,
				Vendor:       vendorOpticsPlanet,
				InStock:      true,
				Description:  "Rollable, waterproof, high-visibility emergency VHF antenna",
				Specifications: map[string]interface{}{
					"frequency_range": "136-174 MHz",
					"gain":            "2.15 dBi",
					"waterproof":      true,
					"rollable_design": true,
				},
			},
		},
		{Group: "communications", Category: "pouches"}: {
			{
				SKU:          "10022-6",
				Name:         "Tactical Tailor Radio Pouch Large",
				Brand:        "Tactical Tailor",
				Category:     "Radio Pouches",
				Price:        35.00,
				WeightLbs:    0.4,
				LeadTimeDays: 2,
				Vendor:       vendorOpticsPlanet,
				InStock:      true,
				Description:  "Large MOLLE compatible radio pouch in Ranger Green",
				Specifications: map[string]interface{}{
					"size":             "Large",
					"molle_compatible": true,
					"color":            "Ranger Green",
					"closure":          "Velcro flap",
				},
			},
		},
		{Group: "desert", Category: "clothing"}: {
			{
				SKU:          "1834044",
				Name:         "TRU-SPEC OCP Hot Weather Pants",
				Brand:        "TRU-SPEC",
				Category:     "Desert Clothing",
				Price:        65.00,
				WeightLbs:    1.2,
				LeadTimeDays: 3,
				Vendor:       vendorOpticsPlanet,
				InStock:      true,
				Description:  "Lightweight, breathable desert camouflage pants for hot weather operations",
				Specifications: map[string]interface{}{
					"pattern":      "OCP",
					"weather_type": "Hot weather",
					"material":     "65% Polyester, 35% Cotton",
					"features":     []string{"Ripstop fabric", "Reinforced knees", "Cargo pockets"},
				},
			},
			{
				SKU:          "4744",
				Name:         "TRU-SPEC OCP Hot Weather Shirt",
				Brand:        "TRU-SPEC",
				Category:     "Desert Clothing",
				Price:        55.00,
				WeightLbs:    0.8,
				LeadTimeDays: 2,
				Vendor:       vendorOpticsPlanet,
				InStock:      true,
				Description:  "Quick-drying, moisture-wicking desert camouflage shirt",
				Specifications: map[string]interface{}{
					"pattern":      "OCP",
					"weather_type": "Hot weather",
					"features":     []string{"Moisture-wicking", "Quick-dry", "Ventilation panels"},
					"sleeve_type":  "Long sleeve with roll-up option",
				},
			},
		},
		{Group: "desert", Category: "footwear"}: {
			{
				SKU:          "TR960Z",
				Name:         "Belleville TR960Z Desert Boots",
				Brand:        "Belleville",
				Category:     "Desert Footwear",
				Price:        155.00,
				WeightLbs:    2.4,
				LeadTimeDays: 5,
				Vendor:       vendorOpticsPlanet,
				InStock:      true,
				Description:  "Breathable desert boots with side-zip for quick on/off",
				Specifications: map[string]interface{}{
					"height":   "8 inch",
					"closure":  "Side-zip with lace-up",
					"sole":     "Vibram",
					"features": []string{"Breathable", "Sand-resistant", "Quick-dry"},
				},
			},
		},
		{Group: "cold", Category: "clothing"}: {
			{
				SKU:          "AS-TACTICAL-PANTS",
				Name:         "Arctic Shield Tactical Pants",
				Brand:        "Arctic Shield",
				Category:     "Cold Weather Clothing",
				Price:        95.00,
				WeightLbs:    2.1,
				LeadTimeDays: 4,
				Vendor:       vendorOpticsPlanet,
				InStock:      true,
				Description:  "Insulated, windproof, water-resistant tactical pants for extreme cold",
				Specifications: map[string]interface{}{
					"insulation":         "Synthetic fill",
					"waterproof":         "DWR coating",
					"windproof":          true,
					"temperature_rating": "-20°F comfort",
				},
			},
			{
				SKU:          "KRYPTEK-AS-JACKET",
				Name:         "Kryptek Arctic Shield Insulated Jacket",
				Brand:        "Kryptek",
				Category:     "Cold Weather Clothing",
				Price:        165.00,
				WeightLbs:    3.4,
				LeadTimeDays: 6,
				Vendor:       vendorOpticsPlanet,
				InStock:      true,
				Description:  "Heavy insulation jacket with snow camouflage and weatherproof design",
				Specifications: map[string]interface{}{
					"insulation":   "600-fill down",
					"pattern":      "Snow camouflage",
					"weatherproof": true,
					"features":     []string{"Hood", "Multiple pockets", "Reinforced shoulders"},
				},
			},
		},
		{Group: "cold", Category: "footwear"}: {
			{
				SKU:          "C755",
				Name:         "Belleville C755 Extreme Cold Weather Boots",
				Brand:        "Belleville",
				Category:     "Cold Weather Footwear",
				Price:        185.00,
				WeightLbs:    3.8,
				LeadTimeDays: 8,
				Vendor:       vendorOpticsPlanet,
				InStock:      true,
				Description:  "Waterproof, insulated boots rated for subzero performance",
				Specifications: map[string]interface{}{
					"insulation":         "400g Thinsulate",
					"waterproof":         "Gore-Tex membrane",
					"temperature_rating": "-25°F",
					"height":             "9 inch",
				},
			},
		},
	}
}
