// internal/quotation/generator.go
package quotation

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"mission-quotation/internal/catalog"
	"mission-quotation/internal/common/config"
	"mission-quotation/internal/common/logger"
	"mission-quotation/internal/common/metrics"
	"mission-quotation/internal/models"
)

// Config holds the pricing rules applied on top of catalog prices.
type Config struct {
	TaxRate               float64
	ShippingFee           float64
	FreeShippingThreshold float64 // shipping is free strictly above this subtotal
	ValidityDays          int
	IDPrefix              string
}

func DefaultConfig() Config {
	return Config{
		TaxRate:               0.08,
		ShippingFee:           500,
		FreeShippingThreshold: 10000,
		ValidityDays:          30,
		IDPrefix:              "MPS",
	}
}

// ConfigFrom maps the application config section onto Config.
func ConfigFrom(q config.QuotationConfig) Config {
	return Config{
		TaxRate:               q.TaxRate,
		ShippingFee:           q.ShippingFee,
		FreeShippingThreshold: q.FreeShippingThreshold,
		ValidityDays:          q.ValidityDays,
		IDPrefix:              q.IDPrefix,
	}
}

type Option func(*Generator)

func WithClock(clock func() time.Time) Option {
	return func(g *Generator) { g.clock = clock }
}

func WithCatalog(c *catalog.Catalog) Option {
	return func(g *Generator) { g.catalog = c }
}

// WithIDSuffix replaces the random part of quotation ids.
func WithIDSuffix(suffix func() string) Option {
	return func(g *Generator) { g.idSuffix = suffix }
}

// WithKits replaces the kit and package lookups.
func WithKits(
	roleKit func(models.Role) (catalog.KitDefinition, bool),
	environmentPackage func(models.LocationType) (catalog.KitDefinition, bool),
) Option {
	return func(g *Generator) {
		g.roleKit = roleKit
		g.environmentPackage = environmentPackage
	}
}

// Generator prices a mission against the catalog. It holds no mutable state
// and may be shared between goroutines.
type Generator struct {
	config             Config
	catalog            *catalog.Catalog
	roleKit            func(models.Role) (catalog.KitDefinition, bool)
	environmentPackage func(models.LocationType) (catalog.KitDefinition, bool)
	clock              func() time.Time
	idSuffix           func() string
	logger             logger.Logger
}

func NewGenerator(cfg Config, log logger.Logger, opts ...Option) *Generator {
	g := &Generator{
		config:             cfg,
		catalog:            catalog.Default(),
		roleKit:            catalog.RoleKit,
		environmentPackage: catalog.EnvironmentPackage,
		clock:              time.Now,
		idSuffix:           randomIDSuffix,
		logger:             log.With(map[string]interface{}{"component": "quotation"}),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds a quotation from a mission snapshot. Item contents and
// totals depend only on the mission and catalog; the id and timestamps come
// from the clock.
func (g *Generator) Generate(mission models.Mission) *models.Quotation {
	items := make([]models.QuotationLineItem, 0)

	for _, req := range mission.Personnel {
		kit, ok := g.roleKit(req.Role)
		if !ok {
			g.logger.Debug("no kit defined for role", map[string]interface{}{
				"role": req.Role,
			})
			continue
		}
		label := fmt.Sprintf("%s (%dx)", req.Role, req.Count)
		items = g.appendKit(items, kit, req.Count, label)
	}

	if mission.LocationType != models.LocationNotIncluded {
		if pkg, ok := g.environmentPackage(mission.LocationType); ok {
			total := mission.TotalPersonnel()
			label := fmt.Sprintf("%s package (%dx)", mission.LocationType, total)
			items = g.appendKit(items, pkg, total, label)
		}
	}

	now := g.clock().UTC().Truncate(time.Millisecond)
	summary := g.summarize(items)

	personnel := make([]models.PersonnelRequirement, len(mission.Personnel))
	copy(personnel, mission.Personnel)

	q := &models.Quotation{
		QuotationID:         fmt.Sprintf("%s-%d-%s", g.config.IDPrefix, now.UnixMilli(), g.idSuffix()),
		MissionName:         mission.MissionName,
		MissionType:         mission.MissionType,
		Environment:         mission.LocationType,
		ThreatLevel:         mission.ThreatLevel,
		Duration:            mission.DurationDays,
		Created:             now,
		ValidUntil:          now.Add(time.Duration(g.config.ValidityDays) * 24 * time.Hour),
		Items:               items,
		Summary:             summary,
		Personnel:           personnel,
		SpecialRequirements: mission.SpecialRequirements,
	}

	metrics.QuotationsGenerated.Inc()
	metrics.QuotationTotal.Observe(summary.Total)

	g.logger.Info("quotation generated", map[string]interface{}{
		"quotationId": q.QuotationID,
		"missionName": q.MissionName,
		"lineItems":   summary.TotalItems,
		"total":       summary.Total,
	})

	return q
}

func (g *Generator) appendKit(items []models.QuotationLineItem, kit catalog.KitDefinition, quantity int, label string) []models.QuotationLineItem {
	for _, ref := range kit.Items {
		item, ok := g.catalog.Lookup(ref)
		if !ok {
			metrics.CatalogMisses.WithLabelValues(kit.Name).Inc()
			g.logger.Debug("kit item not in catalog, skipping", map[string]interface{}{
				"kit": kit.Name,
				"ref": ref.String(),
			})
			continue
		}
		items = append(items, models.QuotationLineItem{
			SKU:        item.SKU,
			Name:       item.Name,
			Brand:      item.Brand,
			Category:   item.Category,
			UnitPrice:  item.Price,
			Quantity:   quantity,
			TotalPrice: item.Price * float64(quantity),
			AssignedTo: label,
			LeadTime:   item.LeadTimeDays,
			Weight:     item.WeightLbs,
			Vendor:     item.Vendor,
			InStock:    item.InStock,
		})
	}
	return items
}

func (g *Generator) summarize(items []models.QuotationLineItem) models.QuotationSummary {
	var (
		subtotal      float64
		totalWeight   float64
		totalQuantity int
		maxLeadTime   int
	)
	for _, li := range items {
		subtotal += li.TotalPrice
		totalWeight += li.Weight * float64(li.Quantity)
		totalQuantity += li.Quantity
		if li.LeadTime > maxLeadTime {
			maxLeadTime = li.LeadTime
		}
	}

	tax := subtotal * g.config.TaxRate
	shipping := g.config.ShippingFee
	if subtotal > g.config.FreeShippingThreshold {
		shipping = 0
	}

	return models.QuotationSummary{
		TotalItems:    len(items),
		TotalQuantity: totalQuantity,
		TotalWeight:   roundTo(totalWeight, 1),
		MaxLeadTime:   maxLeadTime,
		Subtotal:      roundTo(subtotal, 2),
		Tax:           roundTo(tax, 2),
		Shipping:      shipping,
		Total:         roundTo(subtotal+tax+shipping, 2),
	}
}

// randomIDSuffix returns the 48 random trailing bits of a v7 uuid in hex,
// so ids minted in the same millisecond stay distinct.
func randomIDSuffix() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return id.String()[24:]
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
