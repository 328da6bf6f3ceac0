// cmd/tools/quote/main.go
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"mission-quotation/internal/catalog"
	"mission-quotation/internal/common/config"
	"mission-quotation/internal/common/logger"
	"mission-quotation/internal/export"
	"mission-quotation/internal/extraction"
	"mission-quotation/internal/models"
	"mission-quotation/internal/quotation"
	"mission-quotation/pkg/registry"
)

func main() {
	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "extract":
		err = runExtract(os.Args[2:])
	case "generate":
		err = runGenerate(os.Args[2:])
	case "sample":
		err = runSample(os.Args[2:])
	case "catalog":
		err = runCatalog(os.Args[2:])
	case "help", "-h", "--help":
		help()
		return
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		help()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func help() {
	fmt.Println("Usage: quote <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  extract   -file brief.txt                      Extract mission data from a document")
	fmt.Println("  generate  -mission m.json | -file brief.txt    Price a mission and export the quotation")
	fmt.Println("            [-format csv|json|xlsx] [-out path]")
	fmt.Println("  sample    [-format csv|json|xlsx] [-out path]  Quotation for the built-in sample mission")
	fmt.Println("  catalog   [-export path] [-validate path]      List, export or validate the equipment catalog")
}

// env bundles what every command needs: configuration, a logger and the
// catalog in effect.
type env struct {
	cfg     *config.Config
	log     logger.Logger
	catalog *catalog.Catalog
}

func setup(configPath, catalogPath string) (*env, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFromFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	log := logger.NewStructured("warn", "console")

	if catalogPath == "" {
		catalogPath = cfg.Catalog.Path
	}
	cat := catalog.Default()
	if catalogPath != "" {
		if cat, err = catalog.LoadFile(catalogPath); err != nil {
			return nil, err
		}
	}

	return &env{cfg: cfg, log: log, catalog: cat}, nil
}

func (e *env) generator() *quotation.Generator {
	return quotation.NewGenerator(quotation.ConfigFrom(e.cfg.Quotation), e.log, quotation.WithCatalog(e.catalog))
}

func (e *env) extract(path string) (models.ExtractionResult, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return models.ExtractionResult{}, err
	}

	timeout := config.GetDuration(e.cfg.APIs.OpenAI.Timeout)
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return extraction.New(e.cfg.APIs.OpenAI, e.log).Extract(ctx, string(text)), nil
}

func runExtract(args []string) error {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	file := fs.String("file", "", "Path to the mission document (plain text)")
	configPath := fs.String("config", "", "Config file (default: configs/config.yaml)")
	fs.Parse(args)

	if *file == "" {
		fs.Usage()
		return fmt.Errorf("-file is required")
	}

	e, err := setup(*configPath, "")
	if err != nil {
		return err
	}

	result, err := e.extract(*file)
	if err != nil {
		return err
	}
	if err := printJSON(result); err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("extraction failed: %s", result.Error)
	}
	return nil
}

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	missionPath := fs.String("mission", "", "Mission JSON file")
	file := fs.String("file", "", "Mission document to extract first")
	format := fs.String("format", "csv", "Export format: csv, json or xlsx")
	out := fs.String("out", "", "Output path, '-' for stdout (default: generated file name)")
	catalogPath := fs.String("catalog", "", "Catalog JSON replacing the built-in catalog")
	configPath := fs.String("config", "", "Config file (default: configs/config.yaml)")
	fs.Parse(args)

	if (*missionPath == "") == (*file == "") {
		fs.Usage()
		return fmt.Errorf("exactly one of -mission or -file is required")
	}

	e, err := setup(*configPath, *catalogPath)
	if err != nil {
		return err
	}

	var mission models.Mission
	if *missionPath != "" {
		m, err := loadMission(*missionPath)
		if err != nil {
			return err
		}
		mission = *m
	} else {
		result, err := e.extract(*file)
		if err != nil {
			return err
		}
		if !result.Success {
			return fmt.Errorf("extraction failed: %s", result.Error)
		}
		fmt.Fprintf(os.Stderr, "Extracted %q with %s strategy (confidence %d%%)\n",
			result.Data.MissionName, result.Strategy, result.Confidence)
		mission = *result.Data
		if err := quotation.ValidateMission(mission); err != nil {
			return err
		}
	}

	return write(e, e.generator().Generate(mission), *format, *out)
}

// loadMission reads a mission file and checks it the same way the
// generate-quotation worker does.
func loadMission(path string) (*models.Mission, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	mission, err := quotation.DecodeMission(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return mission, nil
}

func runSample(args []string) error {
	fs := flag.NewFlagSet("sample", flag.ExitOnError)
	format := fs.String("format", "json", "Export format: csv, json or xlsx")
	out := fs.String("out", "-", "Output path, '-' for stdout")
	configPath := fs.String("config", "", "Config file (default: configs/config.yaml)")
	fs.Parse(args)

	e, err := setup(*configPath, "")
	if err != nil {
		return err
	}
	return write(e, e.generator().GenerateSample(), *format, *out)
}

func runCatalog(args []string) error {
	fs := flag.NewFlagSet("catalog", flag.ExitOnError)
	exportPath := fs.String("export", "", "Write the catalog in effect to this JSON file")
	validatePath := fs.String("validate", "", "Validate a catalog JSON file and check every kit resolves")
	catalogPath := fs.String("catalog", "", "Catalog JSON replacing the built-in catalog")
	configPath := fs.String("config", "", "Config file (default: configs/config.yaml)")
	fs.Parse(args)

	if *validatePath != "" {
		return validateCatalog(*validatePath)
	}

	e, err := setup(*configPath, *catalogPath)
	if err != nil {
		return err
	}

	if *exportPath != "" {
		reg := e.catalog.ToRegistry("1.0.0")
		if err := registry.SaveRegistry(*exportPath, reg); err != nil {
			return err
		}
		fmt.Printf("Wrote %d items to %s\n", reg.ItemCount(), *exportPath)
		return nil
	}

	for _, key := range e.catalog.Keys() {
		fmt.Println(key.String())
		for i, item := range e.catalog.Items(key) {
			stock := "in stock"
			if !item.InStock {
				stock = "out of stock"
			}
			fmt.Printf("  [%d] %-32s %-40s $%9.2f %5.1f lbs %2dd %s\n",
				i, item.SKU, item.Name, item.Price, item.WeightLbs, item.LeadTimeDays, stock)
		}
	}
	return nil
}

func validateCatalog(path string) error {
	c, err := catalog.LoadFile(path)
	if err != nil {
		return err
	}

	unresolved := c.UnresolvedRefs()
	for kit, refs := range unresolved {
		for _, ref := range refs {
			fmt.Printf("%s: %s does not resolve\n", kit, ref.String())
		}
	}
	for _, role := range models.Roles {
		if missing := c.MissingRequired(role); len(missing) > 0 {
			fmt.Printf("%s: no items for required categories %v\n", role, missing)
		}
	}

	if len(unresolved) > 0 {
		return fmt.Errorf("%s: %d kits have unresolved items", path, len(unresolved))
	}
	fmt.Printf("Catalog %s is valid (%d items)\n", path, c.Size())
	return nil
}

func write(e *env, q *models.Quotation, formatName, out string) error {
	format, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}

	doc, err := export.Export(q, format, e.catalog)
	if err != nil {
		return err
	}

	if out == "-" {
		_, err := os.Stdout.Write(doc.Content)
		return err
	}
	if out == "" {
		out = doc.FileName
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(out, doc.Content, 0644); err != nil {
		return err
	}

	s := q.Summary
	fmt.Fprintf(os.Stderr, "Quotation %s: %d line items, total $%.2f -> %s\n", q.QuotationID, s.TotalItems, s.Total, out)
	return nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
