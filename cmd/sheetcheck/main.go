package main

import (
	"flag"
	"os"

	"counterparty/pkg/config"
	"counterparty/pkg/registry"
	"counterparty/pkg/sheets"

	log "github.com/sirupsen/logrus"
)

// sheetcheck is a preflight: it loads the configured sheet once and reports
// whether the registry can use it.
func main() {
	verbose := flag.Bool("v", false, "Verbose logging")
	configPath := flag.String("config", "counterparty.toml", "Path to the config file")

	flag.Parse()
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	cfg, err := config.Open(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Settings.SpreadsheetID == "" {
		log.Error("You must configure a spreadsheet ID (config file or SPREADSHEET_ID)")
		flag.Usage()
		os.Exit(1)
	}

	client := sheets.NewClient(
		cfg.Settings.CredentialsFile,
		cfg.Settings.SpreadsheetID,
		cfg.Settings.WorksheetName,
	)
	values, err := client.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read sheet: %v", err)
	}
	table, err := registry.BuildTable(values)
	if err != nil {
		log.Fatalf("Sheet unusable: %v", err)
	}
	fields, err := registry.ResolveColumns(table.Headers)
	if err != nil {
		log.Fatalf("Sheet unusable: %v", err)
	}

	log.Printf("Sheet %q: %d data rows, %d columns", cfg.Settings.WorksheetName, len(table.Rows), len(table.Headers))
	for _, f := range registry.AllFields {
		if h, ok := fields.Column(f); ok {
			log.Printf("%-26s -> %q", f, h)
		} else {
			log.Printf("%-26s -> (unresolved)", f)
		}
	}
}
