package main

import (
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"counterparty/pkg/api"
	"counterparty/pkg/config"
	"counterparty/pkg/sheets"

	log "github.com/sirupsen/logrus"
)

func main() {
	verbose := flag.Bool("v", false, "Verbose logging")
	configPath := flag.String("config", "counterparty.toml", "Path to the config file")

	flag.Parse()
	if *verbose {
		// Set the log level to debug
		log.SetLevel(log.DebugLevel)
	}
	// Set the log format to include a leading timestamp in ISO8601 format
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	cfg, err := config.Open(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Settings.SpreadsheetID == "" {
		log.Fatal("No spreadsheet ID configured (config file or SPREADSHEET_ID)")
	}

	client := sheets.NewClient(
		cfg.Settings.CredentialsFile,
		cfg.Settings.SpreadsheetID,
		cfg.Settings.WorksheetName,
	)
	server := api.NewServer(
		client,
		cfg.Settings.AdminPassword,
		cfg.Settings.WorksheetName,
		time.Duration(cfg.Settings.CacheTTLSeconds)*time.Second,
	)

	router := api.GetRouter(server)
	if router != nil {
		go startServer(router, cfg.Settings.ListenAddress)
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)

mainloop:
	// In all cases, just exit and let the container restart from scratch.
	// There's less to get wrong doing it this way.
	for {
		select {
		case <-signalChan:
			log.Info("Signalled, breaking main loop")
			break mainloop
		}
	}
}

func startServer(router http.Handler, addr string) {
	server := http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 2 * time.Second,
	}
	log.Infof("listening for HTTP on: %s", server.Addr)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatal("ListenAndServeError", err)
	}
}
