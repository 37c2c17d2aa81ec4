package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/floortrack/station/internal/api"
	"github.com/floortrack/station/internal/config"
	"github.com/floortrack/station/internal/telemetry"
	"github.com/floortrack/station/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := telemetry.NewLogger(cfg.LogFile, cfg.StationName)
	defer closeLog()

	telemetry.Serve(cfg.ListenAddr, logger)

	gateway := api.NewGateway(api.NewClient(cfg.APIURL, cfg.APIToken))

	p := tea.NewProgram(
		tui.NewRootModel(cfg, gateway, logger),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
