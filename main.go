package main

import (
	"log/slog"
	"os"

	"utsav/config"
	"utsav/dgraph"
	"utsav/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	client := dgraph.NewClient(cfg.DgraphURL)
	r := routes.SetupRouter(cfg, client)

	slog.Info("Utsav server listening", "port", cfg.Port, "dgraph", cfg.DgraphURL, "submit_policy", cfg.SubmitPolicy)
	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}
