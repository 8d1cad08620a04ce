package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"neighbiz/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// Applies migrations/ with the atlas CLI. Run `atlas migrate hash --dir file://migrations`
// after editing a migration file.
func main() {
	dir := flag.String("dir", "file://migrations", "migration directory URL")
	bin := flag.String("atlas", "atlas", "path to the atlas binary")
	statusOnly := flag.Bool("status", false, "print pending migrations without applying them")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := atlasexec.NewClient(".", *bin)
	if err != nil {
		logger.Error("failed to initialize atlas client", "error", err)
		os.Exit(1)
	}

	url := cfg.DB.BuildDSN()
	if *statusOnly {
		status, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{
			URL:    url,
			DirURL: *dir,
		})
		if err != nil {
			logger.Error("failed to read migration status", "error", err)
			os.Exit(1)
		}
		logger.Info("migration status", "current", status.Current, "pending", len(status.Pending))
		return
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    url,
		DirURL: *dir,
	})
	if err != nil {
		logger.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}
	logger.Info("migrations applied", "applied", len(res.Applied), "current", res.Current, "target", res.Target)
}
