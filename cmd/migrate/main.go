package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"booking-core/internal/pkg/config"
	"booking-core/migrations"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "print pending migrations without applying them")
	atlasBin := flag.String("atlas", "atlas", "path to the atlas binary")
	flag.Parse()

	if err := run(*atlasBin, *dryRun); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(atlasBin string, dryRun bool) error {
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(migrations.FS))
	if err != nil {
		return err
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), atlasBin)
	if err != nil {
		return err
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    dbCfg.BuildDSN(),
		DryRun: dryRun,
	})
	if err != nil {
		return err
	}

	slog.Info("migrations applied",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target,
		"dry_run", dryRun)
	return nil
}
