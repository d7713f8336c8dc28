// Package main replays a YAML scenario of inventory operations against a
// container, logging every notification and printing the final slot table.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/slotstash/internal/config"
	"github.com/cory-johannsen/slotstash/internal/game/inventory"
	"github.com/cory-johannsen/slotstash/internal/observability"
	"github.com/cory-johannsen/slotstash/internal/scenario"
	"github.com/cory-johannsen/slotstash/internal/scripting"
	"github.com/cory-johannsen/slotstash/internal/storage/postgres"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	scenarioPath := flag.String("scenario", "content/scenarios/example.yaml", "path to scenario YAML file")
	loadID := flag.String("load", "", "restore this container ID from the database before running")
	save := flag.Bool("save", false, "save the container to the database after running")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	catalog, err := inventory.LoadCatalog(cfg.Content.KindsDir)
	if err != nil {
		logger.Fatal("loading item kinds", zap.Error(err))
	}
	logger.Info("item kinds loaded",
		zap.Int("count", catalog.Len()),
		zap.String("dir", cfg.Content.KindsDir),
	)

	sc, err := scenario.LoadFile(*scenarioPath)
	if err != nil {
		logger.Fatal("loading scenario", zap.Error(err))
	}

	var repo *postgres.ContainerRepository
	if cfg.Database.Enabled {
		pool, err := postgres.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			logger.Fatal("connecting to database", zap.Error(err))
		}
		defer pool.Close()
		repo = postgres.NewContainerRepository(pool.DB())
	} else if *loadID != "" || *save {
		logger.Fatal("-load and -save require database.enabled")
	}

	opts := []inventory.Option{inventory.WithLogger(logger)}
	var c *inventory.Container
	switch {
	case *loadID != "":
		c, err = repo.LoadContainer(ctx, *loadID, catalog, opts...)
		if errors.Is(err, postgres.ErrContainerNotFound) {
			logger.Fatal("no stored container", zap.String("id", *loadID))
		}
	case sc.Container.Capacity > 0:
		c, err = sc.NewContainer(catalog, opts...)
	default:
		inv := cfg.Inventory
		c, err = inventory.NewContainer(inv.Capacity, inv.SlotCapacity, catalog,
			append(opts, inventory.WithLockedSlots(inv.LockedSlots...))...)
	}
	if err != nil {
		logger.Fatal("building container", zap.Error(err))
	}

	c.Subscribe(observability.NewEventLogger(logger, c.ID()))

	if cfg.Scripting.ScriptDir != "" {
		mgr := scripting.NewManager(logger)
		if err := mgr.Load(cfg.Scripting.ScriptDir, cfg.Scripting.InstructionLimit); err != nil {
			logger.Fatal("loading scripts", zap.Error(err))
		}
		defer mgr.Close()
		mgr.Bind(c)
		c.Subscribe(mgr)
	}

	logger.Info("running scenario",
		zap.String("name", sc.Name),
		zap.String("container", c.ID()),
		zap.Int("steps", len(sc.Steps)),
	)
	results := scenario.NewRunner(c, logger).Run(sc.Steps)

	if err := scenario.WriteResults(os.Stdout, results); err != nil {
		logger.Fatal("writing results", zap.Error(err))
	}
	if err := scenario.WriteReport(os.Stdout, c); err != nil {
		logger.Fatal("writing report", zap.Error(err))
	}

	if *save {
		if err := repo.SaveContainer(ctx, c); err != nil {
			logger.Fatal("saving container", zap.Error(err))
		}
		logger.Info("container saved", zap.String("id", c.ID()))
	}

	logger.Info("scenario complete", zap.Duration("elapsed", time.Since(start)))
}
