package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/greenspot/internal/advisor"
	"github.com/alexanderramin/greenspot/internal/cli"
	"github.com/alexanderramin/greenspot/internal/config"
	"github.com/alexanderramin/greenspot/internal/db"
	"github.com/alexanderramin/greenspot/internal/httpapi"
	"github.com/alexanderramin/greenspot/internal/llm"
	"github.com/alexanderramin/greenspot/internal/logging"
	"github.com/alexanderramin/greenspot/internal/metrics"
	"github.com/alexanderramin/greenspot/internal/repository"
	"github.com/alexanderramin/greenspot/internal/scheduler"
	"github.com/alexanderramin/greenspot/internal/service"
	"github.com/mattn/go-isatty"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Config file: GREENSPOT_CONFIG or ~/.greenspot/config.yaml
	cfg, err := config.Load(os.Getenv("GREENSPOT_CONFIG"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := logging.New(os.Stderr, cfg.Log)
	if err != nil {
		return fmt.Errorf("configuring logging: %w", err)
	}

	// Open database
	database, err := db.OpenDB(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	spotRepo := repository.NewSQLiteSpotRepo(database)
	plantRepo := repository.NewSQLitePlantRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)
	gen := scheduler.NewGenerator()

	m := metrics.New()
	observers := []service.UseCaseObserver{
		service.NewLogUseCaseObserver(logging.UseCaseLogger(logger, cfg.Log)),
		m.UseCaseObserver(),
	}

	// Chat uses the model only when llm.enabled is set.
	var chatter advisor.Chatter = advisor.KeywordChat{}
	if cfg.LLM.Enabled {
		client := llm.NewOllamaClient(llm.FromSettings(cfg.LLM), llm.NewLogObserver(logger))
		chatter = advisor.ModelChat{Client: client, Fallback: advisor.KeywordChat{}}
	}

	// Wire services
	services := httpapi.Services{
		Spots:   service.NewSpotService(spotRepo, plantRepo, uow, gen, observers...),
		Plants:  service.NewPlantService(plantRepo, spotRepo, taskRepo, uow, gen, observers...),
		Tasks:   service.NewTaskService(taskRepo, uow, gen, observers...),
		Profile: service.NewProfileService(plantRepo, spotRepo, taskRepo, gen),
		Advice:  service.NewAdviceService(plantRepo, spotRepo, advisor.StaticIdentifier{}, chatter, observers...),
	}

	app := &cli.App{
		Spots:   services.Spots,
		Plants:  services.Plants,
		Tasks:   services.Tasks,
		Profile: services.Profile,
		Advice:  services.Advice,
	}

	// Guided questionnaires only run on a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	app.Serve = func(ctx context.Context) error {
		srv, err := httpapi.NewServer(services, logger, m, cfg.HTTP)
		if err != nil {
			return err
		}

		errCh := make(chan error, 1)
		go func() { errCh <- srv.Start() }()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
