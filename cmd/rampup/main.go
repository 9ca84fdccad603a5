package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/rampkit/rampup/internal/catalog"
	"github.com/rampkit/rampup/internal/cli"
	"github.com/rampkit/rampup/internal/coaching"
	"github.com/rampkit/rampup/internal/db"
	"github.com/rampkit/rampup/internal/llm"
	"github.com/rampkit/rampup/internal/repository"
	"github.com/rampkit/rampup/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.rampup/rampup.db
	dbPath := os.Getenv("RAMPUP_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".rampup", "rampup.db")
	}

	// Load the program catalog: a custom YAML file, or the built-in program.
	cat := catalog.Default()
	if path := os.Getenv("RAMPUP_CATALOG"); path != "" {
		loaded, err := catalog.LoadFile(path)
		if err != nil {
			return fmt.Errorf("loading catalog %s: %w", path, err)
		}
		cat = loaded
	}

	// Open database
	database, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	repRepo := repository.NewSQLiteRepRepo(database)
	onboardingRepo := repository.NewSQLiteOnboardingRepo(database)
	notesRepo := repository.NewSQLiteNotesRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire the LLM coach (falls back to deterministic output when disabled)
	llmCfg := llm.LoadConfig()
	var llmClient llm.Client
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		llmClient = llm.NewChatClient(llmCfg, observer)
	}

	app := &cli.App{
		Roster:     service.NewRosterService(repRepo, onboardingRepo),
		Onboarding: service.NewOnboardingService(cat, onboardingRepo, uow),
		Reports:    service.NewReportService(cat, repRepo, onboardingRepo),
		Notes:      service.NewNotesService(cat, notesRepo),
		Coach:      coaching.NewCoachService(llmClient),
		Catalog:    cat,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
