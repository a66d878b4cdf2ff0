package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/mattn/go-isatty"

	"explodata/internal/config"
	"explodata/internal/database"
	"explodata/internal/edsm"
	"explodata/internal/journal"
	"explodata/internal/log"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			log.Error("PANIC recovered", "error", r, "stack", string(debug.Stack()))
			fmt.Fprintln(os.Stderr, "explodata crashed. See the log file for details.")
			os.Exit(1)
		}
	}()

	var (
		configPath  = flag.String("config", "", "path to config file")
		journalDir  = flag.String("journals", "", "journal directory (overrides config)")
		dbPath      = flag.String("db", "", "database path (overrides config)")
		workers     = flag.Int("workers", 0, "replay worker count (0 = one per CPU, max 4)")
		systemName  = flag.String("system", "", "enrich this system from the EDSM catalog after import")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("explodata %s (%s, %s)\n", version, commit, date)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "explodata: %v\n", err)
		os.Exit(1)
	}
	if *journalDir != "" {
		cfg.JournalDir = *journalDir
	}
	if *dbPath != "" {
		cfg.DatabasePath = *dbPath
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}

	if cfg.LogFile != "" {
		if err := log.SetFileOutput(cfg.LogFile); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		}
	}
	if cfg.JournalDir == "" {
		fmt.Fprintln(os.Stderr, "explodata: no journal directory found; set journal_dir or pass -journals")
		os.Exit(1)
	}

	code := run(cfg, *systemName)
	log.Close()
	os.Exit(code)
}

func run(cfg *config.Config, systemName string) int {
	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "explodata: %v\n", err)
		return 1
	}
	defer db.Close()
	if db.MigrationFailed() {
		fmt.Fprintln(os.Stderr, "explodata: database migration failed; see the log file")
		return 1
	}

	controller := journal.NewController(db, cfg.JournalDir, cfg.Workers)
	defer controller.Close()

	tty := isatty.IsTerminal(os.Stdout.Fd())
	finished := make(chan struct{})
	controller.Subscribe("cli", journal.Observer{
		Start: func() {
			fmt.Printf("Importing journals from %s\n", cfg.JournalDir)
		},
		Progress: func(done, total int) {
			if tty {
				fmt.Printf("\rImported %d/%d journals", done, total)
			}
		},
		Finish: func() {
			if tty {
				fmt.Println()
			}
			close(finished)
		},
	})

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-interrupts
		fmt.Fprintln(os.Stderr, "Stopping...")
		controller.Stop()
	}()

	controller.Start()
	<-finished

	if controller.HasError() {
		fmt.Fprintln(os.Stderr, "Journal import stopped on a failed file; rerun to retry.")
		return 1
	}

	if systemName != "" {
		if err := enrich(db, cfg.EDSM, systemName); err != nil {
			fmt.Fprintf(os.Stderr, "explodata: %v\n", err)
			return 1
		}
	}
	return 0
}

// enrich pulls catalog bodies for one system and prints a short
// summary of what the store now knows about it.
func enrich(db *database.DB, cfg config.EDSMConfig, systemName string) error {
	fetcher := edsm.NewFetcher(db, edsm.NewClient(cfg))
	finished := make(chan struct{})
	fetcher.Subscribe("cli", edsm.Observer{
		Start:  func() { fmt.Printf("Fetching catalog data for %s\n", systemName) },
		Finish: func() { close(finished) },
	})
	fetcher.Fetch(systemName)
	<-finished

	session, err := db.NewSession(context.Background())
	if err != nil {
		return err
	}
	defer session.Close()

	sys, err := session.GetOrCreateSystem(systemName)
	if err != nil {
		return err
	}
	stars, err := session.ListStars(sys.ID)
	if err != nil {
		return err
	}
	planets, err := session.ListPlanets(sys.ID)
	if err != nil {
		return err
	}
	if star, err := session.GetMainStar(sys.ID); err == nil {
		fmt.Printf("%s: class %s%d main star, %d stars and %d planets known\n",
			sys.Name, star.Type, star.Subclass, len(stars), len(planets))
	} else {
		fmt.Printf("%s: %d stars and %d planets known\n", sys.Name, len(stars), len(planets))
	}
	return nil
}
