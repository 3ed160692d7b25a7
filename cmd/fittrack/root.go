// ABOUTME: Root Cobra command for fittrack CLI.
// ABOUTME: Opens storage, preferences and workout sources via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/fittrack/internal/config"
	"github.com/harperreed/fittrack/internal/logger"
	"github.com/harperreed/fittrack/internal/prefs"
	"github.com/harperreed/fittrack/internal/source"
	"github.com/harperreed/fittrack/internal/storage"
	"github.com/harperreed/fittrack/internal/tracker"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfg       *config.Config
	dbConn    *storage.DB
	prefStore *prefs.Store
	trk       *tracker.Tracker
	appLog    logrus.FieldLogger
)

var rootCmd = &cobra.Command{
	Use:   "fittrack",
	Short: "Personal fitness tracker",
	Long: `Fittrack is a CLI tool for tracking daily activity against your goals.

WHAT IT TRACKS:

  Counters       steps, calories
  Timed          walking, running, cycling, swimming, yoga, workout (minutes)

QUICK START:

  $ fittrack prefs set weight_kg 72       # Set your body weight
  $ fittrack add steps 4200               # Log steps
  $ fittrack add running 30 --note "5k"   # Log 30 minutes of running
  $ fittrack today                        # Goal progress for today
  $ fittrack estimate cycling 45          # Estimate calories burned

WORKOUTS:

  Workout summaries come from imported device sessions, a remote exercise
  catalog (config set catalog_url), or the built-in catalog.

  $ fittrack session import history.yaml  # Import device sessions
  $ fittrack workout list                 # Summaries with intensity and effort
  $ fittrack workout show abc123          # One workout in detail

MCP INTEGRATION:

  Run 'fittrack mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants. Add to your Claude
  config:

  {
    "mcpServers": {
      "fittrack": { "command": "fittrack", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Activities and sessions are stored in SQLite at ~/.local/share/fittrack/fittrack.db.
  Preferences live next to it in ~/.local/share/fittrack/prefs.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if skipSetup(cmd) {
			return nil
		}
		return setup()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return teardown()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// skipSetup reports whether cmd runs without opening any data stores.
func skipSetup(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "version", "completion", "config":
			return true
		}
	}
	return false
}

func setup() error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return fmt.Errorf("failed to apply environment: %w", err)
	}
	appLog = logger.NewLogger(cfg.GetLogLevel())

	dbConn, err = cfg.OpenStorage()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	prefStore, err = cfg.OpenPreferences()
	if err != nil {
		_ = teardown()
		return fmt.Errorf("failed to open preferences: %w", err)
	}

	sources := []source.WorkoutSource{source.NewSessionSource(dbConn)}
	remote, err := cfg.CatalogSource()
	if err != nil {
		_ = teardown()
		return err
	}
	if remote != nil {
		sources = append(sources, remote)
	}

	static, err := cfg.StaticCatalog()
	if err != nil {
		_ = teardown()
		return err
	}

	trk = tracker.New(dbConn, prefStore, appLog, sources...).
		WithFallback(static).
		WithMaxPageSize(cfg.GetMaxPageSize())

	appLog.WithFields(logrus.Fields{
		"db":      dbConn.Path(),
		"sources": len(sources),
	}).Debug("fittrack ready")
	return nil
}

// teardown closes every store opened by setup. Safe to call more than once.
func teardown() error {
	var firstErr error
	if prefStore != nil {
		if err := prefStore.Close(); err != nil {
			firstErr = err
		}
		prefStore = nil
	}
	if dbConn != nil {
		if err := dbConn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		dbConn = nil
	}
	trk = nil
	return firstErr
}
