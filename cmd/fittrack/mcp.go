// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server with an optional Prometheus endpoint.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/harperreed/fittrack/internal/mcp"
	"github.com/harperreed/fittrack/internal/observability"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to interact with your fitness data through
a standardized protocol. The server communicates via stdin/stdout; logs go to
stderr.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "fittrack": {
        "command": "fittrack",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  log_activity        Log steps, calories or minutes of exercise
  list_activities     List logged activities
  edit_activity       Change a logged activity
  delete_activity     Delete an activity by ID
  estimate_calories   MET-based calorie estimate
  goal_progress       Progress toward a goal
  get_today           Today's dashboard
  list_workouts       Page of workout summaries
  get_workout         One workout summary
  get_preferences     Profile and goals
  update_preferences  Change profile and goals

AVAILABLE RESOURCES:

  fittrack://today        Today's dashboard
  fittrack://workouts     First page of workouts
  fittrack://preferences  Profile and goals

METRICS:

  Set metrics_addr (fittrack config set metrics_addr :9090) to expose
  Prometheus metrics at /metrics while the server runs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(trk, appLog)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)
		go func() {
			select {
			case <-sigChan:
				cancel()
			case <-ctx.Done():
			}
		}()

		if cfg.MetricsAddr != "" {
			metricsSrv := startMetricsServer(cfg.MetricsAddr)
			defer func() {
				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer shutdownCancel()
				if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
					appLog.WithError(err).Warn("metrics server shutdown error")
				}
			}()
		}

		return server.Serve(ctx)
	},
}

func startMetricsServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", observability.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		appLog.WithField("addr", addr).Info("metrics listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.WithError(err).Error("metrics server error")
		}
	}()
	return srv
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
