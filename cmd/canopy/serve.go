package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/canopyhq/canopy"
	"github.com/canopyhq/canopy/internal/cli"
	"github.com/canopyhq/canopy/internal/logging"
	"github.com/canopyhq/canopy/internal/metrics"
	"github.com/canopyhq/canopy/pkg/adapters/httpapi"
	"github.com/canopyhq/canopy/pkg/adapters/memory"
	redisstore "github.com/canopyhq/canopy/pkg/adapters/redis"
	"github.com/canopyhq/canopy/pkg/adapters/yamlfile"
	"github.com/canopyhq/canopy/pkg/domain"
	"github.com/canopyhq/canopy/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Starts the canopy engine in server mode, exposing the scored snapshot,
alerts, traces, and disruption simulation as a JSON API over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		treePath, _ := cmd.Flags().GetString("tree")
		scoresPath, _ := cmd.Flags().GetString("scores")
		port, _ := cmd.Flags().GetString("port")
		level, _ := cmd.Flags().GetString("log-level")
		threshold, _ := cmd.Flags().GetString("alert-threshold")
		redisAddr, _ := cmd.Flags().GetString("redis")

		logger := logging.New(logging.ParseLevel(level))

		scores, err := cli.LoadScores(scoresPath)
		if err != nil {
			fmt.Printf("Error loading scores: %v\n", err)
			os.Exit(1)
		}
		provider := memory.NewProvider(scores)

		var store ports.SnapshotStore
		if redisAddr != "" {
			rs := redisstore.New(redisAddr, "", 0)
			defer rs.Close()
			store = rs
			logger.Info("snapshot persistence enabled", "redis", redisAddr)
		}

		engineOpts := []canopy.Option{
			canopy.WithLogger(logger),
			canopy.WithScoreProvider(provider),
			canopy.WithAlertThreshold(domain.Status(threshold)),
		}
		if store != nil {
			engineOpts = append(engineOpts, canopy.WithSnapshotStore(store))
		}

		engine, err := canopy.New(yamlfile.NewLoader(treePath), engineOpts...)
		if err != nil {
			fmt.Printf("Error initializing canopy: %v\n", err)
			os.Exit(1)
		}

		registry := prometheus.NewRegistry()
		m := metrics.New(registry)

		serverOpts := []httpapi.ServerOption{
			httpapi.WithLogger(logger),
			httpapi.WithMetrics(m),
		}
		if store != nil {
			serverOpts = append(serverOpts, httpapi.WithSnapshotStore(store))
		}

		handler := httpapi.NewHandler(engine, provider,
			promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
			serverOpts...)

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Canopy Server on %s\n", srv.Addr)
			fmt.Printf("Serving tree from: %s\n", treePath)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Canopy Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().StringP("scores", "s", "scores.yaml", "Path to the leaf scores file")
	serveCmd.Flags().String("alert-threshold", "red", "Minimum severity that raises an alert: red or amber")
	serveCmd.Flags().String("redis", "", "Redis address for snapshot persistence (empty disables it)")
}
