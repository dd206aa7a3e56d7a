package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dgallion1/outliner/internal/api"
	"github.com/dgallion1/outliner/internal/artifact"
	"github.com/dgallion1/outliner/internal/batch"
	"github.com/dgallion1/outliner/internal/config"
	"github.com/dgallion1/outliner/internal/indexstore"
	"github.com/dgallion1/outliner/internal/pipeline"
)

var version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "outliner",
		Short: "Extract titled heading outlines from documents",
	}
	root.AddCommand(batchCmd(), serveCmd(), versionCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func batchCmd() *cobra.Command {
	var inputDir, outputDir string
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Process every PDF in the input directory and write outline JSON files",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
			cfg := config.Load()
			if inputDir == "" {
				inputDir = cfg.InputDir
			}
			if outputDir == "" {
				outputDir = cfg.OutputDir
			}
			_, err := batch.Run(inputDir, outputDir, log)
			return err
		},
	}
	cmd.Flags().StringVar(&inputDir, "input", "", "input directory (default $OUTLINER_INPUT_DIR or /app/input)")
	cmd.Flags().StringVar(&outputDir, "output", "", "output directory (default $OUTLINER_OUTPUT_DIR or /app/output)")
	return cmd
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the outline extraction HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

			cfg := config.Load()
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			var index *indexstore.Client
			if cfg.IndexstoreEnabled() {
				index = indexstore.NewClient(cfg.IndexstoreURL, cfg.IndexstoreAPIKey)
			}
			writer := artifact.NewWriter(cfg.OutputDir)

			orch := pipeline.NewOrchestrator(cfg, writer, index, log)
			orch.Start(ctx)

			srv := api.NewServer(orch, log, cfg)

			httpServer := &http.Server{
				Addr:         ":" + cfg.Port,
				Handler:      srv,
				ReadTimeout:  30 * time.Second,
				WriteTimeout: 120 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			// Graceful shutdown.
			go func() {
				sigCh := make(chan os.Signal, 1)
				signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
				<-sigCh
				log.Info("shutting down...")

				orch.Stop()

				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer shutdownCancel()
				httpServer.Shutdown(shutdownCtx)

				if index != nil {
					index.Close()
				}
			}()

			log.Info("starting outliner", "port", cfg.Port, "indexstore", cfg.IndexstoreEnabled())
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the outliner version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("outliner", version)
		},
	}
}
