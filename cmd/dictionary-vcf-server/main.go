package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/pokutuna/dictionary-vcf/dictionaries"
	"github.com/pokutuna/dictionary-vcf/internal/bootstrap"
	"github.com/pokutuna/dictionary-vcf/internal/config"
	"github.com/pokutuna/dictionary-vcf/internal/dictionary"
	"github.com/pokutuna/dictionary-vcf/internal/server"
	"github.com/pokutuna/dictionary-vcf/internal/vcf"
)

var configFile string

func main() {
	var debugMode bool
	rootCmd := &cobra.Command{
		Use:           "dictionary-vcf-server",
		Short:         "Serve the dictionaries and VCF export over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug mode")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	app := bootstrap.New()
	srv := newServer(ctx, cfg)
	app.AddShutdownHook(srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		slog.Info("starting server", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
}

// newServer loads the dictionaries once and builds the HTTP server that serves them.
func newServer(ctx context.Context, cfg *config.Config) *http.Server {
	library := dictionary.NewLoader(dictionaries.NewSource(cfg.Dictionaries), slog.Default()).Load(ctx)
	handler := server.NewExportHandler(library, vcf.NewExporter(cfg.Export.LocaleTag()), slog.Default())

	return &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: server.CORS(cfg.Server.CORS.AllowedOrigins, h2c.NewHandler(handler.Routes(), &http2.Server{})),
	}
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}

func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))
}
