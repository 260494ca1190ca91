package main

import (
	"fmt"

	"github.com/jonathan/career-insights/internal/config"
	"github.com/jonathan/career-insights/internal/jobsearch"
	"github.com/jonathan/career-insights/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for resume and interview analysis, stored reports and job search.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", config.DefaultPort, "Port to listen on (overrides config and PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}

	serverCfg, err := buildServerConfig(cfg)
	if err != nil {
		return err
	}

	srv, err := server.New(serverCfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// buildServerConfig maps the loaded application config onto the server's.
func buildServerConfig(cfg config.Config) (server.Config, error) {
	jwtCfg, err := config.OptionalJWTConfig()
	if err != nil {
		return server.Config{}, fmt.Errorf("invalid JWT configuration: %w", err)
	}

	serverCfg := server.Config{
		Port:           cfg.Port,
		StoreURL:       cfg.StoreURL,
		MaxInputBytes:  cfg.MaxInputBytes,
		RequestTimeout: cfg.Timeout(),
		AllowedOrigins: cfg.AllowedOrigins,
		Seed:           cfg.Seed,
		JWT:            jwtCfg,
	}
	if cfg.JobSearchEnabled() {
		serverCfg.JobSearch = jobSearchConfig(cfg)
	}
	return serverCfg, nil
}

func jobSearchConfig(cfg config.Config) *jobsearch.Config {
	return &jobsearch.Config{
		BaseURL: cfg.JobSearchURL,
		APIKey:  cfg.JobSearchAPIKey,
		Host:    cfg.JobSearchHost,
		Timeout: cfg.Timeout(),
	}
}
