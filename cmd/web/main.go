package main

import (
	"fmt"
	"net"
	"os"

	handlers "github.com/de-tools/wellness-atlas/pkg/handlers/report"
	"github.com/de-tools/wellness-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/wellness-atlas/pkg/server"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgPath string
	source  string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Wellness Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to the settings file")
	rootCmd.Flags().StringVar(&source, "source", commands.SourceDuckDB, "Record source: duckdb or the path of a JSON export")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")
	if host == "" || port == "" {
		return fmt.Errorf("missing SERVER_HOST or SERVER_PORT in the environment")
	}

	env, err := commands.Open(ctx, &commands.GlobalFlags{ConfigPath: cfgPath, Source: source}, nil)
	if err != nil {
		return fmt.Errorf("failed to open record source: %w", err)
	}
	defer env.Close()

	if env.Settings.ProfilesPath != "" {
		logger.Info().Msgf("Profiles found at `%s` successfully loaded.", env.Settings.ProfilesPath)
	}
	profiles, _ := env.ListProfiles(ctx)
	logger.Info().Msgf("Found %d profiles: %v", len(profiles), profiles)

	api := server.NewWebAPI(server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Controller: env.Controller(),
			Profiles:   handlers.ProfileListerFunc(env.ListProfiles),
			Location:   env.Location,
			Logger:     logger,
		},
	})
	return api.Start()
}
