package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rorical/RoriMap/internal/app"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "rorimap",
	Short: "Terminal companion for the interactive map",
	Long:  `RoriMap toggles map routes and imports your found locations from the map website.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp()
	},
}

func runApp() error {
	application, err := app.NewApplication(configPath)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	defer application.Stop()

	if err := application.Start(); err != nil {
		return fmt.Errorf("application error: %w", err)
	}
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution error: %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $RORIMAP_HOME/.rorimap/config.yaml)")

	rootCmd.AddCommand(routesCmd)
	rootCmd.AddCommand(importCmd)
}
