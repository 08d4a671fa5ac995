package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xtding233/packsim/internal/config"
	"github.com/xtding233/packsim/internal/logger"
)

var (
	configPath  string
	logMode     string
	presetsFile string

	cfg config.Config
	log *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "packsim",
	Short: "Assemble and validate trading-card pack simulation requests",
	Long: `packsim describes a trading-card product (case, box and pack counts),
its pack slots, guarantees and simulation run settings, validates the result
and hands accepted payloads to the simulation engine.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-mode") {
			cfg.Log.Mode = logMode
		}
		if cmd.Flags().Changed("presets-file") {
			cfg.Presets.File = presetsFile
		}
		log, err = logger.New(cfg.Log.Mode)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			log.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&logMode, "log-mode", "dev", "log mode: dev or prod")
	rootCmd.PersistentFlags().StringVar(&presetsFile, "presets-file", "", "YAML preset catalog merged over the built-ins")

	rootCmd.AddCommand(serveCmd, presetsCmd, checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
