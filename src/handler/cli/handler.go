package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"review-bot/src/config"
	"review-bot/src/util"
)

// Handler handles CLI commands
type Handler struct {
	cfg        *config.Config
	configPath string
	rootCmd    *cobra.Command
}

// New creates a new CLI handler
func New() *Handler {
	h := &Handler{}
	h.setupCommands()
	return h
}

func (h *Handler) setupCommands() {
	h.rootCmd = &cobra.Command{
		Use:   "review-bot",
		Short: "Static code-quality review agent",
		Long:  "Analyzes source files for complexity, maintainability, and risk patterns",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return h.loadConfig()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			util.DefaultLogger.Sync()
		},
	}

	h.rootCmd.PersistentFlags().StringVarP(&h.configPath, "config", "c", "",
		"Path to configuration file")

	h.rootCmd.AddCommand(h.reviewCmd())
	h.rootCmd.AddCommand(h.patternsCmd())
	h.rootCmd.AddCommand(h.versionCmd())
}

func (h *Handler) loadConfig() error {
	loader := config.NewLoader()
	cfg, err := loader.Load(h.configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	h.cfg = cfg

	util.SetDefaultLogger(cfg.Logging)
	util.Debug("Configuration loaded successfully")

	return nil
}

// Execute runs the CLI
func (h *Handler) Execute() error {
	return h.rootCmd.Execute()
}

// Run is the main entry point
func Run() {
	handler := New()
	if err := handler.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
