package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/bidboard/internal/cli"
	"github.com/thenoetrevino/bidboard/internal/cli/card"
	"github.com/thenoetrevino/bidboard/internal/cli/client"
	"github.com/thenoetrevino/bidboard/internal/cli/metrics"
	"github.com/thenoetrevino/bidboard/internal/cli/styles"
	"github.com/thenoetrevino/bidboard/internal/config"
	"github.com/thenoetrevino/bidboard/internal/launcher"
	"github.com/thenoetrevino/bidboard/internal/logging"
)

var (
	configPath string
	seedPath   string

	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "bidboard",
	Short: "bidboard - an RFP pipeline board for the terminal",
	Long: `bidboard tracks requests for proposal across the New, In Progress,
Submitted, Won and Lost stages. Run it without arguments for the board;
drag cards between columns with the mouse or move them with H and L.`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
	RunE:               runBoard,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/bidboard/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&seedPath, "seed", "", "YAML file with the initial cards and clients")

	rootCmd.AddCommand(card.ListCmd())
	rootCmd.AddCommand(card.ShowCmd())
	rootCmd.AddCommand(card.MoveCmd())
	rootCmd.AddCommand(client.ListCmd())
	rootCmd.AddCommand(metrics.MetricsCmd())
}

// setup loads the config, opens the log file and puts the CLI in the
// command's context
func setup(cmd *cobra.Command, _ []string) error {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logCloser, err = logging.Init(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		// Never log to the terminal the board draws on
		logging.Discard()
	}

	styles.Init(cfg.ColorScheme)

	c, err := cli.NewCLI(cfg, seedPath)
	if err != nil {
		return err
	}
	cmd.SetContext(cli.WithCLI(cmd.Context(), c))
	return nil
}

func teardown(cmd *cobra.Command, _ []string) error {
	if c, err := cli.GetCLIFromContext(cmd.Context()); err == nil {
		_ = c.Close()
	}
	if logCloser != nil {
		return logCloser.Close()
	}
	return nil
}

func runBoard(cmd *cobra.Command, _ []string) error {
	c, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return err
	}

	return launcher.Launch(cmd.Context(), c.App, c.Config)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
