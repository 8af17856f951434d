package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/zhubert/enigmavision/internal/app"
	"github.com/zhubert/enigmavision/internal/config"
	"github.com/zhubert/enigmavision/internal/logger"
)

var (
	debugMode             bool
	quietMode             bool
	configPath            string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "enigmavision",
	Short: "Terminal Enigma I simulator",
	Long: `Enigma Vision is a terminal simulator of the three-rotor Enigma I.
Type on the keyboard to encipher: the rotor dials step as you type, the
lampboard lights the output letter and the whole ciphertext is recomputed
from the start positions on every edit.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (json, yaml or toml); defaults to ~/.enigmavision/config.*")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("enigmavision %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("enigmavision %s\n", version)
}

// loadConfig reads --config when given, else the default location.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load()
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	m := app.New(cfg, version)
	defer m.Close()
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
