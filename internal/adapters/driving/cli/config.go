package cli

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change configuration",
	Long: `View and change the API settings stored in the config file.

Keys:
  base_url         catalog API root (default https://fakestoreapi.com)
  timeout_ms       per-request timeout in milliseconds (default 5000)
  rate_per_second  request rate limit, 0 disables it (default 5)`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	cmd.Printf("Config file:      %s\n", settingsService.Path())
	cmd.Printf("base_url:         %s\n", settings.BaseURL)
	cmd.Printf("timeout_ms:       %d\n", settings.Timeout.Milliseconds())
	cmd.Printf("rate_per_second:  %s\n", strconv.FormatFloat(settings.RatePerSecond, 'f', -1, 64))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	key, value := args[0], args[1]
	switch key {
	case "base_url":
		settings.BaseURL = value
	case "timeout_ms":
		ms, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid timeout_ms %q: %w", value, err)
		}
		settings.Timeout = time.Duration(ms) * time.Millisecond
	case "rate_per_second":
		rate, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid rate_per_second %q: %w", value, err)
		}
		settings.RatePerSecond = rate
	default:
		return fmt.Errorf("unknown key %q (expected base_url, timeout_ms or rate_per_second)", key)
	}

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Printf("%s updated\n", key)
	return nil
}
