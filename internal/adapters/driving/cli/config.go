package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/rephrase-cli/internal/adapters/driven/ai"
	"github.com/custodia-labs/rephrase-cli/internal/adapters/driven/config/file"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change the application configuration in ~/.rephrase/config.toml.

The oracle API key can also be supplied through the REPHRASE_API_KEY
environment variable, which takes precedence over the file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configValidateKey bool

var configSetKeyCmd = &cobra.Command{
	Use:   "set-key",
	Short: "Set the synonym oracle API key",
	Long:  `Prompts for the API key without echoing and writes it to the config file.`,
	RunE:  runConfigSetKey,
}

func init() {
	configSetKeyCmd.Flags().BoolVar(&configValidateKey, "validate", false, "ping the provider before saving")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetKeyCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if appConfig == nil {
		return errors.New("configuration not loaded")
	}

	cmd.Println("[oracle]")
	cmd.Printf("  Provider: %s\n", appConfig.Oracle.Provider)
	if appConfig.Oracle.APIKey != "" {
		cmd.Printf("  API Key: %s\n", maskAPIKey(appConfig.Oracle.APIKey))
	} else {
		cmd.Println("  API Key: (not set)")
	}
	if appConfig.Oracle.Model != "" {
		cmd.Printf("  Model: %s\n", appConfig.Oracle.Model)
	}
	if appConfig.Oracle.BaseURL != "" {
		cmd.Printf("  Base URL: %s\n", appConfig.Oracle.BaseURL)
	}
	cmd.Printf("  Timeout: %ds\n", appConfig.Oracle.TimeoutSeconds)
	cmd.Println()

	cmd.Println("[transform]")
	cmd.Printf("  Split threshold:   %d words\n", appConfig.Transform.SplitThreshold)
	cmd.Printf("  Merge threshold:   %d words\n", appConfig.Transform.MergeThreshold)
	cmd.Printf("  Repeat window:     %d\n", appConfig.Transform.RepeatWindow)
	cmd.Printf("  Default intensity: %.2f\n", appConfig.Transform.DefaultIntensity)
	cmd.Println()

	cmd.Println("[wordlists]")
	if appConfig.Wordlists.Path != "" {
		cmd.Printf("  Override: %s (watch: %t)\n", appConfig.Wordlists.Path, appConfig.Wordlists.Watch)
	} else {
		cmd.Println("  Override: (built-in defaults)")
	}
	cmd.Println()

	cmd.Println("[history]")
	if appConfig.History.Disabled {
		cmd.Println("  Disabled: yes")
	} else {
		cmd.Println("  Disabled: no")
	}

	return nil
}

func runConfigSetKey(cmd *cobra.Command, _ []string) error {
	dir := configDir
	if dir == "" {
		var err error
		dir, err = file.DefaultDir()
		if err != nil {
			return fmt.Errorf("resolving config directory: %w", err)
		}
	}

	cfg, err := file.Load(dir)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	cmd.Print("Enter API key: ")
	key := readPassword()
	cmd.Println()
	if key == "" {
		return errors.New("API key must not be empty")
	}

	cfg.Oracle.APIKey = key
	if configValidateKey {
		if err := ai.ValidateOracleConfig(cfg.OracleSettings()); err != nil {
			return fmt.Errorf("validating API key: %w", err)
		}
	}
	if err := file.Save(dir, cfg); err != nil {
		return fmt.Errorf("saving configuration: %w", err)
	}

	cmd.Println("API key saved.")
	return nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read password without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
