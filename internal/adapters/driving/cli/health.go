package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	healthProbe bool
	healthJSON  bool
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Report pipeline health",
	Long: `Reports whether the pipeline is ready and whether the synonym oracle
is configured. This is a configuration check only; use --probe to also
contact the oracle endpoint.`,
	RunE: runHealth,
}

func init() {
	healthCmd.Flags().BoolVar(&healthProbe, "probe", false, "contact the oracle endpoint")
	healthCmd.Flags().BoolVar(&healthJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(healthCmd)
}

func runHealth(cmd *cobra.Command, _ []string) error {
	if transformService == nil {
		return errors.New("transform service not configured")
	}

	health := transformService.Health(cmd.Context())

	if healthJSON {
		payload := struct {
			Status          string `json:"status"`
			OracleReachable bool   `json:"oracleReachable"`
		}{
			Status:          "ok",
			OracleReachable: health.OracleReachable,
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal health: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println("Status: ok")
	if health.OracleReachable {
		cmd.Println("Oracle: configured")
	} else {
		cmd.Println("Oracle: not configured (static wordlists only)")
	}

	if healthProbe {
		if synonymOracle == nil {
			cmd.Println("Probe:  skipped, no oracle configured")
			return nil
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		if err := synonymOracle.Ping(ctx); err != nil {
			cmd.Printf("Probe:  FAILED: %v\n", err)
			return nil
		}
		cmd.Printf("Probe:  ok (%s)\n", synonymOracle.ModelName())
	}

	return nil
}
