package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/kanoonai/kanoon-web/internal/config"
	"github.com/spf13/cobra"
)

var configEnvFile string

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Load the configuration exactly as the server does and print it.
The session secret is never printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if configEnvFile != "" {
			if err := godotenv.Load(configEnvFile); err != nil {
				return fmt.Errorf("load %s: %w", configEnvFile, err)
			}
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		defer w.Flush()
		for _, row := range [][2]string{
			{"APP_ENV", cfg.Env},
			{"APP_ADDR", cfg.Addr},
			{"APP_BASE_URL", cfg.AppBaseURL},
			{"API_BASE_URL", cfg.APIBaseURL},
			{"BACKEND_TIMEOUT", cfg.BackendTimeout.String()},
			{"SESSION_DIR", orDash(cfg.SessionDir)},
			{"DASHBOARD_REQUIRE_LOGIN", fmt.Sprint(cfg.DashboardRequireLogin)},
			{"UPLOAD_MAX_BYTES", fmt.Sprint(cfg.UploadMaxBytes)},
			{"UPLOAD_STAGING_DIR", orDash(cfg.UploadStagingDir)},
			{"AUTH_ATTEMPTS_PER_MINUTE", fmt.Sprint(cfg.AuthAttemptsPerMinute)},
			{"TRACING_ENABLED", fmt.Sprint(cfg.TracingEnabled)},
		} {
			fmt.Fprintf(w, "%s\t%s\n", row[0], row[1])
		}
		return nil
	},
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringVar(&configEnvFile, "env-file", "", "Load variables from this file first")
}
