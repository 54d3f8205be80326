package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show effective configuration",
	Long: `Display urlscan configuration information including:
  - Configuration file in use
  - Effective scan settings after flags, environment and config file
  - Platform information`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appCtx := getAppContext(cmd)
		cfg := appCtx.Config

		configFile := viper.ConfigFileUsed()
		if configFile == "" {
			configFile = "(none, using defaults)"
		}

		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "urlscan Information")
		fmt.Fprintln(out, "===================")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Platform:          %s/%s\n", runtime.GOOS, runtime.GOARCH)
		fmt.Fprintf(out, "Configuration:     %s\n", configFile)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Scan Settings:")
		fmt.Fprintf(out, "  Timeout:         %ds\n", cfg.Scan.TimeoutSecs)
		fmt.Fprintf(out, "  User-Agent:      %s\n", cfg.Scan.UserAgent)
		fmt.Fprintf(out, "  Max Body Bytes:  %d\n", cfg.Scan.MaxBodyBytes)
		fmt.Fprintf(out, "  Output:          %s\n", cfg.Scan.Output)
		fmt.Fprintf(out, "  Concurrency:     %d\n", cfg.Scan.Concurrency)
		fmt.Fprintf(out, "  Rate Limit:      %d/s\n", cfg.Scan.RateLimit)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Logging:")
		fmt.Fprintf(out, "  Level:           %s\n", cfg.Log.Level)
		fmt.Fprintf(out, "  Format:          %s\n", cfg.Log.Format)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "To override defaults, create ~/.urlscan.yaml with e.g.:")
		fmt.Fprintln(out, "  defaults:")
		fmt.Fprintln(out, "    timeout_secs: 20")
		fmt.Fprintln(out, "    output: json")
		fmt.Fprintln(out, "or set URLSCAN_DEFAULTS_TIMEOUT_SECS=20 in the environment.")

		return nil
	},
}
