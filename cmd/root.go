package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	consts "github.com/protocolhere/urlscan/internal/shared/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var cfgFile string
var noColor bool

// AppContext carries per-invocation dependencies into subcommands.
type AppContext struct {
	Logger *zap.SugaredLogger
	Config *CLIConfig
}

type appContextKey struct{}

var globalAppContext *AppContext

var rootCmd = &cobra.Command{
	Use:   consts.AppName,
	Short: "Quick superficial security checks for a single URL",
	Long: `urlscan fetches a URL once and runs a fixed battery of checks against the
transport, the response headers and the HTML body.

Run without a subcommand for the interactive menu, or use "urlscan scan <url>".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// init config
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		} else {
			viper.AddConfigPath("$HOME")
			viper.SetConfigName("." + consts.AppName)
			viper.SetConfigType("yaml")
		}
		viper.SetEnvPrefix(consts.EnvPrefix)
		viper.SetEnvKeyReplacer(newEnvKeyReplacer())
		viper.AutomaticEnv()

		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
				return fmt.Errorf("failed to read config %s: %w", cfgFile, err)
			}
		}

		applyConfigDefaults(cmd)

		if noColor {
			color.NoColor = true
		}

		// init logger
		l, err := buildLogger(cliConfig.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		appCtx := &AppContext{
			Logger: l.Sugar(),
			Config: cliConfig,
		}
		storeAppContext(cmd, appCtx)

		appCtx.Logger.Debugw("configuration loaded",
			"config_file", viper.ConfigFileUsed(),
			"timeout_secs", cliConfig.Scan.TimeoutSecs,
			"output", cliConfig.Scan.Output,
		)

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(cmd, getAppContext(cmd))
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newEnvKeyReplacer maps nested keys such as defaults.timeout_secs to
// URLSCAN_DEFAULTS_TIMEOUT_SECS.
func newEnvKeyReplacer() *strings.Replacer {
	return strings.NewReplacer(".", "_")
}

func storeAppContext(cmd *cobra.Command, appCtx *AppContext) {
	globalAppContext = appCtx
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, appContextKey{}, appCtx))
}

func getAppContext(cmd *cobra.Command) *AppContext {
	if cmd != nil && cmd.Context() != nil {
		if appCtx, ok := cmd.Context().Value(appContextKey{}).(*AppContext); ok && appCtx != nil {
			return appCtx
		}
	}
	if globalAppContext != nil {
		return globalAppContext
	}
	return &AppContext{
		Logger: zap.NewNop().Sugar(),
		Config: newCLIConfig(),
	}
}

func init() {
	// config file flag
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.urlscan.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured output")

	flags := rootCmd.PersistentFlags()
	flags.IntVar(&cliConfig.Scan.TimeoutSecs, "timeout", cliConfig.Scan.TimeoutSecs, "HTTP timeout in seconds")
	flags.StringVar(&cliConfig.Scan.UserAgent, "user-agent", cliConfig.Scan.UserAgent, "User-Agent header sent with the request")
	flags.Int64Var(&cliConfig.Scan.MaxBodyBytes, "max-body-bytes", cliConfig.Scan.MaxBodyBytes, "maximum response body size to inspect")
	flags.StringVar(&cliConfig.Scan.Output, "output", cliConfig.Scan.Output, "report format: text, json or log")
	flags.StringVar(&cliConfig.Log.Level, "log-level", cliConfig.Log.Level, "log level: debug, info, warn, error")
	flags.StringVar(&cliConfig.Log.Format, "log-format", cliConfig.Log.Format, "log encoding: console or json")

	// add subcommands
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(checksCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(versionCmd)
}
