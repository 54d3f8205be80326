package cmd

import (
	"fmt"

	consts "github.com/protocolhere/urlscan/internal/shared/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultHTTPTimeoutSeconds = 10
	defaultConcurrency        = 4
	defaultOutputFormat       = "text"
	defaultLogLevel           = "info"
	defaultLogFormat          = "console"
)

// CLIConfig captures runtime configuration shared across commands.
type CLIConfig struct {
	Scan ScanRuntimeConfig
	Log  LogConfig
}

// ScanRuntimeConfig consolidates flag-driven settings for scans.
type ScanRuntimeConfig struct {
	TimeoutSecs  int
	UserAgent    string
	MaxBodyBytes int64
	Output       string
	Concurrency  int
	RateLimit    int
	Progress     bool
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level  string
	Format string
}

var cliConfig = newCLIConfig()

func newCLIConfig() *CLIConfig {
	return &CLIConfig{
		Scan: ScanRuntimeConfig{
			TimeoutSecs:  defaultHTTPTimeoutSeconds,
			UserAgent:    defaultUserAgent(),
			MaxBodyBytes: consts.DefaultMaxBodyBytes,
			Output:       defaultOutputFormat,
			Concurrency:  defaultConcurrency,
			RateLimit:    0,
			Progress:     true,
		},
		Log: LogConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

func defaultUserAgent() string {
	return fmt.Sprintf("%s/%s", consts.AppName, Version)
}

// applyConfigDefaults merges config file and environment values into the runtime
// config when the user did not explicitly set the corresponding flag.
func applyConfigDefaults(cmd *cobra.Command) {
	flags := cmd.Flags()

	if viper.IsSet("defaults.timeout_secs") {
		applyIntDefault(flags, "timeout", viper.GetInt("defaults.timeout_secs"), func(v int) {
			cliConfig.Scan.TimeoutSecs = v
		})
	}

	if viper.IsSet("defaults.user_agent") {
		applyStringDefault(flags, "user-agent", viper.GetString("defaults.user_agent"), func(v string) {
			cliConfig.Scan.UserAgent = v
		})
	}

	if viper.IsSet("defaults.max_body_bytes") {
		applyIntDefault(flags, "max-body-bytes", viper.GetInt("defaults.max_body_bytes"), func(v int) {
			cliConfig.Scan.MaxBodyBytes = int64(v)
		})
	}

	if viper.IsSet("defaults.output") {
		applyStringDefault(flags, "output", viper.GetString("defaults.output"), func(v string) {
			cliConfig.Scan.Output = v
		})
	}

	if viper.IsSet("defaults.concurrency") {
		applyIntDefault(flags, "concurrency", viper.GetInt("defaults.concurrency"), func(v int) {
			cliConfig.Scan.Concurrency = v
		})
	}

	if viper.IsSet("defaults.rate_limit") {
		applyIntDefault(flags, "rate-limit", viper.GetInt("defaults.rate_limit"), func(v int) {
			cliConfig.Scan.RateLimit = v
		})
	}

	if viper.IsSet("defaults.progress") {
		applyBoolDefault(flags, "progress", viper.GetBool("defaults.progress"), func(v bool) {
			cliConfig.Scan.Progress = v
		})
	}

	if viper.IsSet("log_level") {
		applyStringDefault(flags, "log-level", viper.GetString("log_level"), func(v string) {
			cliConfig.Log.Level = v
		})
	}

	if viper.IsSet("log_format") {
		applyStringDefault(flags, "log-format", viper.GetString("log_format"), func(v string) {
			cliConfig.Log.Format = v
		})
	}
}

func applyIntDefault(flags *pflag.FlagSet, name string, value int, setter func(int)) {
	if flags == nil || setter == nil {
		return
	}
	flag := flags.Lookup(name)
	if flag != nil && flag.Changed {
		return
	}
	setter(value)
}

func applyBoolDefault(flags *pflag.FlagSet, name string, value bool, setter func(bool)) {
	if flags == nil || setter == nil {
		return
	}
	flag := flags.Lookup(name)
	if flag != nil && flag.Changed {
		return
	}
	setter(value)
}

func applyStringDefault(flags *pflag.FlagSet, name, value string, setter func(string)) {
	if flags == nil || setter == nil {
		return
	}
	flag := flags.Lookup(name)
	if flag != nil && flag.Changed {
		return
	}
	setter(value)
}
