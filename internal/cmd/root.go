package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ironsheep/colorconv-mcp/internal/colorconv"
	"github.com/ironsheep/colorconv-mcp/internal/kernel"
)

// Build information, set by main from ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "colorconv-mcp",
	Short: "MCP server and CLI for image colorspace conversion",
	Long: `colorconv-mcp converts images between the RGB, BGR, grayscale, HSV, HLS and
LAB colorspaces.

Run without a subcommand (or with "serve") it speaks the MCP protocol over
stdin/stdout so MCP clients can call the conversions as tools. The "convert"
and "list" subcommands use the same conversions from the shell.

Logs go to stderr; stdout is reserved for the protocol stream.`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml or ~/.config/colorconv/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "Log format (console, json)")
	rootCmd.PersistentFlags().String("backend", kernel.ColorfulName, "Conversion backend ("+strings.Join(kernel.Backends(), ", ")+")")
	rootCmd.PersistentFlags().Bool("strict", false, "Require image labels to match the conversion source")

	for _, name := range []string{"log-level", "log-format", "backend", "strict"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			panic(fmt.Sprintf("failed to bind flag: %v", err))
		}
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "colorconv"))
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("COLORCONV")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetString("log-level") == "debug" {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

// newLogger builds a zap logger writing to stderr. format is "console" for
// human-readable output or "json" for structured output.
func newLogger(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var cfg zap.Config
	switch format {
	case "json":
		cfg = zap.NewProductionConfig()
	case "console", "":
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("invalid log format %q: must be 'console' or 'json'", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build()
}

// newConverter builds a converter from the backend and strict settings.
func newConverter(logger *zap.Logger) (*colorconv.Converter, error) {
	k, err := kernel.ByName(viper.GetString("backend"))
	if err != nil {
		return nil, err
	}

	policy := colorconv.AcceptPlausible
	if viper.GetBool("strict") {
		policy = colorconv.RequireLabel
	}

	return colorconv.New(
		colorconv.WithKernel(k),
		colorconv.WithPolicy(policy),
		colorconv.WithLogger(logger),
	), nil
}

// setup builds the logger and converter shared by every subcommand.
func setup() (*zap.Logger, *colorconv.Converter, error) {
	logger, err := newLogger(viper.GetString("log-level"), viper.GetString("log-format"))
	if err != nil {
		return nil, nil, err
	}
	conv, err := newConverter(logger)
	if err != nil {
		return nil, nil, err
	}
	return logger, conv, nil
}
