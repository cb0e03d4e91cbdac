/*
Copyright © 2025 riad@rsworld.eu

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"regsift/config"
)

var (
	cfgFile string
	verbose bool
	logger  = zap.NewNop()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "regsift",
	Short: "Extract iftar and programming registrants from point-of-sale order exports.",
	Long: `
**********************************************
*                 REGSIFT                    *
**********************************************

This CLI reads point-of-sale exports (CSV, Excel), detects whether each file is an
older "items" export or a newer "orders" export, and turns the free-text modifier
column of every row into registrant records:

- Iftar: full name, email, dietary restrictions
- Programming: full name, email, gender, status, year, photo consent, accessibility

Records can be shown as terminal tables, filtered by event, and exported as
TSV (paste into a spreadsheet), CSV, or Excel.
`,
	Example: `
  # Create configuration file
  regsift config create

  # Show both tables for an orders export
  regsift extract -i orders-2026-03.csv

  # List the events found per category
  regsift events -i orders-2026-03.csv

  # Copy one iftar night as TSV
  regsift extract -i orders-2026-03.csv --category iftar --event "Iftar - March 3" --output -

  # Export programming registrants of several files to Excel
  regsift extract -i items-2026.csv -i orders-2026-03.xlsx --category programming --output ./programming.xlsx
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := "info"
		if cfg, err := config.LoadAndValidate(); err == nil {
			level = cfg.Log.Level
		}
		if verbose {
			level = "debug"
		}

		built, err := newLogger(level)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = built
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.regsift.yaml, then ./.regsift.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".regsift" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".regsift")
	}

	viper.SetEnvPrefix("regsift")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// A missing config file is fine: defaults cover every key.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			fmt.Fprintln(os.Stderr, "Failed to read config file:", err)
		}
	}
}

// newLogger builds the console logger written to stderr, keeping stdout free
// for tables and exports.
func newLogger(level string) (*zap.Logger, error) {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parsed)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true
	return cfg.Build()
}
