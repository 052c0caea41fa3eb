package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosteel/internal/config"
	"github.com/alexiusacademia/gosteel/internal/logging"
	"github.com/alexiusacademia/gosteel/internal/version"
)

var (
	// Loaded before any command runs
	cfg = config.Load()
	log = logrus.StandardLogger()

	outputFormat string
	logLevel     string
	logFormat    string
)

var rootCmd = &cobra.Command{
	Use:   "gosteel",
	Short: "Steel Beam and Purlin Design Tool",
	Long: `gosteel - Go Steel Beam Designer

A CLI tool for the preliminary design of simply supported steel beams
and roof purlins to the Egyptian (ECP) and American (AISC) codes.

This tool helps structural engineers perform:
  - Section sizing from a design moment or from applied loads
  - Bending capacity and deflection checks
  - Local buckling (compactness) classification
  - Lateral-torsional buckling checks
  - Purlin load combinations and governing case selection

Results can be printed, exported as diagrams and written to Excel or PDF.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := cfg.Logging.Level
		if cmd.Flags().Changed("log-level") {
			level = logLevel
		}
		format := cfg.Logging.Format
		if cmd.Flags().Changed("log-format") {
			format = logFormat
		}
		log = logging.New(level, format)
		log.WithFields(logrus.Fields{"command": cmd.CommandPath(), "code": cfg.Code, "grade": cfg.Grade}).Debug("configuration loaded")
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gosteel v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Steel Beam and Purlin Designer                       ║")
		fmt.Println("  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the preliminary design of steel beams and purlins")
		fmt.Println("  to the Egyptian and American codes.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Floor beam design from a moment or from applied loads")
		fmt.Println("    • Roof purlin design with load combinations")
		fmt.Println("    • Capacity, deflection, compactness and LTB checks")
		fmt.Println("    • Screening of every grade and section type")
		fmt.Println("    • Diagrams, Excel and PDF reports, design history")
		fmt.Println()
		fmt.Println("  Use 'gosteel --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", cfg.Output, "Output format (human, json, yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", cfg.Logging.Level, "Log level (debug, info, warn, error, off)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", cfg.Logging.Format, "Log format (text, json)")
}

// exitWithError prints err and terminates with a non-zero status
func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "%s %v\n", errorLabel("Error:"), err)
	os.Exit(1)
}
