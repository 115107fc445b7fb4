// Command rpncalc evaluates Reverse Polish Notation expressions and
// serves the calculator web UI.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	cfgFile string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "rpncalc",
	Short: "RPN calculator service",
	Long: `rpncalc evaluates Reverse Polish Notation arithmetic expressions.

It can evaluate expressions directly from the command line or run an
HTTP server with a web calculator form and a JSON API.`,
	Version: version,
}

func main() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(evalCmd)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
