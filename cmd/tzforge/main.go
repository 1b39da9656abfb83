// Command tzforge is a thin CLI wrapper around the tezosforge library: it
// reads JSON operation content from a file and prints the forged hex, or
// dumps the library's constant tables as JSON.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "tzforge",
	Short: "Forge Tezos operation groups from JSON, offline",
	Long: `tzforge reads a JSON-described Tezos operation or operation group and
prints the exact bytes the Tezos wire format expects for it. It never talks
to a node, never touches a private key, and never attaches a signature.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cobra.OnInitialize(initLogger)
	rootCmd.AddCommand(forgeCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(feesCmd)
}

func initLogger() {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(level)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("tzforge failed")
		os.Exit(1)
	}
}
