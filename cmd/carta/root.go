package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/portaldocs/carta/pkg/carta"
)

var version = "dev"

var (
	verbosity int

	rootCmd = &cobra.Command{
		Use:   "carta",
		Short: "Generate representation letters from DOCX templates",
		Long: `carta fills DOCX representation-letter templates: it substitutes
{{variable}} placeholders, resolves {% if %} conditionals, renumbers the
literal list markers and preserves the template's formatting.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(verbosity)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v info, -vv debug)")

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(officesCmd)
	rootCmd.AddCommand(versionCmd)
}

// setupLogging routes the engine logs through a console writer at the
// level the -v flags select.
func setupLogging(verbosity int) {
	level := zerolog.WarnLevel
	switch verbosity {
	case 0:
	case 1:
		level = zerolog.InfoLevel
	default:
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	logger := zerolog.New(writer).Level(level).With().Timestamp().Logger()
	carta.SetLogger(logger)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("carta version %s\n", version)
	},
}
