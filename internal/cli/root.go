// Package cli implements the patfmt command: a filter that lifts raw
// log lines into events and re-renders them through a layout pattern.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/patlog/patlog/formatter"
	"github.com/patlog/patlog/logger"
)

var (
	cfgFile    string
	patternStr string
	loggerName string
	colorize   bool
	strict     bool
)

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "patfmt [file]",
	Short: "patfmt — reformat log lines through a layout pattern",
	Long: `patfmt reads log lines from a file or stdin, lifts each line into a
log event (JSON lines have their level, message, timestamp, and caller
fields recognized; plain lines get keyword-based severity detection),
and renders the event through a layout pattern such as

    %d{%Y-%m-%d %H:%M:%S}%T[%p]%T[%c]%T%f:%l%T%m%n`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: $HOME/.patfmt.yaml)")
	rootCmd.Flags().StringVarP(&patternStr, "pattern", "p", "", "layout pattern (default: the production pattern)")
	rootCmd.Flags().StringVarP(&loggerName, "logger-name", "n", "root", "logger name rendered by %c")
	rootCmd.Flags().BoolVar(&colorize, "color", false, "colorize output by severity")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "reject patterns with malformed directives")
	_ = viper.BindPFlag("pattern", rootCmd.Flags().Lookup("pattern"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(".patfmt")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

func run(cmd *cobra.Command, args []string) error {
	pattern := viper.GetString("pattern")
	if pattern == "" {
		pattern = formatter.DefaultPattern
	}

	f := formatter.New(pattern)
	if strict && f.IsError() {
		return errors.Errorf("malformed pattern %q", f.Pattern())
	}

	in := cmd.InOrStdin()
	if len(args) == 1 {
		file, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "open input")
		}
		defer file.Close()
		in = file
	}

	return reformat(cmd.OutOrStdout(), in, f, logger.New(loggerName), colorize)
}

// reformat renders every input line through f and writes the result to
// w, optionally colorized by severity.
func reformat(w io.Writer, r io.Reader, f formatter.Formatter, lg *logger.Logger, color bool) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for sc.Scan() {
		event := liftLine(sc.Text(), lg)
		line := f.Format(lg, event.Level(), event)
		if color {
			line = styleLine(event.Level(), line)
		}
		if _, err := io.WriteString(w, line); err != nil {
			return errors.Wrap(err, "write output")
		}
	}
	return errors.Wrap(sc.Err(), "read input")
}
