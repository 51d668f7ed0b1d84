package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	satkit "github.com/marselester/propsat"
	"github.com/marselester/propsat/cmd/satkit/config"
	"github.com/marselester/propsat/internal/obs"
)

func main() {
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "satkit",
		Short: "satkit decides propositional satisfiability",
		Long:  "satkit reads a $$ ... $$ delimited Boolean formula from stdin or --expr and prints a verdict.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, debug)
		},
	}

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.Flags().String("expr", "", "formula to solve; reads stdin if omitted")
	rootCmd.Flags().String("engine", "dpll", "solving pipeline: dpll or linear")
	rootCmd.Flags().String("verdict-words", "default", "verdict vocabulary: default or alt")
	rootCmd.Flags().Duration("timeout", 0, "search timeout; 0 means no bound")

	rootCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		debug, _ = cmd.Flags().GetBool("debug")
		return nil
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, debug bool) error {
	level := logrus.WarnLevel
	if debug {
		level = logrus.DebugLevel
	}
	logger := obs.New(level)

	cfg, err := config.Load(cmd)
	if err != nil {
		return err
	}

	expr, err := readExpr(cmd)
	if err != nil {
		return err
	}

	engine := satkit.EngineDPLL
	if cfg.Engine == "linear" {
		engine = satkit.EngineLinear
	}

	words := satkit.DefaultVerdictWords
	if cfg.VerdictWords == "alt" {
		words = satkit.AltVerdictWords
	}

	v := solveWithTimeout(expr, engine, words, logger, cfg.Timeout)
	fmt.Println(v.Line)
	return nil
}

func readExpr(cmd *cobra.Command) (string, error) {
	expr, err := cmd.Flags().GetString("expr")
	if err != nil {
		return "", err
	}
	if expr != "" {
		return expr, nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// solveWithTimeout bounds how long Solve may run without touching the
// dpll package itself: a timeout here is an external recoverable
// failure (no different in kind from a malformed-input failure), so
// it is reported as NO-SOLUTION rather than a non-zero exit.
func solveWithTimeout(expr string, engine satkit.Engine, words satkit.VerdictWords, logger *logrus.Logger, timeout time.Duration) *satkit.Verdict {
	if timeout <= 0 {
		return satkit.Solve(expr, engine, words, logger)
	}

	result := make(chan *satkit.Verdict, 1)
	go func() {
		result <- satkit.Solve(expr, engine, words, logger)
	}()

	select {
	case v := <-result:
		return v
	case <-time.After(timeout):
		logger.Warn("search exceeded timeout, reporting NO-SOLUTION")
		return &satkit.Verdict{NoSolution: true, Line: words.NoSolution}
	}
}
