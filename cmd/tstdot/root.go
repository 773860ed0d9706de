package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/e11jah/tst"
	"github.com/e11jah/tst/internal/logging"
	"github.com/e11jah/tst/internal/selftest"
)

const maxLineSize = 1 << 20

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tstdot",
		Short: "Plot a ternary search tree as a Graphviz digraph",
		Long: `tstdot builds a ternary search tree from the words on stdin, one per line,
and writes the tree as a Graphviz digraph to stdout.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.NewWriter(cmd.ErrOrStderr(), slog.LevelInfo)

			selfTest, _ := cmd.Flags().GetBool("test")
			if selfTest {
				return selftest.Run(log, selftest.Words, selftest.Checks)
			}
			return plot(log, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().Bool("test", false, "Run the built-in example checks and exit")
	return cmd
}

func plot(log *slog.Logger, in io.Reader, out io.Writer) error {
	tree, words, err := readTree(in)
	if err != nil {
		return err
	}
	log.Debug("tree built", "words", words, "nodes", tree.Nodes())

	return tree.WriteDot(out)
}

// readTree adds every whitespace-trimmed line of r to a new tree.
func readTree(r io.Reader) (tst.Tree, int, error) {
	tree := tst.New()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	words := 0
	for scanner.Scan() {
		tree.Add(strings.TrimSpace(scanner.Text()))
		words++
	}
	if err := scanner.Err(); err != nil {
		return nil, words, fmt.Errorf("read words: %w", err)
	}
	return tree, words, nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		logging.New(slog.LevelInfo).Error("tstdot failed", "error", err)
		os.Exit(1)
	}
}
