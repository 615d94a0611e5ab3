package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alttpo/sexpr"
	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	historyFile = ".sexpr_history"
	promptMain  = "sexpr> "
	promptCont  = "  ...> "
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Parse expressions interactively",
	Long:  "Read expressions line by line and print each parsed value. Unbalanced input continues on the next line. Type :quit to exit.",
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func init() {
	replCmd.Flags().String("history", "", "History file (default: ~/"+historyFile+")")
	_ = viper.BindPFlag("history", replCmd.Flags().Lookup("history"))

	rootCmd.AddCommand(replCmd)
}

func historyPath() string {
	if p := viper.GetString("history"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}

func runRepl(cmd *cobra.Command, args []string) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyPath()
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			f, err := os.Create(histPath)
			if err != nil {
				slog.Warn("cannot write history", slog.String("file", histPath), slog.Any("err", err))
				return
			}
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}()
	}

	out := cmd.OutOrStdout()
	for {
		src, ok, err := readExpr(ln)
		if err != nil {
			return errors.Wrap(err, "reading input")
		}
		if !ok {
			fmt.Fprintln(out)
			return nil
		}

		trimmed := strings.TrimSpace(src)
		if trimmed == "" {
			continue
		}
		if trimmed == ":quit" {
			return nil
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		fmt.Fprintln(out, evalLine(src, viper.GetString("format")))
	}
}

// evalLine parses src and returns the formatted value or the error message.
func evalLine(src string, f string) string {
	n, err := sexpr.Parse(src)
	if err != nil {
		return "error: " + err.Error()
	}
	s, err := format(n, f)
	if err != nil {
		return "error: " + err.Error()
	}
	return s
}

// incomplete reports whether more input could still complete src.
func incomplete(err error) bool {
	return errors.Is(err, sexpr.ErrExpectedClosingParen) || errors.Is(err, sexpr.ErrUnclosedString)
}

// readExpr prompts until the collected lines parse or fail for a reason more
// input cannot fix. ok is false at end of input.
func readExpr(ln *liner.State) (src string, ok bool, err error) {
	var b strings.Builder

	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}

		var line string
		line, err = ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false, nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			b.Reset()
			err = nil
			continue
		}
		if err != nil {
			return "", false, err
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src = b.String()
		if _, perr := sexpr.Parse(src); perr != nil && incomplete(perr) && line != "" {
			continue
		}
		return src, true, nil
	}
}
