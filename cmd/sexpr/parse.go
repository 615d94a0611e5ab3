package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alttpo/sexpr"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a file and print the result",
	Long:  "Parse a file, or stdin when no file or '-' is given, and print the parsed value.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Check that files parse",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	name := "-"
	if len(args) == 1 {
		name = args[0]
	}

	n, err := parseFile(cmd.InOrStdin(), name)
	if err != nil {
		return err
	}

	out, err := format(n, viper.GetString("format"))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	failed := 0
	for _, name := range args {
		if _, err := parseFile(cmd.InOrStdin(), name); err != nil {
			failed++
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", name, errors.Cause(err))
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", name)
	}
	if failed > 0 {
		return errors.Errorf("%d of %d files failed to parse", failed, len(args))
	}
	return nil
}

// parseFile reads name, or stdin for "-", in full and parses it.
func parseFile(stdin io.Reader, name string) (*sexpr.Node, error) {
	r := stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, errors.Wrap(err, "reading input")
		}
		defer f.Close()
		r = f
	}

	slog.Debug("parsing", slog.String("file", name))
	n, err := sexpr.ParseReader(r)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", name)
	}
	slog.Debug("parsed", slog.String("file", name), slog.String("kind", n.Kind.String()))
	return n, nil
}

func format(n *sexpr.Node, f string) (string, error) {
	switch f {
	case "sexpr", "":
		return n.String(), nil
	case "json":
		b, err := json.Marshal(n)
		if err != nil {
			return "", errors.Wrap(err, "encoding json")
		}
		return string(b), nil
	}
	return "", errors.Errorf("unknown format %q", f)
}
