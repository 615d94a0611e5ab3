package main

import (
	"log/slog"

	sexprlua "github.com/alttpo/sexpr/lua"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	lua "github.com/yuin/gopher-lua"
)

var luaCmd = &cobra.Command{
	Use:   "lua <script.lua>",
	Short: "Run a Lua script with the sexpr module",
	Long:  "Run a Lua script in which require(\"sexpr\") provides parse(text) and render(node).",
	Args:  cobra.ExactArgs(1),
	RunE:  runLua,
}

func init() {
	rootCmd.AddCommand(luaCmd)
}

func runLua(cmd *cobra.Command, args []string) error {
	l := lua.NewState()
	defer l.Close()
	sexprlua.Preload(l)

	slog.Debug("running lua script", slog.String("file", args[0]))
	if err := l.DoFile(args[0]); err != nil {
		return errors.Wrapf(err, "running %s", args[0])
	}
	return nil
}
