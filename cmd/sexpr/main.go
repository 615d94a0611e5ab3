// Command sexpr parses s-expressions from files, stdin, an interactive prompt
// or Lua scripts.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
