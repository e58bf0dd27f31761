// cmd/shql/main.go
//
// shql is an interactive SQL-like shell over a directory of plain-text,
// tab-delimited flat files.
//
// Usage:
//
//	shql [-q] <database-directory>
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"

	"github.com/tnm/shql/pkg/cli"
	"github.com/tnm/shql/pkg/errs"
	"github.com/tnm/shql/pkg/session"
)

type options struct {
	Quiet bool `short:"q" long:"quiet" description:"suppress column headers and row-count chrome"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[-q] <database-directory>"

	args, err := parser.ParseArgs(os.Args[1:])
	if err != nil {
		os.Exit(1)
	}
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "shql: exactly one database directory is required")
		parser.WriteHelp(os.Stderr)
		os.Exit(1)
	}

	dir, err := resolveDir(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sess, err := session.New(dir, opts.Quiet)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	repl := cli.New(sess, os.Stdin, os.Stdout, os.Stderr)
	repl.Run()
}

// resolveDir validates the database directory argument, falling back
// to SHQL_ROOT when a relative path does not exist under the current
// working directory.
func resolveDir(arg string) (string, error) {
	if info, err := os.Stat(arg); err == nil && info.IsDir() {
		return arg, nil
	}

	if !filepath.IsAbs(arg) {
		if root := os.Getenv("SHQL_ROOT"); root != "" {
			candidate := filepath.Join(root, arg)
			if info, err := os.Stat(candidate); err == nil && info.IsDir() {
				return candidate, nil
			}
		}
	}

	return "", errs.NewConfigError("database directory does not exist: %s", arg)
}
