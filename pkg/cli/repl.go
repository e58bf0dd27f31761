// pkg/cli/repl.go
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/tnm/shql/pkg/engine"
	"github.com/tnm/shql/pkg/session"
	"github.com/tnm/shql/pkg/sql/parser"
)

// REPL drives one database session: it reads statements from a Shell,
// hands complete statement text to the engine once per statement, and
// renders results or errors.
type REPL struct {
	sess  *session.Session
	eng   *engine.Engine
	shell *Shell
	out   io.Writer
	errw  io.Writer
}

// New creates a REPL over an already-opened session.
func New(sess *session.Session, input io.Reader, out, errw io.Writer) *REPL {
	return &REPL{
		sess:  sess,
		eng:   engine.New(),
		shell: NewShell(input, out),
		out:   out,
		errw:  errw,
	}
}

// Run executes statements until the shell requests quit or input ends.
func (r *REPL) Run() {
	for {
		text, quit, eof := r.shell.ReadStatement()
		if quit {
			return
		}
		text = strings.TrimSpace(text)
		if text != "" {
			r.execute(text)
		}
		if eof {
			return
		}
	}
}

func (r *REPL) execute(text string) {
	stmt, err := r.eng.Parse(text)
	if err != nil {
		r.printError(err)
		return
	}

	switch s := stmt.(type) {
	case *parser.HelpStmt:
		r.printHelp(s.Args)
		return
	case *parser.PrintStmt:
		fmt.Fprintln(r.out, text)
		return
	}

	stSess, err := r.sess.StartStatement()
	if err != nil {
		r.printError(err)
		return
	}
	defer stSess.Close()

	result, err := r.eng.Execute(stSess, stmt)
	if err != nil {
		r.printError(err)
		return
	}
	for _, line := range result.FormatLines(r.sess.Quiet) {
		fmt.Fprintln(r.out, line)
	}
}

func (r *REPL) printError(err error) {
	fmt.Fprintf(r.errw, "Error: %v\n", err)
}

func (r *REPL) printHelp(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(r.out, helpText)
		return
	}
	fmt.Fprintln(r.out, "No help available for", strings.Join(args, " "))
}

const helpText = `Statements:
  select ... from ... [where ...] [order by ...] [union select ...]
  insert into <table> values ( ... )
  update <table> set col = val [, ...] [where ...]
  delete from <table> [where ...]
  create table <table> ( col width ... )
  drop table <table>
  create view <view> ( t1.col = t2.col ... )
  drop view <view>

Terminators:
  /g or \g   submit the statement
  /p or \p   reprint the buffer
  /q or \q   quit`
