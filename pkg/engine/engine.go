// pkg/engine/engine.go
package engine

import (
	"github.com/tnm/shql/pkg/session"
	"github.com/tnm/shql/pkg/sql/executor"
	"github.com/tnm/shql/pkg/sql/parser"
)

// Engine is the single entry point a caller drives once per complete
// statement: parse the accumulated statement text, then execute it
// against a Session. Parsing and execution are kept as two calls
// rather than one so a caller can recognize HelpStmt/PrintStmt before
// executing them — the core never runs those itself, since they are
// rendered entirely by the calling shell.
type Engine struct {
	exec *executor.Executor
}

// New builds an Engine.
func New() *Engine {
	return &Engine{exec: executor.New()}
}

// Parse tokenizes and parses one statement.
func (e *Engine) Parse(text string) (parser.Statement, error) {
	return parser.Parse(text)
}

// Execute runs an already-parsed statement against sess.
func (e *Engine) Execute(sess *session.Session, stmt parser.Statement) (*executor.Result, error) {
	return e.exec.Run(sess, stmt)
}

// Run parses and executes text in one step, for callers that have no
// use for the parsed statement beyond running it.
func (e *Engine) Run(sess *session.Session, text string) (*executor.Result, error) {
	stmt, err := e.Parse(text)
	if err != nil {
		return nil, err
	}
	return e.Execute(sess, stmt)
}
