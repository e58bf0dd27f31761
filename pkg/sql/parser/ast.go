// pkg/sql/parser/ast.go
package parser

// Statement is implemented by every parsed statement kind.
type Statement interface {
	statementNode()
}

// Expr is implemented by every WHERE-clause expression node.
type Expr interface {
	exprNode()
}

// AndExpr, OrExpr and NotExpr implement the boolean connectives.
// Precedence is fixed at parse time: NOT binds tighter than AND, AND
// binds tighter than OR.
type AndExpr struct{ Left, Right Expr }
type OrExpr struct{ Left, Right Expr }
type NotExpr struct{ Inner Expr }

func (*AndExpr) exprNode() {}
func (*OrExpr) exprNode()  {}
func (*NotExpr) exprNode() {}

// CompareOp is one of the six comparison operators.
type CompareOp int

const (
	OpEQ CompareOp = iota
	OpNE
	OpLT
	OpGT
	OpLE
	OpGE
)

// CompareExpr is "value op value".
type CompareExpr struct {
	Left  Operand
	Op    CompareOp
	Right Operand
}

func (*CompareExpr) exprNode() {}

// InExpr is "value [not] in subquery".
type InExpr struct {
	Left   Operand
	Negate bool
	Sub    *SelectStmt
}

func (*InExpr) exprNode() {}

// Operand is one side of a comparison or IN test: a bare identifier
// (resolved against a schema at compile time, or falling back to a
// literal string on a miss), a quoted string, or a scalar subquery.
type Operand struct {
	Ident string      // set when this operand is a bareword/number token
	Str   string      // set when this operand was a quoted string (unquoted)
	IsStr bool        // true if Str is the one to use, false for Ident
	Sub   *SelectStmt // set for a scalar subquery operand, nil otherwise
}

// statement kinds

// SelectStmt represents a SELECT statement, possibly followed by a
// UNION of another SelectStmt.
type SelectStmt struct {
	Distinct bool
	Columns  []SelectColumn // a nil/empty slice, or Star=true on the first entry, means "*"
	From     []string
	Where    Expr
	OrderBy  []OrderTerm
	Union    *SelectStmt
}

func (*SelectStmt) statementNode() {}

// SelectColumn is either "*", a bare column name, or an aggregate call
// agg(column).
type SelectColumn struct {
	Star    bool
	Name    string
	Agg     string // "count", "sum", "avg", "min", "max", or "" for a plain column
	AggCol  string // the column argument to Agg, or "*" for count(*)
}

// OrderTerm is one ORDER BY column with its modifiers.
type OrderTerm struct {
	Column  string
	Numeric bool
	Desc    bool
}

// InsertStmt represents INSERT INTO name VALUES ( v1 v2 ... ).
type InsertStmt struct {
	Table  string
	Values []Operand // flat list, sliced into row-sized groups at execution time
}

func (*InsertStmt) statementNode() {}

// Assignment is one "column = expr" pair of an UPDATE's SET list.
type Assignment struct {
	Column string
	Value  Operand
}

// UpdateStmt represents UPDATE name SET ... [WHERE ...].
type UpdateStmt struct {
	Table string
	Set   []Assignment
	Where Expr
}

func (*UpdateStmt) statementNode() {}

// DeleteStmt represents DELETE FROM name [WHERE ...].
type DeleteStmt struct {
	Table string
	Where Expr
}

func (*DeleteStmt) statementNode() {}

// ColumnDef is one column of a CREATE TABLE statement.
type ColumnDef struct {
	Name  string
	Width int
}

// CreateTableStmt represents CREATE TABLE name ( col width ... ).
type CreateTableStmt struct {
	Table   string
	Columns []ColumnDef
}

func (*CreateTableStmt) statementNode() {}

// DropTableStmt represents DROP TABLE name.
type DropTableStmt struct {
	Table string
}

func (*DropTableStmt) statementNode() {}

// JoinPair is one "t1.k = t2.k" equi-join clause of a view definition.
type JoinPair struct {
	LeftTable, LeftCol   string
	RightTable, RightCol string
}

// CreateViewStmt represents CREATE VIEW name ( t1.k = t2.k, ... ).
type CreateViewStmt struct {
	View  string
	Joins []JoinPair
}

func (*CreateViewStmt) statementNode() {}

// DropViewStmt represents DROP VIEW name.
type DropViewStmt struct {
	View string
}

func (*DropViewStmt) statementNode() {}

// HelpStmt and PrintStmt are recognized by the dispatcher but executed
// entirely by the external REPL: the core returns them unexecuted so
// the caller can render its own presentation.
type HelpStmt struct{ Args []string }
type PrintStmt struct{ Args []string }

func (*HelpStmt) statementNode()  {}
func (*PrintStmt) statementNode() {}
