// pkg/sql/parser/parser_test.go
package parser

import "testing"

func TestParseCreateTable(t *testing.T) {
	stmt, err := Parse("create table users ( name 20 age 3 )")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ct, ok := stmt.(*CreateTableStmt)
	if !ok {
		t.Fatalf("got %T", stmt)
	}
	if ct.Table != "users" || len(ct.Columns) != 2 || ct.Columns[1].Width != 3 {
		t.Fatalf("got %+v", ct)
	}
}

func TestParseInsert(t *testing.T) {
	stmt, err := Parse("insert into users values ( 'Alice' 30 'Bob' 25 )")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ins, ok := stmt.(*InsertStmt)
	if !ok {
		t.Fatalf("got %T", stmt)
	}
	if ins.Table != "users" || len(ins.Values) != 4 {
		t.Fatalf("got %+v", ins)
	}
	if ins.Values[0].Str != "Alice" || !ins.Values[0].IsStr {
		t.Errorf("got %+v", ins.Values[0])
	}
	if ins.Values[1].Ident != "30" {
		t.Errorf("got %+v", ins.Values[1])
	}
}

func TestParseSelectStar(t *testing.T) {
	stmt, err := Parse("select * from users")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	sel := stmt.(*SelectStmt)
	if len(sel.Columns) != 1 || !sel.Columns[0].Star || len(sel.From) != 1 || sel.From[0] != "users" {
		t.Fatalf("got %+v", sel)
	}
}

func TestParseSelectWhereComparison(t *testing.T) {
	stmt, err := Parse("select name from users where age > 28")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	sel := stmt.(*SelectStmt)
	cmp, ok := sel.Where.(*CompareExpr)
	if !ok {
		t.Fatalf("got %T", sel.Where)
	}
	if cmp.Left.Ident != "age" || cmp.Op != OpGT || cmp.Right.Ident != "28" {
		t.Fatalf("got %+v", cmp)
	}
}

func TestParseAndOrPrecedence(t *testing.T) {
	// a = 1 or b = 2 and c = 3  ==  a = 1 or (b = 2 and c = 3)
	stmt, err := Parse("select * from t where a = 1 or b = 2 and c = 3")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	sel := stmt.(*SelectStmt)
	or, ok := sel.Where.(*OrExpr)
	if !ok {
		t.Fatalf("got %T", sel.Where)
	}
	if _, ok := or.Left.(*CompareExpr); !ok {
		t.Errorf("left of OR should be a comparison, got %T", or.Left)
	}
	and, ok := or.Right.(*AndExpr)
	if !ok {
		t.Fatalf("right of OR should be AND, got %T", or.Right)
	}
	_ = and
}

func TestParseNotBindsTighterThanAnd(t *testing.T) {
	stmt, err := Parse("select * from t where not a = 1 and b = 2")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	sel := stmt.(*SelectStmt)
	and, ok := sel.Where.(*AndExpr)
	if !ok {
		t.Fatalf("got %T", sel.Where)
	}
	if _, ok := and.Left.(*NotExpr); !ok {
		t.Errorf("left of AND should be NOT, got %T", and.Left)
	}
}

func TestParseParenOverridesPrecedence(t *testing.T) {
	stmt, err := Parse("select * from t where (a = 1 or b = 2) and c = 3")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	sel := stmt.(*SelectStmt)
	and, ok := sel.Where.(*AndExpr)
	if !ok {
		t.Fatalf("got %T", sel.Where)
	}
	if _, ok := and.Left.(*OrExpr); !ok {
		t.Errorf("left of AND should be OR, got %T", and.Left)
	}
}

func TestParseInSubquery(t *testing.T) {
	stmt, err := Parse("select name from users where status in select code from valid")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	sel := stmt.(*SelectStmt)
	in, ok := sel.Where.(*InExpr)
	if !ok {
		t.Fatalf("got %T", sel.Where)
	}
	if in.Negate {
		t.Error("expected non-negated IN")
	}
	if in.Sub == nil || in.Sub.From[0] != "valid" {
		t.Fatalf("got %+v", in.Sub)
	}
}

func TestParseScalarSubquery(t *testing.T) {
	stmt, err := Parse("select name from users where age = select max(age) from users")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	sel := stmt.(*SelectStmt)
	cmp, ok := sel.Where.(*CompareExpr)
	if !ok {
		t.Fatalf("got %T", sel.Where)
	}
	if cmp.Right.Sub == nil || cmp.Right.Sub.Columns[0].Agg != "max" {
		t.Fatalf("got %+v", cmp.Right)
	}
}

func TestParseOrderByNumeric(t *testing.T) {
	stmt, err := Parse("select name from users order by age num")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	sel := stmt.(*SelectStmt)
	if len(sel.OrderBy) != 1 || !sel.OrderBy[0].Numeric || sel.OrderBy[0].Column != "age" {
		t.Fatalf("got %+v", sel.OrderBy)
	}
}

func TestParseUnion(t *testing.T) {
	stmt, err := Parse("select a from t union select a from u")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	sel := stmt.(*SelectStmt)
	if sel.Union == nil || sel.Union.From[0] != "u" {
		t.Fatalf("got %+v", sel.Union)
	}
}

func TestParseUpdate(t *testing.T) {
	stmt, err := Parse("update users set age = 31 where name = 'Alice'")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	upd := stmt.(*UpdateStmt)
	if upd.Table != "users" || len(upd.Set) != 1 || upd.Set[0].Column != "age" {
		t.Fatalf("got %+v", upd)
	}
	if upd.Where == nil {
		t.Error("expected a WHERE clause")
	}
}

func TestParseDeleteNoWhere(t *testing.T) {
	stmt, err := Parse("delete from users")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	del := stmt.(*DeleteStmt)
	if del.Table != "users" || del.Where != nil {
		t.Fatalf("got %+v", del)
	}
}

func TestParseCreateDropView(t *testing.T) {
	stmt, err := Parse("create view v ( users.dept_id = depts.id )")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cv := stmt.(*CreateViewStmt)
	if cv.View != "v" || len(cv.Joins) != 1 || cv.Joins[0].LeftCol != "dept_id" {
		t.Fatalf("got %+v", cv)
	}

	stmt2, err := Parse("drop view v")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if stmt2.(*DropViewStmt).View != "v" {
		t.Fatalf("got %+v", stmt2)
	}
}

func TestParseUnknownCommand(t *testing.T) {
	if _, err := Parse("frobnicate users"); err == nil {
		t.Fatal("expected ParseError")
	}
}

func TestParseJoinWhereMultiTable(t *testing.T) {
	stmt, err := Parse("select name dept_name from users depts where dept_id = id")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	sel := stmt.(*SelectStmt)
	if len(sel.From) != 2 || sel.From[0] != "users" || sel.From[1] != "depts" {
		t.Fatalf("got %+v", sel.From)
	}
	if len(sel.Columns) != 2 {
		t.Fatalf("got %+v", sel.Columns)
	}
}
