// pkg/sql/executor/executor_test.go
package executor

import (
	"testing"

	"github.com/tnm/shql/pkg/session"
	"github.com/tnm/shql/pkg/sql/parser"
)

func newSession(t *testing.T) *session.Session {
	t.Helper()
	top, err := session.New(t.TempDir(), true)
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	sess, err := top.StartStatement()
	if err != nil {
		t.Fatalf("StartStatement: %v", err)
	}
	t.Cleanup(func() { sess.Close() })
	return sess
}

func run(t *testing.T, e *Executor, sess *session.Session, sql string) *Result {
	t.Helper()
	stmt, err := parser.Parse(sql)
	if err != nil {
		t.Fatalf("parse %q: %v", sql, err)
	}
	result, err := e.Run(sess, stmt)
	if err != nil {
		t.Fatalf("run %q: %v", sql, err)
	}
	return result
}

func TestCreateInsertSelect(t *testing.T) {
	e := New()
	sess := newSession(t)

	run(t, e, sess, "create table users ( name 20 age 3 )")
	run(t, e, sess, "insert into users values ( alice 30 bob 25 )")

	result := run(t, e, sess, "select * from users where age > 26")
	if len(result.Rows) != 1 || result.Rows[0][0] != "alice" {
		t.Fatalf("got %+v", result.Rows)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	e := New()
	sess := newSession(t)

	run(t, e, sess, "create table t ( k 3 v 3 )")
	run(t, e, sess, "insert into t values ( a 1 b 2 c 3 )")

	upd := run(t, e, sess, "update t set v = 9 where k = b")
	if upd.RowsAffected != 1 {
		t.Fatalf("expected 1 row updated, got %d", upd.RowsAffected)
	}
	sel := run(t, e, sess, "select v from t where k = b")
	if sel.Rows[0][0] != "9" {
		t.Fatalf("update did not take effect: %+v", sel.Rows)
	}

	del := run(t, e, sess, "delete from t where k = a")
	if del.RowsAffected != 1 {
		t.Fatalf("expected 1 row deleted, got %d", del.RowsAffected)
	}
	remaining := run(t, e, sess, "select * from t")
	if len(remaining.Rows) != 2 {
		t.Fatalf("expected 2 rows remaining, got %d", len(remaining.Rows))
	}
}

func TestJoinAndProjection(t *testing.T) {
	e := New()
	sess := newSession(t)

	run(t, e, sess, "create table users ( name 20 dept_id 3 )")
	run(t, e, sess, "insert into users values ( alice 1 bob 2 )")
	run(t, e, sess, "create table depts ( id 3 dept_name 20 )")
	run(t, e, sess, "insert into depts values ( 1 eng 2 sales )")

	result := run(t, e, sess, "select name dept_name from users depts where dept_id = id")
	if len(result.Rows) != 2 {
		t.Fatalf("got %+v", result.Rows)
	}
}

func TestJoinOrderErrorWhenNoKeyConnects(t *testing.T) {
	e := New()
	sess := newSession(t)

	run(t, e, sess, "create table a ( x 3 )")
	run(t, e, sess, "create table b ( y 3 )")

	_, err := e.Run(sess, mustParse(t, "select * from a b"))
	if err == nil {
		t.Fatal("expected JoinOrderError")
	}
}

func TestDistinctAndOrderBy(t *testing.T) {
	e := New()
	sess := newSession(t)

	run(t, e, sess, "create table t ( k 3 )")
	run(t, e, sess, "insert into t values ( b a b )")

	result := run(t, e, sess, "select distinct k from t order by k")
	if len(result.Rows) != 2 || result.Rows[0][0] != "a" || result.Rows[1][0] != "b" {
		t.Fatalf("got %+v", result.Rows)
	}
}

func TestAggregates(t *testing.T) {
	e := New()
	sess := newSession(t)

	run(t, e, sess, "create table t ( n 3 )")
	run(t, e, sess, "insert into t values ( 1 2 3 )")

	result := run(t, e, sess, "select count(*) sum(n) avg(n) from t")
	if result.Rows[0][0] != "3" || result.Rows[0][1] != "6" || result.Rows[0][2] != "2" {
		t.Fatalf("got %+v", result.Rows)
	}
}

func TestUnionDedup(t *testing.T) {
	e := New()
	sess := newSession(t)

	run(t, e, sess, "create table t ( k 3 )")
	run(t, e, sess, "insert into t values ( a b )")

	result := run(t, e, sess, "select k from t where k = a union select k from t where k = b")
	if len(result.Rows) != 2 {
		t.Fatalf("got %+v", result.Rows)
	}
}

func TestViewExpansion(t *testing.T) {
	e := New()
	sess := newSession(t)

	run(t, e, sess, "create table users ( name 20 dept_id 3 )")
	run(t, e, sess, "insert into users values ( alice 1 )")
	run(t, e, sess, "create table depts ( id 3 dept_name 20 )")
	run(t, e, sess, "insert into depts values ( 1 eng )")
	run(t, e, sess, "create view ud ( users.dept_id = depts.id )")

	result := run(t, e, sess, "select name dept_name from ud")
	if len(result.Rows) != 1 || result.Rows[0][1] != "eng" {
		t.Fatalf("got %+v", result.Rows)
	}
}

func mustParse(t *testing.T, sql string) parser.Statement {
	t.Helper()
	stmt, err := parser.Parse(sql)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return stmt
}
