// pkg/storage/storage_test.go
package storage

import (
	"testing"

	"github.com/tnm/shql/pkg/errs"
	"github.com/tnm/shql/pkg/schema"
)

func mustCreate(t *testing.T, dir, table string, cols []schema.Column) {
	t.Helper()
	if err := Create(dir, table, cols); err != nil {
		t.Fatalf("Create: %v", err)
	}
}

func TestCreateDropLifecycle(t *testing.T) {
	dir := t.TempDir()
	cols := []schema.Column{{Name: "name", Width: 20}, {Name: "age", Width: 3}}
	mustCreate(t, dir, "users", cols)

	exists, err := Exists(dir, "users")
	if err != nil || !exists {
		t.Fatalf("Exists: %v %v", exists, err)
	}

	if err := Create(dir, "users", cols); err == nil {
		t.Fatal("expected AlreadyExistsError on re-create")
	} else if _, ok := err.(*errs.AlreadyExistsError); !ok {
		t.Errorf("got %T, want *errs.AlreadyExistsError", err)
	}

	if err := Drop(dir, "users"); err != nil {
		t.Fatalf("Drop: %v", err)
	}
	exists, err = Exists(dir, "users")
	if err != nil || exists {
		t.Fatalf("Exists after drop: %v %v", exists, err)
	}

	if err := Drop(dir, "users"); err == nil {
		t.Fatal("expected NotFoundError on double drop")
	}
}

func TestAppendAndReadAll(t *testing.T) {
	dir := t.TempDir()
	cols := []schema.Column{{Name: "name", Width: 20}, {Name: "age", Width: 3}}
	mustCreate(t, dir, "users", cols)

	err := AppendRows(dir, "users", []Record{{"Alice", "30"}, {"Bob", "25"}})
	if err != nil {
		t.Fatalf("AppendRows: %v", err)
	}

	records, err := ReadAll(dir, "users")
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(records) != 2 || records[0][0] != "Alice" || records[1][1] != "25" {
		t.Fatalf("got %v", records)
	}
}

func TestRewriteIsAtomicOverOriginal(t *testing.T) {
	dir := t.TempDir()
	cols := []schema.Column{{Name: "name", Width: 20}}
	mustCreate(t, dir, "t", cols)
	_ = AppendRows(dir, "t", []Record{{"a"}, {"b"}, {"c"}})

	if err := Rewrite(dir, "t", []Record{{"b"}}); err != nil {
		t.Fatalf("Rewrite: %v", err)
	}
	records, err := ReadAll(dir, "t")
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(records) != 1 || records[0][0] != "b" {
		t.Fatalf("got %v", records)
	}
}

func TestScratchRelationRoundTrip(t *testing.T) {
	s, err := NewScratch()
	if err != nil {
		t.Fatalf("NewScratch: %v", err)
	}
	defer s.Close()

	path, err := s.NewRelation([]Record{{"x", "1"}, {"y", "2"}})
	if err != nil {
		t.Fatalf("NewRelation: %v", err)
	}
	records, err := s.LoadRelation(path)
	if err != nil {
		t.Fatalf("LoadRelation: %v", err)
	}
	if len(records) != 2 || records[0][0] != "x" {
		t.Fatalf("got %v", records)
	}
}

func TestOpenSchemaNotFound(t *testing.T) {
	dir := t.TempDir()
	if _, err := OpenSchema(dir, "nope"); err == nil {
		t.Fatal("expected error")
	} else if _, ok := err.(*errs.NotFoundError); !ok {
		t.Errorf("got %T", err)
	}
}
