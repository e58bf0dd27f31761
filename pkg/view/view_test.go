// pkg/view/view_test.go
package view

import "testing"

func TestCreateLoadDropRoundTrip(t *testing.T) {
	dir := t.TempDir()
	def := Definition{
		Name:   "v",
		Tables: []string{"users", "depts"},
		Joins:  []Join{{LeftTable: "users", LeftCol: "dept_id", RightTable: "depts", RightCol: "id"}},
	}

	if err := Create(dir, def); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := Load(dir, "v")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Tables) != 2 || got.Joins[0].RightCol != "id" {
		t.Fatalf("got %+v", got)
	}

	if err := Create(dir, def); err == nil {
		t.Fatal("expected AlreadyExistsError on re-create")
	}

	if err := Drop(dir, "v"); err != nil {
		t.Fatalf("Drop: %v", err)
	}
	if _, err := Load(dir, "v"); err == nil {
		t.Fatal("expected NotFoundError after drop")
	}
}
