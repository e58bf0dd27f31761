// pkg/cli/shell_test.go
package cli

import (
	"strings"
	"testing"
)

func TestFindTerminator(t *testing.T) {
	cases := []struct {
		line string
		want terminator
	}{
		{"select * from t /g", termGo},
		{`select * from t \g`, termGo},
		{"select * from t /p", termPrint},
		{"/q", termQuit},
		{`\q`, termQuit},
		{"select * from t", termNone},
		{`select * from t where name = '/g'`, termNone},
	}
	for _, c := range cases {
		got, _ := findTerminator(c.line)
		if got != c.want {
			t.Errorf("findTerminator(%q) = %v, want %v", c.line, got, c.want)
		}
	}
}

func TestReadStatementAccumulatesUntilGo(t *testing.T) {
	input := strings.NewReader("select *\nfrom t /g\n")
	var out strings.Builder
	sh := NewShell(input, &out)

	text, quit, eof := sh.ReadStatement()
	if quit || eof {
		t.Fatalf("unexpected quit=%v eof=%v", quit, eof)
	}
	if text != "select *\nfrom t " {
		t.Fatalf("got %q", text)
	}
}

func TestReadStatementQuit(t *testing.T) {
	input := strings.NewReader("/q\n")
	var out strings.Builder
	sh := NewShell(input, &out)

	_, quit, _ := sh.ReadStatement()
	if !quit {
		t.Fatal("expected quit")
	}
}

func TestReadStatementPrintKeepsCollecting(t *testing.T) {
	input := strings.NewReader("select * /p\nfrom t /g\n")
	var out strings.Builder
	sh := NewShell(input, &out)

	text, quit, eof := sh.ReadStatement()
	if quit || eof {
		t.Fatalf("unexpected quit=%v eof=%v", quit, eof)
	}
	if text != "select * \nfrom t " {
		t.Fatalf("got %q", text)
	}
	if !strings.Contains(out.String(), "select *") {
		t.Fatalf("expected reprint in output, got %q", out.String())
	}
}
