package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrinter_RoutesNoticesToErrWriter(t *testing.T) {
	var out, errBuf bytes.Buffer
	p := NewPrinterWithWriters(&out, &errBuf, false)

	p.Print("plain %d", 1)
	p.Success("done")
	p.Warning("careful")
	p.Error("broken")

	if !strings.Contains(out.String(), "plain 1") {
		t.Errorf("Print must go to out, got %q", out.String())
	}
	if !strings.Contains(out.String(), "[OK] done") {
		t.Errorf("Success must go to out, got %q", out.String())
	}
	if !strings.Contains(errBuf.String(), "[WARN] careful") {
		t.Errorf("Warning must go to err, got %q", errBuf.String())
	}
	if !strings.Contains(errBuf.String(), "[ERROR] broken") {
		t.Errorf("Error must go to err, got %q", errBuf.String())
	}
}

func TestPrinter_HeaderUnderlinesTitle(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinterWithWriters(&out, &out, false)

	p.Header("Orders")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected title and underline, got %q", out.String())
	}
	if lines[0] != "Orders" {
		t.Errorf("expected title line, got %q", lines[0])
	}
	if len([]rune(lines[1])) != len("Orders") {
		t.Errorf("underline must match the title length, got %q", lines[1])
	}
}

func TestTable_RendersHeadersAndRows(t *testing.T) {
	var out bytes.Buffer
	table := NewTable(&out, []string{"ID", "Name"})
	table.AddRow([]string{"p1", "Milk"})
	table.AddRow([]string{"p2", "Bread"})
	table.Render()

	got := out.String()
	for _, want := range []string{"ID", "Name", "p1", "Milk", "p2", "Bread"} {
		if !strings.Contains(got, want) {
			t.Errorf("table output missing %q:\n%s", want, got)
		}
	}
}
