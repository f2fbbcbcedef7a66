package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCalcPrintsBreakdown(t *testing.T) {
	out, _, err := runCLI(t, "calc", "--units", "5", "--rate", "200", "--deduction", "50", "--bonus", "100", "--log-level", "error")
	if err != nil {
		t.Fatalf("calc: %v", err)
	}
	for _, want := range []string{"Gross salary", "1000.00", "1050.00", "Tax (13%)", "136.50", "913.50"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestCalcRejectsNegative(t *testing.T) {
	_, _, err := runCLI(t, "calc", "--units", "-1", "--rate", "100", "--log-level", "error")
	if err == nil || !strings.Contains(err.Error(), "invalid values") {
		t.Fatalf("expected invalid values error, got %v", err)
	}
}

func TestCalcRequiresUnitsAndRate(t *testing.T) {
	if _, _, err := runCLI(t, "calc", "--units", "1"); err == nil {
		t.Fatal("expected missing --rate to fail")
	}
}

func TestCalcRejectsNonNumeric(t *testing.T) {
	if _, _, err := runCLI(t, "calc", "--units", "1", "--rate", "abc"); err == nil {
		t.Fatal("expected non-numeric rate to fail")
	}
}

func TestCalcWritesPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	out, _, err := runCLI(t, "calc", "--units", "10", "--rate", "100", "--pdf", path, "--log-level", "error")
	if err != nil {
		t.Fatalf("calc: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("expected PDF file")
	}
	if !strings.Contains(out, "870.00") {
		t.Fatalf("expected net 870.00 in output:\n%s", out)
	}
}

func TestCalcWarnsOnNegativeTaxable(t *testing.T) {
	_, stderr, err := runCLI(t, "calc", "--units", "1", "--rate", "1", "--deduction", "10", "--log-level", "error")
	if err != nil {
		t.Fatalf("calc: %v", err)
	}
	if !strings.Contains(stderr, "warning") {
		t.Fatalf("expected warning on stderr, got %q", stderr)
	}
}
