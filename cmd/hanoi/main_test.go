package main

import (
	"bytes"
	"strings"
	"testing"
)

// execute runs the root command with args. Flag values stick between runs,
// so every call spells out the flags it depends on.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSolvePrintsMoves(t *testing.T) {
	out, err := execute(t, "solve", "--discs", "3", "--to", "3", "--count=false", "--difficulty", "")
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	want := []string{"1→3", "1→2", "3→2", "1→3", "2→1", "2→3", "1→3"}
	var got []string
	for _, line := range strings.Split(out, "\n") {
		if _, mv, ok := strings.Cut(strings.TrimSpace(line), ". "); ok {
			got = append(got, mv)
		}
	}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("moves = %v, want %v", got, want)
	}
	if !strings.Contains(out, "7 moves") {
		t.Errorf("missing move count header:\n%s", out)
	}
}

func TestSolveCount(t *testing.T) {
	out, err := execute(t, "solve", "--discs", "10", "--to", "2", "--count", "--difficulty", "")
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if strings.TrimSpace(out) != "1023" {
		t.Errorf("count = %q, want 1023", out)
	}
}

func TestGlobalFlagValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown difficulty", []string{"solve", "--discs", "3", "--difficulty", "nightmare"}},
		{"too many discs", []string{"solve", "--discs", "99", "--difficulty", ""}},
		{"bad log level", []string{"solve", "--discs", "3", "--difficulty", "", "--log-level", "loud"}},
		{"bad destination", []string{"solve", "--discs", "3", "--difficulty", "", "--log-level", "info", "--to", "4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Error("expected an error")
			}
		})
	}
	// Leave the flags valid for other tests
	execute(t, "solve", "--discs", "1", "--difficulty", "", "--log-level", "info", "--to", "3", "--count")
}

func TestListShowsVariants(t *testing.T) {
	out, err := execute(t, "list", "--difficulty", "", "--log-level", "info")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, want := range []string{"hanoi", "hanoi_relaxed", "Either of the last two rods wins"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
}
