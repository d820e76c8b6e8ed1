package debug_test

import (
	"strings"
	"testing"

	"uicss/utils/debug"
)

func TestTreeWriter(t *testing.T) {
	tw := debug.NewTreeWriter()

	tw.Line(0, "nodes (%d):", 2)
	tw.Line(1, "button#go")
	tw.Field(2, "state", "hover state")
	tw.Field(2, "matches", 3)
	tw.List(1, "classes", []string{"primary", "large"})
	tw.List(1, "empty", nil)

	got := tw.String()
	want := strings.Join([]string{
		"nodes (2):",
		"  button#go",
		`    state: "hover state"`,
		"    matches: 3",
		"  classes: primary, large",
		"",
	}, "\n")
	if got != want {
		t.Errorf("output:\n%q\nwant:\n%q", got, want)
	}
}

func TestTreeWriter_EmptyStringValue(t *testing.T) {
	tw := debug.NewTreeWriter()
	tw.Field(0, "id", "")
	if got := tw.String(); got != "id: \n" {
		t.Errorf("output = %q", got)
	}
}
