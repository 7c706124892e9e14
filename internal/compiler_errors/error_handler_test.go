package compiler_errors

import (
	"bytes"
	"strings"
	"testing"
)

func TestCompilerErrorHandler_Accumulates(t *testing.T) {
	eh := NewErrorHandler()
	if eh.HasErrors() {
		t.Fatal("new handler should have no errors")
	}

	eh.AddError(Message("first"))
	eh.AddError(Message("second"))
	eh.AddWarning(Message("careful"))

	if got := Messages(eh.Errors()); len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Errorf("Errors() = %v, want [first second]", got)
	}
	if got := Messages(eh.Warnings()); len(got) != 1 || got[0] != "careful" {
		t.Errorf("Warnings() = %v, want [careful]", got)
	}
	if !eh.HasErrors() {
		t.Error("HasErrors() = false, want true")
	}
}

func TestLatchedErrorHandler_FirstErrorWins(t *testing.T) {
	eh := NewLatchedErrorHandler()
	if eh.Errors() != nil {
		t.Fatalf("Errors() = %v, want nil", eh.Errors())
	}

	eh.AddError(Message("first"))
	eh.AddError(Message("second"))

	got := Messages(eh.Errors())
	if len(got) != 1 || got[0] != "first" {
		t.Errorf("Errors() = %v, want [first]", got)
	}
}

func TestReport(t *testing.T) {
	tests := []struct {
		name     string
		errors   []string
		warnings []string
		want     []string
		notWant  []string
	}{
		{
			name:     "warnings only",
			warnings: []string{"missing marker"},
			want:     []string{"WARNING: missing marker"},
			notWant:  []string{"Build failed"},
		},
		{
			name:   "errors",
			errors: []string{"bad token"},
			want:   []string{"Build failed with errors:", "ERROR: bad token"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eh := NewErrorHandler()
			for _, e := range tt.errors {
				eh.AddError(Message(e))
			}
			for _, w := range tt.warnings {
				eh.AddWarning(Message(w))
			}

			var buf bytes.Buffer
			eh.Report(&buf)
			out := buf.String()

			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("report %q missing %q", out, w)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(out, w) {
					t.Errorf("report %q should not contain %q", out, w)
				}
			}
		})
	}
}
