package inline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// 🧪 TestSeverityString tests severity rendering
func TestSeverityString(t *testing.T) {
	assert.Equal(t, "error", SeverityError.String(), "error severity should render as error")
	assert.Equal(t, "warning", SeverityWarning.String(), "warning severity should render as warning")
}

// 🧪 TestResultHasErrors tests the verdict signal on results
func TestResultHasErrors(t *testing.T) {
	tests := []struct {
		name        string
		result      Result
		want        bool
		description string
	}{
		{
			name:        "no_diagnostics",
			result:      Result{File: "main.js"},
			want:        false,
			description: "clean result should carry no errors",
		},
		{
			name: "only_warnings",
			result: Result{
				File:        "main.js",
				Diagnostics: []Diagnostic{Warningf("missing translation for %q", "greeting")},
			},
			want:        false,
			description: "warnings alone should not flip the verdict",
		},
		{
			name: "error_among_warnings",
			result: Result{
				File: "main.js",
				Diagnostics: []Diagnostic{
					Warningf("missing translation for %q", "greeting"),
					Errorf("writing %s: disk full", "de/main.js"),
				},
			},
			want:        true,
			description: "a single error should be detected among warnings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.HasErrors(), tt.description)
		})
	}
}

// 🧪 TestDiagnosticHelpers tests the severity constructors
func TestDiagnosticHelpers(t *testing.T) {
	d := Errorf("inlining %s: %s", "main.js", "boom")
	assert.Equal(t, SeverityError, d.Severity, "Errorf should produce error severity")
	assert.Equal(t, "inlining main.js: boom", d.Message, "Errorf should format the message")

	w := Warningf("no source map for %s", "vendor.js")
	assert.Equal(t, SeverityWarning, w.Severity, "Warningf should produce warning severity")
	assert.Equal(t, "no source map for vendor.js", w.Message, "Warningf should format the message")
}
