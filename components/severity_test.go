package components

import "testing"

func TestSeverityFrom(t *testing.T) {
	tests := []struct {
		level string
		want  Severity
	}{
		{"ERROR", SeverityError},
		{"error", SeverityError},
		{"Error", SeverityError},
		{"FATAL", SeverityError},
		{"Fatal", SeverityError},
		{"WARNING", SeverityWarning},
		{"warning", SeverityWarning},
		{"SUCCESS", SeveritySuccess},
		{"success", SeveritySuccess},
		{"INFO", SeverityInfo},
		{"", SeverityInfo},
		{"xyz", SeverityInfo},
		{"warn", SeverityInfo},
		{" ERROR", SeverityInfo},
	}

	for _, tt := range tests {
		if got := SeverityFrom(tt.level); got != tt.want {
			t.Errorf("SeverityFrom(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestSeverityCSSClass(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityError, "alert-error"},
		{SeveritySuccess, "alert-success"},
		{SeverityInfo, "alert-info"},
		{SeverityWarning, "alert-block"},
	}

	for _, tt := range tests {
		if got := tt.severity.CSSClass(); got != tt.want {
			t.Errorf("%v.CSSClass() = %q, want %q", tt.severity, got, tt.want)
		}
	}
}

func TestSeverityString(t *testing.T) {
	if SeverityWarning.String() != "Warning" {
		t.Errorf("expected 'Warning', got %q", SeverityWarning.String())
	}
	if Severity(42).String() != "Info" {
		t.Errorf("expected out of range severity to report 'Info', got %q", Severity(42).String())
	}
}
