package course

import (
	"testing"

	"github.com/pkg/errors"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Status
		wantErr error
	}{
		{name: "canonical", raw: "ongoing", want: StatusOngoing},
		{name: "legacy admin Active", raw: "Active", want: StatusOngoing},
		{name: "legacy admin Draft", raw: "Draft", want: StatusDraft},
		{name: "student not_started", raw: "not_started", want: StatusNotStarted},
		{name: "student completed", raw: "completed", want: StatusCompleted},
		{name: "whitespace and case", raw: "  COMPLETED ", want: StatusCompleted},
		{name: "unknown literal", raw: "archived", wantErr: ErrUnknownStatus},
		{name: "empty", raw: "", wantErr: ErrUnknownStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(tt.raw)
			if errors.Cause(err) != tt.wantErr {
				t.Fatalf("ParseStatus(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseStatus(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
