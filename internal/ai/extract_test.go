package ai

import (
	"errors"
	"testing"
)

func TestExtractVerdict(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		want         Verdict
		wantErr      bool
		wantFeedback string
	}{
		{
			name: "plain json",
			raw:  `{"matches": true, "feedback": "Gorgeous warm light!"}`,
			want: Verdict{Matches: true, Feedback: "Gorgeous warm light!"},
		},
		{
			name: "fenced json",
			raw:  "```json\n{\"matches\": false, \"feedback\": \"No sunset here.\"}\n```",
			want: Verdict{Matches: false, Feedback: "No sunset here."},
		},
		{
			name: "fence marker uppercase",
			raw:  "```JSON\n{\"matches\": true, \"feedback\": \"ok\"}\n```",
			want: Verdict{Matches: true, Feedback: "ok"},
		},
		{
			name: "truncated after feedback closing quote",
			raw:  `{"matches": true, "feedback": "Nice shot"`,
			want: Verdict{Matches: true, Feedback: "Nice shot"},
		},
		{
			name: "escaped quotes in feedback",
			raw:  `{"matches": false, "feedback": "Not \"golden\" enough"}`,
			want: Verdict{Matches: false, Feedback: `Not "golden" enough`},
		},
		{
			name: "fields buried in prose",
			raw:  `Sure! Here is my verdict: {"matches": true, "feedback": "Lovely"} hope that helps`,
			want: Verdict{Matches: true, Feedback: "Lovely"},
		},
		{
			name: "fields spread over lines",
			raw:  "{\"feedback\":\n\"spread over lines\"\n,\"matches\":\ntrue}",
			want: Verdict{Matches: true, Feedback: "spread over lines"},
		},
		{
			name:    "truncated mid feedback, fenced",
			raw:     "```json\n{\"matches\": false, \"feed",
			wantErr: true,
		},
		{
			name:    "no recognizable tokens",
			raw:     "I cannot judge this photo.",
			wantErr: true,
		},
		{
			name:    "empty",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "valid json but wrong field types",
			raw:     `{"matches": "yes", "feedback": 3}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractVerdict(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrNoVerdict) {
					t.Fatalf("ExtractVerdict() error = %v, want ErrNoVerdict", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractVerdict() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractVerdict() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// The loose pass must win over the strict parse: here the object as a whole
// is invalid JSON (trailing comma) but the two fields are intact.
func TestExtractVerdictLooseBeforeStrict(t *testing.T) {
	raw := `{"matches": true, "feedback": "ok", }`
	got, err := ExtractVerdict(raw)
	if err != nil {
		t.Fatalf("ExtractVerdict() error: %v", err)
	}
	if !got.Matches || got.Feedback != "ok" {
		t.Errorf("ExtractVerdict() = %+v", got)
	}
}
