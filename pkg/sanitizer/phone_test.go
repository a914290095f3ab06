package sanitizer

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "valid E.164 format",
			input: "+16502530000",
			want:  "+16502530000",
		},
		{
			name:  "with spaces and dashes",
			input: "+1 650-253-0000",
			want:  "+16502530000",
		},
		{
			name:  "national format uses default region",
			input: "(650) 253-0000",
			want:  "+16502530000",
		},
		{
			name:  "other country",
			input: "+44 20 7031 3000",
			want:  "+442070313000",
		},
		{
			name:  "leading and trailing spaces",
			input: "  +16502530000  ",
			want:  "+16502530000",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "unrecognized input is kept",
			input: " call me maybe ",
			want:  "call me maybe",
		},
		{
			name:  "too short is kept",
			input: "+1",
			want:  "+1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePhone(tt.input)
			if got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
