package sanitizer

import (
	"reflect"
	"strings"
	"testing"
)

func TestNormalizeStringSlice(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "trim whitespace",
			input: []string{" kafka-1:9092 ", "  kafka-2:9092  "},
			want:  []string{"kafka-1:9092", "kafka-2:9092"},
		},
		{
			name:  "remove duplicates after normalization",
			input: []string{"kafka:9092", " kafka:9092"},
			want:  []string{"kafka:9092"},
		},
		{
			name:  "filter empty strings",
			input: []string{"a", "", "  ", "b"},
			want:  []string{"a", "b"},
		},
		{
			name:  "nil input",
			input: nil,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeStringSlice(tt.input, strings.TrimSpace)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeStringSlice(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
