package utils

import "testing"

func TestParseID(t *testing.T) {
	tests := []struct {
		input  string
		want   int64
		wantOK bool
	}{
		{"1", 1, true},
		{" 42 ", 42, true},
		{"", 0, false},
		{"0", 0, false},
		{"-3", 0, false},
		{"abc", 0, false},
		{"1.5", 0, false},
		{"99999999999999999999", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseID(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseID(%q) = (%d, %v), want (%d, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 1},
		{"4", 4},
		{"0", 1},
		{"x", 1},
	}

	for _, tt := range tests {
		if got := ParseInt(tt.input, 1); got != tt.want {
			t.Errorf("ParseInt(%q, 1) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestIsRequestID(t *testing.T) {
	if !IsRequestID(GenerateRequestID()) {
		t.Error("generated id should be accepted")
	}
	if IsRequestID("not-a-uuid") {
		t.Error("arbitrary text should be rejected")
	}
	if IsRequestID("") {
		t.Error("empty id should be rejected")
	}
}
