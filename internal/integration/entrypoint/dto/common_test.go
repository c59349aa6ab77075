package dto

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "two decimal places", input: "123.45", want: 12345},
		{name: "whole number", input: "100", want: 10000},
		{name: "one decimal place", input: "0.5", want: 50},
		{name: "zero", input: "0", want: 0},
		{name: "negative", input: "-12.34", want: -1234},
		{name: "three decimal places rejected", input: "1.234", wantErr: true},
		{name: "not a number rejected", input: "abc", wantErr: true},
		{name: "empty string rejected", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %d", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		input int64
		want  string
	}{
		{input: 12345, want: "123.45"},
		{input: 0, want: "0.00"},
		{input: -1234, want: "-12.34"},
		{input: 5, want: "0.05"},
	}

	for _, tt := range tests {
		if got := FormatAmount(tt.input); got != tt.want {
			t.Errorf("FormatAmount(%d): expected %q, got %q", tt.input, tt.want, got)
		}
	}
}
