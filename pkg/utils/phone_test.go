package utils

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain local number gets country code", "11987654321", "5511987654321"},
		{"already prefixed stays unchanged", "5511987654321", "5511987654321"},
		{"formatting characters are stripped", "(11) 98765-4321", "5511987654321"},
		{"plus prefix is stripped", "+55 11 98765-4321", "5511987654321"},
		{"prefix is never doubled", "55 (11) 98765-4321", "5511987654321"},
		{"empty input stays empty", "", ""},
		{"no digits yields empty", "abc-", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePhone(tt.in); got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
