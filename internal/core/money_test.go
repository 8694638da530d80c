package core

import "testing"

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		minor int64
		want  string
	}{
		{250000, "2 500.00"},
		{5000, "50.00"},
		{99, "0.99"},
		{0, "0.00"},
		{1, "0.01"},
		{100, "1.00"},
		{99999, "999.99"},
		{100000, "1 000.00"},
		{-10050, "100.50"}, // absolute value
		{123456789, "1 234 567.89"},
		{100000000000, "1 000 000 000.00"},
	}
	for _, tc := range cases {
		if got := FormatAmount(tc.minor); got != tc.want {
			t.Fatalf("FormatAmount(%d) = %q, want %q", tc.minor, got, tc.want)
		}
	}
}

func TestGroupThousands(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"999", "999"},
		{"1000", "1 000"},
		{"12345", "12 345"},
		{"123456", "123 456"},
		{"1234567", "1 234 567"},
	}
	for _, tc := range cases {
		if got := groupThousands(tc.in); got != tc.want {
			t.Fatalf("groupThousands(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
