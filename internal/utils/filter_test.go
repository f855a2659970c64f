package utils

import "testing"

func TestIsSingleWord(t *testing.T) {
	testCases := []struct {
		input    string
		expected bool
	}{
		{"hello", true},
		{"  hello  ", true},
		{"", true},
		{"hello world", false},
		{"hello   world", false},
		{"abc 123", false},
		{"a1b2", true},
		{"a, b", true},
		{"hello\tworld", false},
		{"don't", true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			if got := IsSingleWord(tc.input); got != tc.expected {
				t.Errorf("IsSingleWord(%q): expected %v, got %v", tc.input, tc.expected, got)
			}
		})
	}
}

func TestStripNonAlphabet(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"hello", "hello"},
		{" he!!o ", "heo"},
		{"123", ""},
		{"naïve", "nave"},
		{"Mixed Case", "Mixed Case"},
	}

	for _, tc := range testCases {
		if got := StripNonAlphabet(tc.input); got != tc.expected {
			t.Errorf("StripNonAlphabet(%q): expected %q, got %q", tc.input, tc.expected, got)
		}
	}
}

func TestCreateRankList(t *testing.T) {
	ranks := CreateRankList(3)
	if len(ranks) != 3 || ranks[0] != 1 || ranks[2] != 3 {
		t.Errorf("unexpected ranks %v", ranks)
	}
	if len(CreateRankList(0)) != 0 {
		t.Error("expected no ranks for count 0")
	}
}
