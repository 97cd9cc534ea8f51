package menu

import "testing"

func TestMatch(t *testing.T) {
	cfg := Default()
	cases := []struct {
		query string
		want  int
	}{
		{"1", 0},
		{"3", 2},
		{"power off", 2},
		{"root", 1},
		{"graph", 0},
	}
	for _, tc := range cases {
		got, err := Match(cfg, tc.query)
		if err != nil {
			t.Fatalf("Match(%q) error: %v", tc.query, err)
		}
		if got != tc.want {
			t.Fatalf("Match(%q) = %d, want %d", tc.query, got, tc.want)
		}
	}
}

func TestMatchErrors(t *testing.T) {
	cfg := Default()
	for _, query := range []string{"", "0", "4", "zzz"} {
		if _, err := Match(cfg, query); err == nil {
			t.Fatalf("expected error for %q", query)
		}
	}
}

func TestMatchAmbiguous(t *testing.T) {
	cfg := Config{Options: []Option{
		{Label: "shell a", Command: "a"},
		{Label: "shell b", Command: "b"},
	}}
	if _, err := Match(cfg, "shell"); err == nil {
		t.Fatalf("expected ambiguity error")
	}
}
