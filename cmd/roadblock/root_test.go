package main

import "testing"

func TestParseGridSideRejectsTooSmallOrNonNumeric(t *testing.T) {
	cases := []string{"2", "0", "-5", "abc", ""}
	for _, c := range cases {
		if _, err := parseGridSide(c); err == nil {
			t.Errorf("parseGridSide(%q): expected error, got none", c)
		}
	}
}

func TestParseGridSideAcceptsValidSide(t *testing.T) {
	side, err := parseGridSide("32")
	if err != nil {
		t.Fatalf("parseGridSide(\"32\"): unexpected error: %v", err)
	}
	if side != 32 {
		t.Fatalf("parseGridSide(\"32\") = %d, want 32", side)
	}
}

func TestNewRootCmdRequiresExactlyFourArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"tech", "design.json"})
	cmd.SilenceErrors = true
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error for too few positional arguments")
	}
}
