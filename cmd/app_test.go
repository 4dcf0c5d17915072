package cmd

import "testing"

func TestEnvOr(t *testing.T) {
	t.Setenv("BT_TEST_KEY", "from-env")
	if got := envOr("BT_TEST_KEY", "fallback"); got != "from-env" {
		t.Errorf("envOr = %q, want %q", got, "from-env")
	}
	if got := envOr("BT_TEST_KEY_MISSING", "fallback"); got != "fallback" {
		t.Errorf("envOr = %q, want %q", got, "fallback")
	}
}

func TestParseOdds(t *testing.T) {
	odds, err := parseOdds("1.857")
	if err != nil {
		t.Fatal(err)
	}
	if odds.String() != "1.857" {
		t.Errorf("parseOdds = %s, want 1.857", odds)
	}
	if _, err := parseOdds("not a number"); err == nil {
		t.Error("parseOdds accepted garbage")
	}
}
