package bettrack

import "testing"

func TestMoneyArithmetic(t *testing.T) {
	a := M(100, "PLN")
	b := M(40.5, "PLN")

	if got := a.Add(b); !got.Equal(M(140.5, "PLN")) {
		t.Errorf("Add = %s", got)
	}
	if got := a.Sub(b); !got.Equal(M(59.5, "PLN")) {
		t.Errorf("Sub = %s", got)
	}
	if got := a.Neg(); !got.Equal(M(-100, "PLN")) {
		t.Errorf("Neg = %s", got)
	}
}

func TestMoneyWeakCurrency(t *testing.T) {
	// the zero Money carries no currency and adopts the other operand's one.
	var zero Money
	got := zero.Add(M(10, "PLN"))
	if got.Currency() != "PLN" {
		t.Errorf("Currency() = %q, want PLN", got.Currency())
	}
	if !got.Equal(M(10, "PLN")) {
		t.Errorf("Add = %s, want 10 PLN", got)
	}
}

func TestParseMoney(t *testing.T) {
	testCases := []struct {
		in      string
		wantErr bool
	}{
		{in: "12.50"},
		{in: "-3"},
		{in: "0"},
		{in: "twelve", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			_, err := ParseMoney(tc.in, "PLN")
			if tc.wantErr != (err != nil) {
				t.Fatalf("ParseMoney(%q) error = %v, wantErr=%t", tc.in, err, tc.wantErr)
			}
		})
	}
}

func TestMoneySignedString(t *testing.T) {
	if got := M(0, "PLN").SignedString(); got != "-" {
		t.Errorf("zero SignedString = %q, want %q", got, "-")
	}
	if got := M(5, "PLN").SignedString(); got[0] != '+' {
		t.Errorf("positive SignedString = %q, want a leading +", got)
	}
}

func TestPercentEqual(t *testing.T) {
	if !Percent(33.33333).Equal(Percent(100.0 / 3)) {
		t.Error("percents within precision should be equal")
	}
	if Percent(33.3).Equal(Percent(33.4)) {
		t.Error("percents apart should not be equal")
	}
}

func TestPercentString(t *testing.T) {
	if got := Percent(100.0 / 3).String(); got != "33.33%" {
		t.Errorf("String = %q, want %q", got, "33.33%")
	}
	if got := Percent(0).SignedString(); got != "-" {
		t.Errorf("zero SignedString = %q, want %q", got, "-")
	}
}
