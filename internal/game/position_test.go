package game

import "testing"

func TestPositionString(t *testing.T) {
	cases := []struct {
		pos  Position
		want string
	}{
		{Position{X: -4.75, Y: -2.04}, "-4.75,-2.04"},
		{Position{X: 0, Y: 0}, "0.00,0.00"},
		{Position{X: 10.5, Y: 3.256}, "10.50,3.26"},
	}

	for _, tc := range cases {
		if got := tc.pos.String(); got != tc.want {
			t.Errorf("Position%v.String() = %q, want %q", tc.pos, got, tc.want)
		}
	}
}

func TestParsePosition(t *testing.T) {
	pos, err := ParsePosition("-4.75,-2.04")
	if err != nil {
		t.Fatalf("ParsePosition() failed: %v", err)
	}
	if pos.X != -4.75 || pos.Y != -2.04 {
		t.Errorf("Expected (-4.75, -2.04), got %v", pos)
	}
}

func TestParsePositionRoundTrip(t *testing.T) {
	orig := Position{X: 12.34, Y: -56.78}
	parsed, err := ParsePosition(orig.String())
	if err != nil {
		t.Fatalf("round trip parse failed: %v", err)
	}
	if parsed != orig {
		t.Errorf("Round trip changed position: %v -> %v", orig, parsed)
	}
}

func TestParsePositionMalformed(t *testing.T) {
	cases := []string{
		"",
		"1.0",
		"1,2,3",
		"a,b",
		"1.0,",
		",2.0",
		"garbage",
	}

	for _, input := range cases {
		if _, err := ParsePosition(input); err == nil {
			t.Errorf("ParsePosition(%q): expected error, got nil", input)
		}
	}
}
