package parser

import "testing"

func TestToNumber_ThousandsSeparator(t *testing.T) {
	t.Parallel()

	got := ToNumber("1,200")
	if got == nil || *got != 1200 {
		t.Fatalf("ToNumber(1,200) = %v, want 1200", got)
	}
}

func TestToNumber_EmptyIsNil(t *testing.T) {
	t.Parallel()

	if got := ToNumber(""); got != nil {
		t.Fatalf("ToNumber(\"\") = %v, want nil", *got)
	}
	if got := ToNumber("   "); got != nil {
		t.Fatalf("ToNumber(blank) = %v, want nil", *got)
	}
}

func TestToNumber_NonNumericIsNil(t *testing.T) {
	t.Parallel()

	if got := ToNumber("n/a"); got != nil {
		t.Fatalf("ToNumber(n/a) = %v, want nil", *got)
	}
}

func TestToText_TrimsWhitespace(t *testing.T) {
	t.Parallel()

	if got := ToText("  Acme Corp \n"); got != "Acme Corp" {
		t.Fatalf("ToText = %q", got)
	}
	if got := ToText(""); got != "" {
		t.Fatalf("ToText(\"\") = %q", got)
	}
}

func TestIsToBeHired(t *testing.T) {
	t.Parallel()

	if !IsToBeHired("TBH") {
		t.Fatalf("TBH should be to-be-hired")
	}
	if !IsToBeHired("tbh ") {
		t.Fatalf("tbh with trailing space should be to-be-hired")
	}
	if !IsToBeHired("TBH - Pending") {
		t.Fatalf("TBH - Pending should be to-be-hired")
	}
	if IsToBeHired("Thomas Becker") {
		t.Fatalf("plain name should not be to-be-hired")
	}
}

func TestHasNewMarker(t *testing.T) {
	t.Parallel()

	if !HasNewMarker("Acme New") {
		t.Fatalf("Acme New should carry the marker")
	}
	if !HasNewMarker("NEW customer") {
		t.Fatalf("marker match should be case-insensitive")
	}
	if HasNewMarker("Acme") {
		t.Fatalf("Acme should not carry the marker")
	}
}
