package utils

import "testing"

func TestFormatDocumentNumber(t *testing.T) {
	if got := FormatDocumentNumber(PrefixQuote, 2026, 42); got != "DEV-2026-0042" {
		t.Errorf("FormatDocumentNumber = %q, want DEV-2026-0042", got)
	}
	if got := FormatDocumentNumber(PrefixOrder, 2026, 12345); got != "CMD-2026-12345" {
		t.Errorf("FormatDocumentNumber = %q, want CMD-2026-12345", got)
	}
}

func TestParseDocumentNumber(t *testing.T) {
	parsed, err := ParseDocumentNumber("BR-2026-0007")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.Prefix != "BR" || parsed.Year != 2026 || parsed.Sequence != 7 {
		t.Fatalf("parsed = %+v", parsed)
	}

	for _, bad := range []string{"", "CMD", "CMD-26-0001", "CMD-2026-0", "-2026-0001", "CMD-abcd-0001"} {
		if _, err := ParseDocumentNumber(bad); err == nil {
			t.Errorf("ParseDocumentNumber(%q) should fail", bad)
		}
	}
}
