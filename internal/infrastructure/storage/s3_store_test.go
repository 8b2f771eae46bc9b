package storage

import "testing"

func TestQuoteFileKey(t *testing.T) {
	got := QuoteFileKey("tpa-1", "emp-1", "sub-1", "census.csv")
	want := "submissions/tpa-1/emp-1/sub-1/census.csv"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestQuoteFileKey_PreservesSegmentsVerbatim(t *testing.T) {
	// The key is consumed by storage prefix policies, so segments must
	// never be normalized or re-encoded.
	got := QuoteFileKey("TPA One", "emp_1", "sub-1", "My Census (v2).xlsx")
	want := "submissions/TPA One/emp_1/sub-1/My Census (v2).xlsx"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
