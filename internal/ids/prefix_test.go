package ids

import "testing"

func TestMatchPrefix(t *testing.T) {
	values := []string{"2u3iutfd", "2a9k1111", "abc12345"}

	match, found, ambiguous := MatchPrefix(values, "ab")
	if !found || ambiguous || match != "abc12345" {
		t.Errorf("expected unique match, got %q found=%v ambiguous=%v", match, found, ambiguous)
	}

	_, found, ambiguous = MatchPrefix(values, "2")
	if !found || !ambiguous {
		t.Errorf("expected ambiguous match, got found=%v ambiguous=%v", found, ambiguous)
	}

	_, found, _ = MatchPrefix(values, "zz")
	if found {
		t.Error("expected no match")
	}

	_, found, _ = MatchPrefix(values, "")
	if found {
		t.Error("expected empty prefix to match nothing")
	}
}

func TestMatchPrefix_ExactWinsOverPrefix(t *testing.T) {
	values := []string{"abc", "abcdef"}

	match, found, ambiguous := MatchPrefix(values, "abc")
	if !found || ambiguous || match != "abc" {
		t.Errorf("expected exact match to win, got %q found=%v ambiguous=%v", match, found, ambiguous)
	}
}

func TestNormalizeUnique(t *testing.T) {
	got := NormalizeUnique([]string{"Abc", "", "ABC", "def"})
	if len(got) != 2 || got[0] != "abc" || got[1] != "def" {
		t.Errorf("expected [abc def], got %v", got)
	}
}

func TestUniquePrefixLengths(t *testing.T) {
	ids := []string{"2u3iutfd", "2a9k1111", "abc12345"}
	lengths := UniquePrefixLengths(ids)

	if got := lengths["2u3iutfd"]; got != 2 {
		t.Fatalf("expected 2u3iutfd prefix length 2, got %d", got)
	}
	if got := lengths["2a9k1111"]; got != 2 {
		t.Fatalf("expected 2a9k1111 prefix length 2, got %d", got)
	}
	if got := lengths["abc12345"]; got != 1 {
		t.Fatalf("expected abc12345 prefix length 1, got %d", got)
	}
}
