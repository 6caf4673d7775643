package domain

import (
	"math/rand/v2"
	"sort"
	"strings"
)

// SearchOptions configures a keyword search.
type SearchOptions struct {
	// InMeanings extends the substring match to the meaning field.
	InMeanings bool
}

// Search returns the records whose text (and optionally meaning) contains
// keyword, case-insensitively. An empty or whitespace-only keyword yields
// an empty result, never the full set. Relative order is preserved.
func Search(proverbs []Proverb, keyword string, opts SearchOptions) []Proverb {
	k := strings.ToLower(strings.TrimSpace(keyword))
	if k == "" {
		return nil
	}

	var results []Proverb
	for _, p := range proverbs {
		if strings.Contains(strings.ToLower(p.Text), k) {
			results = append(results, p)
			continue
		}
		if opts.InMeanings && strings.Contains(strings.ToLower(p.Meaning), k) {
			results = append(results, p)
		}
	}
	return results
}

// Categories returns the unique categories present in proverbs, sorted
// lexicographically. Blank categories count as DefaultCategory, matching
// what Normalize would have stored.
func Categories(proverbs []Proverb) []string {
	seen := make(map[string]struct{})
	for _, p := range proverbs {
		seen[normalCategory(p)] = struct{}{}
	}

	categories := make([]string, 0, len(seen))
	for c := range seen {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories
}

// FilterByCategory returns the records whose normalised category exactly
// equals category, preserving the input order.
func FilterByCategory(proverbs []Proverb, category string) []Proverb {
	var results []Proverb
	for _, p := range proverbs {
		if normalCategory(p) == category {
			results = append(results, p)
		}
	}
	return results
}

// Random picks one record uniformly. Callers must handle the empty set.
func Random(proverbs []Proverb) (Proverb, error) {
	if len(proverbs) == 0 {
		return Proverb{}, ErrEmptyCollection
	}
	return proverbs[rand.IntN(len(proverbs))], nil
}

// normalCategory applies the blank-category substitution to records that
// predate write-time normalisation.
func normalCategory(p Proverb) string {
	c := strings.TrimSpace(p.Category)
	if c == "" {
		return DefaultCategory
	}
	return c
}
