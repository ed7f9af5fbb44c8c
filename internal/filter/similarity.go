package filter

import "strings"

// charOverlap is the Jaccard index of the letter sets of a and b.
func charOverlap(a, b string) float64 {
	setA := letterSet(a)
	setB := letterSet(b)
	if len(setA) == 0 && len(setB) == 0 {
		return 1
	}
	inter := 0
	for r := range setA {
		if setB[r] {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	return float64(inter) / float64(union)
}

func letterSet(s string) map[rune]bool {
	set := make(map[rune]bool)
	for _, r := range strings.ToLower(s) {
		if r == '*' || r == '-' || r == ' ' {
			continue
		}
		set[r] = true
	}
	return set
}
