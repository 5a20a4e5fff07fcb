package extract

import "strings"

// LocateColumn returns the index of the header whose trimmed text
// equals label (also trimmed). Matching is exact, never substring.
// Returns -1 when no header matches.
func LocateColumn(headers []string, label string) int {
	want := strings.TrimSpace(label)
	for i, h := range headers {
		if strings.TrimSpace(h) == want {
			return i
		}
	}
	return -1
}

// Cell returns the trimmed cell at index i, or "" when the row is too
// short or the index is negative.
func Cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
