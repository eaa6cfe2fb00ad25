package book

import "strconv"

// MaxRating is the ceiling applied to submitted ratings.
const MaxRating = "9.9"

/* Ratings arrive as free-form strings from HTML forms. The only rule is a
 * ceiling: anything whose leading integer part is 10 or more is replaced
 * with 9.9. Values that do not start with a number pass through untouched
 * and are stored as submitted.
 */

// ClampRating applies the rating ceiling to a submitted value.
func ClampRating(rating string) string {
	if n, ok := leadingInt(rating); ok && n >= 10 {
		return MaxRating
	}
	return rating
}

// leadingInt parses the integer prefix of s, e.g. "10.5" -> 10.
func leadingInt(s string) (int, bool) {
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return 0, false
	}
	n, err := strconv.Atoi(s[:j])
	if err != nil {
		return 0, false
	}
	return n, true
}
