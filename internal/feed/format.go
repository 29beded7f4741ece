package feed

import "strconv"

// FormatCount renders counters the way cards show them: 1532 -> "1.5k".
func FormatCount(n int) string {
	if n >= 1000 {
		return strconv.FormatFloat(float64(n)/1000, 'f', 1, 64) + "k"
	}
	return strconv.Itoa(n)
}
