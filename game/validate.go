package game

// ValidNumber reports whether a candidate secret or guess is exactly 4
// decimal digits with no repeats. Every number entering the engine goes
// through this check.
func ValidNumber(number string) bool {
	if len(number) != 4 {
		return false
	}
	var seen [10]bool
	for i := 0; i < len(number); i++ {
		c := number[i]
		if c < '0' || c > '9' {
			return false
		}
		d := c - '0'
		if seen[d] {
			return false
		}
		seen[d] = true
	}
	return true
}
