package domain

// MonthNames is the ordered list of English month names used by every
// period-scoped record. Periods on the wire are always a (month name, year) pair.
var MonthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// IsMonthName reports whether s is one of the twelve English month names.
func IsMonthName(s string) bool {
	for _, m := range MonthNames {
		if m == s {
			return true
		}
	}
	return false
}

// QuarterMonths returns the three month names of quarter q (1..4).
// It returns nil for an out-of-range quarter.
func QuarterMonths(q int) []string {
	if q < 1 || q > 4 {
		return nil
	}
	start := (q - 1) * 3
	return []string{MonthNames[start], MonthNames[start+1], MonthNames[start+2]}
}
