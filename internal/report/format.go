package report

import (
	"fmt"
	"strings"
)

// FormatIndian renders a value with Indian digit grouping (12,34,567.89)
// and parenthesized negatives, the convention statutory statements print
// in. Values are rounded to two decimals.
func FormatIndian(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%.2f", v)
	parts := strings.SplitN(s, ".", 2)
	grouped := groupIndian(parts[0])
	out := grouped + "." + parts[1]
	if neg {
		return "(" + out + ")"
	}
	return out
}

// FormatIndianWhole is FormatIndian without the decimal part, for counts
// such as numbers of shares.
func FormatIndianWhole(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	out := groupIndian(fmt.Sprintf("%.0f", v))
	if neg {
		return "(" + out + ")"
	}
	return out
}

// groupIndian inserts commas in the Indian pattern: the last three digits
// form one group, everything before groups in pairs.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}
