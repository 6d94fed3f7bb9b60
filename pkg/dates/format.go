package dates

import (
	"fmt"
	"strings"
	"time"
)

// RelativeDays renders a day offset as a short human label: "today",
// "tomorrow", "yesterday", "in 3d", "2d ago". ok=false renders an em dash.
func RelativeDays(days int, ok bool) string {
	switch {
	case !ok:
		return "—"
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days == -1:
		return "yesterday"
	case days > 0:
		return fmt.Sprintf("in %dd", days)
	default:
		return fmt.Sprintf("%dd ago", -days)
	}
}

// FormatDate renders a date as "Jan 2, 2006"; nil renders an em dash.
func FormatDate(d *time.Time) string {
	if d == nil {
		return "—"
	}
	return d.Format("Jan 2, 2006")
}

// FormatCurrency renders an amount as en-US USD, e.g. "$1,234.56".
func FormatCurrency(amount *float64) string {
	if amount == nil {
		return "—"
	}
	v := *amount
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	cents := int64(v*100 + 0.5)
	return fmt.Sprintf("%s$%s.%02d", sign, groupThousands(fmt.Sprintf("%d", cents/100)), cents%100)
}

func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
