package dates

// Tier is the urgency classification of a day offset.
type Tier string

const (
	TierOverdue Tier = "overdue"
	TierWarn    Tier = "warn"
	TierNormal  Tier = "normal"
	TierUnknown Tier = "unknown"
)

// TierFor classifies a day offset against a warn threshold. ok=false (no
// source date) is neutral, never zero and never an error.
func TierFor(days int, ok bool, warnThreshold int) Tier {
	switch {
	case !ok:
		return TierUnknown
	case days < 0:
		return TierOverdue
	case days <= warnThreshold:
		return TierWarn
	default:
		return TierNormal
	}
}
