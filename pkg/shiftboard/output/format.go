package output

import (
	"fmt"
	"math"
)

// Placeholder is printed for absent values.
const Placeholder = "-"

// FormatMinutesHMS renders minutes as "HH:MM:SS". Negative values clamp to zero.
func FormatMinutesHMS(minutes *float64) string {
	secs, ok := totalSeconds(minutes)
	if !ok {
		return Placeholder
	}
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}

// FormatMinutesCompact renders minutes as "HH:MM:SS" from one hour up,
// "MM:SS" from one minute up and "Ns" below that.
func FormatMinutesCompact(minutes *float64) string {
	secs, ok := totalSeconds(minutes)
	if !ok {
		return Placeholder
	}
	h, m, s := secs/3600, (secs%3600)/60, secs%60
	switch {
	case h > 0:
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	case m > 0:
		return fmt.Sprintf("%02d:%02d", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// FormatPercent renders a percent with one decimal and a decimal comma.
func FormatPercent(p *float64) string {
	if p == nil || math.IsNaN(*p) || math.IsInf(*p, 0) {
		return Placeholder
	}
	return decimalComma(fmt.Sprintf("%.1f%%", *p))
}

func totalSeconds(minutes *float64) (int64, bool) {
	if minutes == nil || math.IsNaN(*minutes) || math.IsInf(*minutes, 0) {
		return 0, false
	}
	return int64(math.Max(0, math.Round(*minutes*60))), true
}

func decimalComma(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] == '.' {
			b[i] = ','
		}
	}
	return string(b)
}
