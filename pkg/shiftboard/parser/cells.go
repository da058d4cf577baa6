package parser

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/shiftboard-go/pkg/shiftboard/models"
)

var (
	floatPrefixRe = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)
	intPrefixRe   = regexp.MustCompile(`^[+-]?\d+`)
	clockRe       = regexp.MustCompile(`^(-?\d+):(\d{1,2})(?::(\d{1,2}))?$`)
	minSecRe      = regexp.MustCompile(`^(\d+):(\d{1,2})$`)
	legacyMinSec  = regexp.MustCompile(`^(\d+)[,.](\d{2})$`)
	dateRe        = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)
)

// ParseNumber converts a pt-BR formatted cell ("1.234,5") to a number.
// Dots are thousands separators and the first comma is the decimal point.
// Numeric cells are returned as is. Returns nil when nothing parses.
func ParseNumber(v models.Cell) *float64 {
	if f, ok := numericCell(v); ok {
		return finite(f)
	}
	s := strings.TrimSpace(cellText(v))
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)
	return parseFloatPrefix(s)
}

// ParsePercent converts a percent cell ("87,5%") to a plain percent value (87.5).
// Returns nil when nothing parses.
func ParsePercent(v models.Cell) *float64 {
	if f, ok := numericCell(v); ok {
		return finite(f)
	}
	s := strings.TrimSpace(cellText(v))
	if s == "" {
		return nil
	}
	s = strings.Replace(s, "%", "", 1)
	s = strings.Replace(s, ",", ".", 1)
	return parseFloatPrefix(strings.TrimSpace(s))
}

// ParseHMS converts an "HH:MM:SS" cell to fractional hours.
// Empty or malformed input yields 0, never an absent value.
func ParseHMS(v models.Cell) float64 {
	if _, ok := numericCell(v); ok {
		return 0
	}
	s := strings.TrimSpace(cellText(v))
	if s == "" {
		return 0
	}
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0
	}
	hours := parseIntPrefix(parts[0])
	minutes := parseIntPrefix(parts[1])
	seconds := parseIntPrefix(parts[2])
	total := float64(hours) + float64(minutes)/60 + float64(seconds)/3600
	if math.IsNaN(total) || math.IsInf(total, 0) {
		return 0
	}
	return total
}

// ParseHours converts an hours cell written as "H:MM", "H:MM:SS" or a plain
// pt-BR number. Minutes and seconds are clamped to [0,59] and the result to >= 0.
// Returns nil when nothing parses.
func ParseHours(v models.Cell) *float64 {
	if f, ok := numericCell(v); ok {
		if p := finite(f); p != nil {
			return ptr(math.Max(0, *p))
		}
		return nil
	}
	s := strings.TrimSpace(cellText(v))
	if s == "" {
		return nil
	}
	if m := clockRe.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		mins, _ := strconv.Atoi(m[2])
		secs := 0
		if m[3] != "" {
			secs, _ = strconv.Atoi(m[3])
		}
		total := float64(h) + float64(clampInt(mins, 0, 59))/60 + float64(clampInt(secs, 0, 59))/3600
		return ptr(math.Max(0, total))
	}
	if n := ParseNumber(s); n != nil {
		return ptr(math.Max(0, *n))
	}
	return nil
}

// attempt is one format tried by a multi-format parser.
type attempt func(s string) (float64, bool)

// cycleTimeAttempts are tried in order; the first strictly positive result wins.
var cycleTimeAttempts = []attempt{
	hmsMinutes,
	minutesSeconds,
	legacyMinutesSeconds,
	plainMinutes,
}

// ParseCycleMinutes converts a cycle-time cell to minutes per piece.
// Accepted formats, in priority order: "HH:MM:SS", "M:SS", legacy "M,SS"/"M.SS",
// and a plain decimal number of minutes. Returns nil if all of them fail.
func ParseCycleMinutes(v models.Cell) *float64 {
	if f, ok := numericCell(v); ok {
		if f > 0 && !math.IsInf(f, 0) {
			return ptr(f)
		}
		return nil
	}
	s := strings.TrimSpace(cellText(v))
	if s == "" {
		return nil
	}
	return firstPositive(s, cycleTimeAttempts)
}

func firstPositive(s string, attempts []attempt) *float64 {
	for _, try := range attempts {
		if f, ok := try(s); ok && f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f) {
			return ptr(f)
		}
	}
	return nil
}

func hmsMinutes(s string) (float64, bool) {
	hours := ParseHMS(s)
	if hours <= 0 {
		return 0, false
	}
	return hours * 60, true
}

func minutesSeconds(s string) (float64, bool) {
	m := minSecRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	mins, _ := strconv.Atoi(m[1])
	secs, _ := strconv.Atoi(m[2])
	return float64(mins) + float64(secs)/60, true
}

func legacyMinutesSeconds(s string) (float64, bool) {
	m := legacyMinSec.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	mins, _ := strconv.Atoi(m[1])
	secs, _ := strconv.Atoi(m[2])
	if secs > 59 {
		return 0, false
	}
	return float64(mins) + float64(secs)/60, true
}

func plainMinutes(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ParseDate parses a strict "dd/mm/yyyy" cell into a calendar date.
// Any other shape, or an impossible day such as 31/02, yields nil.
func ParseDate(v models.Cell) *models.Date {
	s := strings.TrimSpace(cellText(v))
	m := dateRe.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	dd, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	yyyy, _ := strconv.Atoi(m[3])
	if mm < 1 || mm > 12 || dd < 1 {
		return nil
	}
	t := time.Date(yyyy, time.Month(mm), dd, 0, 0, 0, 0, time.UTC)
	if t.Day() != dd || int(t.Month()) != mm {
		return nil
	}
	return &models.Date{Year: yyyy, Month: time.Month(mm), Day: dd}
}

// cellText renders a raw cell as text. Nil yields "".
func cellText(v models.Cell) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	default:
		return ""
	}
}

// numericCell returns the value of cells that already carry a number.
func numericCell(v models.Cell) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// parseFloatPrefix parses the longest leading decimal number of s.
func parseFloatPrefix(s string) *float64 {
	m := floatPrefixRe.FindString(strings.TrimSpace(s))
	if m == "" {
		return nil
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return nil
	}
	return finite(f)
}

// parseIntPrefix parses the leading integer of s, or 0.
func parseIntPrefix(s string) int {
	m := intPrefixRe.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	i, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return i
}

func finite(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

func ptr(f float64) *float64 {
	return &f
}
