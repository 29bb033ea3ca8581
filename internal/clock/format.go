package clock

import "time"

const (
	layout24h  = "15:04"
	layout12h  = "03:04"
	layoutDate = "Mon\n_2 Jan"
)

// Buffer sizes for the two display strings.
const (
	TimeTextLen = len("00:00")
	DateTextLen = len("DDD\n00 MMM")
)

// TimeText and DateText are reusable scratch buffers. Formatting overwrites
// the whole buffer, so nothing from a previous call leaks into the next one.
type (
	TimeText [TimeTextLen]byte
	DateText [DateTextLen]byte
)

// FormatTime renders t as "HH:MM". With clock24h false the hour runs 01-12.
func FormatTime(t time.Time, clock24h bool) string {
	var buf TimeText
	return FormatTimeInto(&buf, t, clock24h)
}

// FormatTimeInto is FormatTime writing into a caller-owned buffer.
func FormatTimeInto(buf *TimeText, t time.Time, clock24h bool) string {
	layout := layout24h
	if !clock24h {
		layout = layout12h
	}
	return string(t.AppendFormat(buf[:0], layout))
}

// FormatDate renders t as the weekday abbreviation, a line break, then the
// day of month and month abbreviation, e.g. "Wed\n13 Dec". Single-digit
// days are padded with a space ("Sun\n 3 Dec") so the text keeps its width.
func FormatDate(t time.Time) string {
	var buf DateText
	return FormatDateInto(&buf, t)
}

func FormatDateInto(buf *DateText, t time.Time) string {
	return string(t.AppendFormat(buf[:0], layoutDate))
}
