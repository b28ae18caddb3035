package utils

import "time"

// Response timestamps keep the "YYYY-MM-DD HH:MM" local-time rendering the
// existing frontend consumes. Change here only together with the frontend.
const (
	timestampLayout = "2006-01-02 15:04"
	dateLayout      = "2006-01-02"
)

func FormatTimestamp(t time.Time) string {
	return t.Local().Format(timestampLayout)
}

// FormatTimestampPtr renders a nullable timestamp, keeping nil as nil so
// never-updated rows serialize updated_at as JSON null.
func FormatTimestampPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatTimestamp(*t)
	return &s
}

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func ParseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}
