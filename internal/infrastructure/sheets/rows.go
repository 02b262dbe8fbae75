package sheets

import "time"

// cellString reads row[i] as a string, tolerating short rows and
// non-string cells the API may hand back.
func cellString(row []interface{}, i int) string {
	if i >= len(row) {
		return ""
	}
	s, _ := row[i].(string)
	return s
}

// parseTime parses an RFC 3339 cell. The zero time is returned for
// anything unparsable, which downstream expiry checks treat as expired.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func boolCell(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
