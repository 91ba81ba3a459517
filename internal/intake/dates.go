package intake

import "time"

// DisplayFormat is the regional display form all dates are stored and
// rendered in.
const DisplayFormat = "02/01/2006"

var isoLayouts = []string{"2006-01-02", time.RFC3339}

// DisplayDate converts an ISO date string (yyyy-mm-dd, RFC3339 accepted)
// to dd/mm/yyyy in server-local time. Empty input yields an empty
// string. Input that is not ISO — including a string already in display
// format — also yields an empty string, so a value can only ever be
// normalized once, at intake.
func DisplayDate(s string) string {
	if s == "" {
		return ""
	}
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t.Local().Format(DisplayFormat)
		}
	}
	return ""
}

// Today returns the current date in display format, used for the
// generation timestamp on rendered documents.
func Today() string {
	return time.Now().Format(DisplayFormat)
}
