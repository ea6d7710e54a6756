package dataset

import (
	"fmt"
	"time"
)

const (
	// simpleLayout is used for the primary date fields.
	simpleLayout = "2006-01-02T15:04:05"
	// preciseLayout is used for the LastLogin and CustomerSince metadata
	// values. The two layouts differ for historical reasons and both are
	// kept verbatim.
	preciseLayout = "2006-01-02T15:04:05.0000000"
)

// baseDate anchors every derived date.
var baseDate = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

// shift applies calendar arithmetic: years and months first, then days, the
// same way as adding each unit in turn on a calendar date.
func shift(years, months, days int) time.Time {
	d := baseDate
	if years != 0 || months != 0 {
		d = d.AddDate(years, months, 0)
	}
	d = d.AddDate(0, 0, days)
	if y := d.Year(); y < 1 || y > 9999 {
		panic(fmt.Sprintf("dataset: date %d/%d/%d from base is outside the four-digit year range", years, months, days))
	}
	return d
}

func formatSimple(t time.Time) string {
	return t.Format(simpleLayout)
}

func formatPrecise(t time.Time) string {
	return t.Format(preciseLayout)
}
