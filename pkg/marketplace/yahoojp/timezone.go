package yahoojp

import (
	"time"
	_ "time/tzdata"
)

const (
	dateLayout     = "20060102"
	dateTimeLayout = "20060102150405"
)

// Tokyo is the zone all dates are exchanged in.
var Tokyo = mustLoadLocation("Asia/Tokyo")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		// Japan has no DST; a fixed offset is equivalent.
		return time.FixedZone("JST", 9*60*60)
	}
	return loc
}

func formatDate(t time.Time) string {
	return t.In(Tokyo).Format(dateLayout)
}

func formatDateTime(t time.Time) string {
	return t.In(Tokyo).Format(dateTimeLayout)
}
