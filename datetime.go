package petragrd

import (
	"math"
	"time"
)

// Petra stamps grids with Delphi TDateTime values: a floating point count of
// days since 1899-12-30, the integer part selecting the day and the fraction
// the time within it. This is the Unix second of that epoch.
const delphiEpochUnix = -2209161600

// Converts a day count from the file into a UTC timestamp. Sub second
// precision in the fraction survives the conversion. The value is taken at
// face value; nothing bounds how far from the epoch it may land.
func decodeDate(days float64) time.Time {
	sec, frac := math.Modf(days * 86400)
	return time.Unix(delphiEpochUnix+int64(sec), int64(frac*float64(time.Second))).UTC()
}
