package history

import "time"

// chromeEpochOffset is the number of seconds between 1601-01-01 and the
// Unix epoch.
const chromeEpochOffset int64 = 11644473600

// Epoch describes how a browser encodes timestamps: microseconds counted
// from a fixed reference point, OffsetSeconds before the Unix epoch.
type Epoch struct {
	Name          string
	OffsetSeconds int64
}

var (
	// ChromeEpoch is the WebKit/FILETIME-derived epoch, 1601-01-01 UTC.
	ChromeEpoch = Epoch{Name: "webkit", OffsetSeconds: chromeEpochOffset}

	// FirefoxEpoch is PRTime, microseconds since the Unix epoch.
	FirefoxEpoch = Epoch{Name: "prtime", OffsetSeconds: 0}
)

// Time converts a raw microsecond value into an instant. The result is in
// UTC; callers pick the presentation location with In.
func (e Epoch) Time(raw int64) time.Time {
	sec := raw / 1_000_000
	usec := raw % 1_000_000
	return time.Unix(sec-e.OffsetSeconds, usec*1000).UTC()
}

// Micros is the inverse of Time. Precision below one microsecond is
// truncated.
func (e Epoch) Micros(t time.Time) int64 {
	return (t.Unix()+e.OffsetSeconds)*1_000_000 + int64(t.Nanosecond()/1000)
}

// ChromeTime converts a Chrome history timestamp.
func ChromeTime(raw int64) time.Time {
	return ChromeEpoch.Time(raw)
}

// ChromeMicros converts t back into a Chrome history timestamp.
func ChromeMicros(t time.Time) int64 {
	return ChromeEpoch.Micros(t)
}

// FirefoxTime converts a Firefox places timestamp.
func FirefoxTime(raw int64) time.Time {
	return FirefoxEpoch.Time(raw)
}

// FirefoxMicros converts t back into a Firefox places timestamp.
func FirefoxMicros(t time.Time) int64 {
	return FirefoxEpoch.Micros(t)
}
