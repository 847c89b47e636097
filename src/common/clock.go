// go/src/common/clock.go
package common

import "time"

// Now is swappable in tests that need deterministic createdAt stamps; it
// defaults to the wall clock and is the only source of time this module
// reaches for.
var Now = time.Now

// NowMillis returns Now() as milliseconds since the Unix epoch, the unit
// every createdAt field on the wire is stamped in.
func NowMillis() int64 {
	return Now().UnixMilli()
}
