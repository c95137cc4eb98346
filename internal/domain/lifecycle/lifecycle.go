// Package lifecycle holds shared timing constants for start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds OnStart pings and graceful shutdowns.
const DefaultTimeout = 10 * time.Second
