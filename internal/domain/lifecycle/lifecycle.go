// Package lifecycle holds process-wide timing constants shared by startup and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every fx OnStart/OnStop hook (DB ping, server shutdown, broker close).
const DefaultTimeout = 10 * time.Second
