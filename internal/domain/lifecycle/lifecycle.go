// Package lifecycle holds shared lifecycle constants for fx-managed components.
package lifecycle

import "time"

// DefaultTimeout bounds graceful start/stop of servers and infra clients.
const DefaultTimeout = 30 * time.Second
