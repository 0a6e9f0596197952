// Package lifecycle holds process-wide lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown hooks.
const DefaultTimeout = 10 * time.Second

// EventDispatchTimeout bounds the detached publish of a lifecycle event.
const EventDispatchTimeout = 5 * time.Second
