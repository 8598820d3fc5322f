// Package lifecycle holds process lifecycle settings shared by fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every fx OnStart/OnStop hook.
const DefaultTimeout = 10 * time.Second
