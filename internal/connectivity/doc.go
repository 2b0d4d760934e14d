// Package connectivity tracks whether the remote API is reachable.
//
// A [Monitor] holds the two-state online/offline value and broadcasts every
// transition to its subscribers without debouncing. The state is driven from
// outside: a [Prober] periodically pings the remote API and reports the
// outcome, and tests or the CLI may call [Monitor.Set] directly.
package connectivity
