package server

import "errors"

// errNoServersAreCreated is returned when no HTTP handler was configured.
var errNoServersAreCreated = errors.New("no servers are created")
