package booking

import "errors"

// ErrNoMatch is returned by FindAvailableProviders when no provider in the
// category has a future available slot. An unknown category and a fully
// booked one are indistinguishable here; both report this.
var ErrNoMatch = errors.New("no available providers found")
