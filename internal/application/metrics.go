package application

import "expvar"

// counters is published on /debug/vars when debug metrics are enabled.
var counters = expvar.NewMap("auth_items")
