// Package tap provides an identity pass-through that logs each element of a
// lazy sequence at the moment it is first demanded.
//
// Logging goes through go.uber.org/zap. By default the package logger is a
// no-op; call SetLogger to enable output for every tap that does not carry
// its own logger:
//
//	tap.SetLogger(zap.NewExample())
//	s := tap.Tap("x", ranges.RangeIncl(1, 3))
//	seq.Collect(s)
//	// {"level":"debug","msg":"x 1","index":0}
//	// {"level":"debug","msg":"x 2","index":1}
//	// {"level":"debug","msg":"x 3","index":2}
//
// The log line is written before the element is returned and never for an
// element that is not pulled.
package tap
