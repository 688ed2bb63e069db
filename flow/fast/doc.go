// Package fast provides stream primitives that give up flow's safety
// features for raw speed.
//
// # DISCLAIMER: USE AT YOUR OWN RISK
//
// This package intentionally bypasses the following features:
//
//   - Result wrapping: values flow directly without Ok/Err/Sentinel wrappers
//   - Error handling: panics from user functions are NOT recovered
//   - Hooks: no typed hooks are looked up or invoked
//
// It exists mainly so the timing harness can measure what those features
// cost next to the regular flow pipeline and a raw loop.
package fast
