// Package tag allocates the process-wide identity tokens used for hit-testing
// and scroll identity.
//
// TagId and DomId are monotonic counters backed by atomics. 0 is reserved for
// "no tag". Reset is only valid between frames.
package tag
