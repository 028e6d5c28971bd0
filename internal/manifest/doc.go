// Package manifest parses and validates the server definition emitted by the
// build step (.mcplug/definition.json). Parsing normalizes the two observed
// spellings of "tools" (array or name-keyed object) into one canonical
// ordered slice; validation aggregates every structural and semantic problem
// into a single Result so nothing reaches the network half-checked.
package manifest
