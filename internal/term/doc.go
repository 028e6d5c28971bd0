// Package term provides the interactive prompting capability used by the
// publish pipeline's confirmation gate and credential fallback.
package term
