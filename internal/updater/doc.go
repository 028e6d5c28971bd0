// Package updater performs the non-blocking release check behind the
// "update available" banner. Results are cached in the config directory so
// command startup never waits on the network.
package updater
