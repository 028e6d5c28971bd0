// Package cli wires the cobra command tree: create, install, build,
// validate, publish, and version. Commands stay thin; the work lives in the
// scaffold, pm, manifest, and publish packages.
package cli
