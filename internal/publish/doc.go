// Package publish implements the publish pipeline: build invocation,
// artifact location and validation, credential resolution, the summary and
// confirmation gate, and the authenticated multipart upload. Stages run
// strictly in sequence and no network request is issued before validation
// passes and the user confirms.
package publish
