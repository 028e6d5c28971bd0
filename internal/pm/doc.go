// Package pm detects the project's JavaScript package manager from lockfile
// presence and wraps its install and build invocations. Output is streamed
// and captured simultaneously; success and failure are classified solely by
// exit code.
package pm
