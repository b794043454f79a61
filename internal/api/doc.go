// Package api wires the demo schemas into an HTTP router.
package api
