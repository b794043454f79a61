// Package requestid assigns every HTTP request an identifier, propagated from
// the X-Request-ID header when the client sends a valid one.
package requestid
