// Package demo defines the example schemas served by the validkit binary:
// a signup form with a nested profile and a list of addresses, each
// validated by its own schema.
package demo
