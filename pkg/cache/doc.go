// Package cache provides a small generic LRU cache.
//
// It backs the compiled-pattern cache of the validator package: patterns are
// compiled once on first use and kept until pushed out by newer ones.
//
//	patterns := cache.New[string, *regexp.Regexp](256)
//	re, err := patterns.GetOrLoad(`^\d+$`, regexp.Compile)
//
// All methods are safe for concurrent use.
package cache
