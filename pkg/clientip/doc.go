// Package clientip resolves the address of the client behind proxies.
//
// GetIP walks Headers (CF-Connecting-IP, X-Forwarded-For, X-Real-IP) and
// falls back to RemoteAddr. Addresses are parsed as netip.Addr, so
// IPv4-mapped IPv6 values come back in dotted form and malformed values are
// skipped.
//
//	r.Use(clientip.Middleware)
//	log := logger.New(logger.WithContextExtractors(clientip.LogExtractor))
package clientip
