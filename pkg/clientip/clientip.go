package clientip

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/dmitrymomot/validkit/pkg/sanitizer"
)

// Headers are consulted in order before falling back to RemoteAddr.
// X-Forwarded-For may hold a list; its first valid address wins.
var Headers = []string{"CF-Connecting-IP", "X-Forwarded-For", "X-Real-IP"}

type contextKey struct{}

// GetIP returns the normalized client address of r, or "" when none of the
// sources holds a valid IP.
func GetIP(r *http.Request) string {
	for _, h := range Headers {
		v := r.Header.Get(h)
		if v == "" {
			continue
		}
		for part := range strings.SplitSeq(v, ",") {
			if ip := parseIP(part); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

func parseIP(s string) string {
	addr, err := sanitizer.ParseIP(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().String()
}

func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

// FromContext returns the client IP stored by Middleware, or "".
func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}

// Middleware stores the client IP in the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), GetIP(r))))
	})
}

// LogExtractor adds "client_ip" to log records. It satisfies
// logger.ContextExtractor.
func LogExtractor(ctx context.Context) (slog.Attr, bool) {
	if ip := FromContext(ctx); ip != "" {
		return slog.String("client_ip", ip), true
	}
	return slog.Attr{}, false
}
