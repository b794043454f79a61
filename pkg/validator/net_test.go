package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validkit/pkg/validator"
)

func TestNetPredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		pred func(string) bool
		in   string
		want bool
	}{
		{"ip v4", validator.IsIP, "192.168.0.1", true},
		{"ip v6", validator.IsIP, "::1", true},
		{"ip garbage", validator.IsIP, "999.1.1.1", false},
		{"ipv4 accepts v4", validator.IsIPv4, "10.0.0.1", true},
		{"ipv4 rejects v6", validator.IsIPv4, "fe80::1", false},
		{"ipv6 accepts v6", validator.IsIPv6, "2001:db8::1", true},
		{"ipv6 rejects v4", validator.IsIPv6, "10.0.0.1", false},
		{"host port with name", validator.IsHostPort, "example.com:443", true},
		{"host port without port", validator.IsHostPort, "example.com", false},
		{"host port zero port", validator.IsHostPort, "example.com:0", false},
		{"host port empty host", validator.IsHostPort, ":80", false},
		{"addr port v4", validator.IsAddrPort, "127.0.0.1:80", true},
		{"addr port v6", validator.IsAddrPort, "[::1]:80", true},
		{"addr port host name", validator.IsAddrPort, "localhost:80", false},
		{"addr port v4 only", validator.IsAddrPortV4, "[::1]:80", false},
		{"addr port v6 only", validator.IsAddrPortV6, "[::1]:80", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.pred(tt.in))
		})
	}
}
