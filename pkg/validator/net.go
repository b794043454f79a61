package validator

import (
	"net"
	"net/netip"
	"strconv"
)

func IsIP(s string) bool {
	_, err := netip.ParseAddr(s)
	return err == nil
}

func IsIPv4(s string) bool {
	addr, err := netip.ParseAddr(s)
	return err == nil && addr.Is4()
}

// IsIPv6 rejects IPv4 addresses, including IPv4-mapped forms written as dotted quads.
func IsIPv6(s string) bool {
	addr, err := netip.ParseAddr(s)
	return err == nil && addr.Is6()
}

// IsHostPort reports whether s is "host:port" with a non-empty host and a valid port.
func IsHostPort(s string) bool {
	host, port, err := net.SplitHostPort(s)
	if err != nil || host == "" {
		return false
	}
	n, err := strconv.ParseUint(port, 10, 16)
	return err == nil && n > 0
}

// IsAddrPort reports whether s is an IP address with a port, e.g. "[::1]:80".
func IsAddrPort(s string) bool {
	_, err := netip.ParseAddrPort(s)
	return err == nil
}

func IsAddrPortV4(s string) bool {
	ap, err := netip.ParseAddrPort(s)
	return err == nil && ap.Addr().Is4()
}

func IsAddrPortV6(s string) bool {
	ap, err := netip.ParseAddrPort(s)
	return err == nil && ap.Addr().Is6()
}
