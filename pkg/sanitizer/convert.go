package sanitizer

import (
	"fmt"
	"net/netip"
	"reflect"
	"strconv"

	"github.com/google/uuid"
)

func bitSize[T any]() int {
	return reflect.TypeFor[T]().Bits()
}

// ParseInt parses a base 10 integer that must fit T.
// Input is not trimmed; compose with Trim for lenient parsing.
func ParseInt[T Signed](s string) (T, error) {
	n, err := strconv.ParseInt(s, 10, bitSize[T]())
	if err != nil {
		return 0, err
	}
	return T(n), nil
}

// ParseUint parses a base 10 unsigned integer that must fit T.
func ParseUint[T Unsigned](s string) (T, error) {
	n, err := strconv.ParseUint(s, 10, bitSize[T]())
	if err != nil {
		return 0, err
	}
	return T(n), nil
}

// ParseFloat parses a floating point number with the precision of T.
func ParseFloat[T Float](s string) (T, error) {
	f, err := strconv.ParseFloat(s, bitSize[T]())
	if err != nil {
		return 0, err
	}
	return T(f), nil
}

// ParseBool accepts the forms understood by strconv.ParseBool.
func ParseBool(s string) (bool, error) {
	return strconv.ParseBool(s)
}

func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

func ParseIP(s string) (netip.Addr, error) {
	return netip.ParseAddr(s)
}

func ParseIPv4(s string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, err
	}
	if !addr.Is4() {
		return netip.Addr{}, fmt.Errorf("%w: %s is not IPv4", ErrWrongAddressFamily, s)
	}
	return addr, nil
}

func ParseIPv6(s string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, err
	}
	if !addr.Is6() {
		return netip.Addr{}, fmt.Errorf("%w: %s is not IPv6", ErrWrongAddressFamily, s)
	}
	return addr, nil
}

func ParseAddrPort(s string) (netip.AddrPort, error) {
	return netip.ParseAddrPort(s)
}

func narrowError[F, T Integer](v F, _ T) error {
	return fmt.Errorf("%w: %d does not fit %s", ErrOutOfRange, v, reflect.TypeFor[T]())
}
