package sanitizer_test

import (
	"net/netip"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit/pkg/sanitizer"
)

func TestParseNumbers(t *testing.T) {
	t.Parallel()

	t.Run("int", func(t *testing.T) {
		t.Parallel()
		n, err := sanitizer.ParseInt[int]("-42")
		require.NoError(t, err)
		assert.Equal(t, -42, n)

		_, err = sanitizer.ParseInt[int]("  1a")
		assert.ErrorIs(t, err, strconv.ErrSyntax)

		_, err = sanitizer.ParseInt[int8]("200")
		assert.ErrorIs(t, err, strconv.ErrRange)
	})

	t.Run("uint", func(t *testing.T) {
		t.Parallel()
		n, err := sanitizer.ParseUint[uint16]("65535")
		require.NoError(t, err)
		assert.Equal(t, uint16(65535), n)

		_, err = sanitizer.ParseUint[uint16]("65536")
		assert.ErrorIs(t, err, strconv.ErrRange)

		_, err = sanitizer.ParseUint[uint]("-1")
		assert.ErrorIs(t, err, strconv.ErrSyntax)
	})

	t.Run("float", func(t *testing.T) {
		t.Parallel()
		f, err := sanitizer.ParseFloat[float64]("3.25")
		require.NoError(t, err)
		assert.InDelta(t, 3.25, f, 1e-9)

		_, err = sanitizer.ParseFloat[float32]("1e40")
		assert.ErrorIs(t, err, strconv.ErrRange)
	})

	t.Run("bool", func(t *testing.T) {
		t.Parallel()
		b, err := sanitizer.ParseBool("true")
		require.NoError(t, err)
		assert.True(t, b)

		_, err = sanitizer.ParseBool("yes")
		assert.Error(t, err)
	})
}

func TestNarrow(t *testing.T) {
	t.Parallel()

	v, err := sanitizer.Narrow[int64, int8](100)
	require.NoError(t, err)
	assert.Equal(t, int8(100), v)

	_, err = sanitizer.Narrow[int64, int8](300)
	assert.ErrorIs(t, err, sanitizer.ErrOutOfRange)

	_, err = sanitizer.Narrow[int, uint](-1)
	assert.ErrorIs(t, err, sanitizer.ErrOutOfRange)

	_, err = sanitizer.Narrow[uint64, int64](1 << 63)
	assert.ErrorIs(t, err, sanitizer.ErrOutOfRange)
}

func TestParseIdentifiers(t *testing.T) {
	t.Parallel()

	t.Run("uuid", func(t *testing.T) {
		t.Parallel()
		want := uuid.New()
		got, err := sanitizer.ParseUUID(want.String())
		require.NoError(t, err)
		assert.Equal(t, want, got)

		_, err = sanitizer.ParseUUID("nope")
		assert.Error(t, err)
	})

	t.Run("ip families", func(t *testing.T) {
		t.Parallel()
		addr, err := sanitizer.ParseIP("::1")
		require.NoError(t, err)
		assert.Equal(t, netip.IPv6Loopback(), addr)

		_, err = sanitizer.ParseIPv4("::1")
		assert.ErrorIs(t, err, sanitizer.ErrWrongAddressFamily)

		_, err = sanitizer.ParseIPv6("127.0.0.1")
		assert.ErrorIs(t, err, sanitizer.ErrWrongAddressFamily)

		v4, err := sanitizer.ParseIPv4("127.0.0.1")
		require.NoError(t, err)
		assert.True(t, v4.IsLoopback())

		_, err = sanitizer.ParseIP("not an ip")
		assert.Error(t, err)
	})

	t.Run("addr port", func(t *testing.T) {
		t.Parallel()
		ap, err := sanitizer.ParseAddrPort("10.0.0.1:8080")
		require.NoError(t, err)
		assert.Equal(t, uint16(8080), ap.Port())
	})
}
