package hpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeVarintAllAtOnce(t *testing.T, prefixValue, prefixMax uint64, rest []byte) (uint64, error) {
	t.Helper()
	buf := NewDecodeBuffer(rest)
	var d varintDecoder
	v, st, err := d.Start(prefixValue, prefixMax, &buf)
	require.NoError(t, err)
	require.Equal(t, StatusDone, st)
	return v, nil
}

func TestVarintSmallFitsInPrefix(t *testing.T) {
	v, err := decodeVarintAllAtOnce(t, 10, 127, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 10, v)
}

func TestVarintRFCExample(t *testing.T) {
	// RFC 7541 Appendix C.1.1: 1337 encoded with a 5-bit prefix.
	v, err := decodeVarintAllAtOnce(t, 31, 31, []byte{0x9a, 0x0a})
	require.NoError(t, err)
	assert.EqualValues(t, 1337, v)
}

func TestVarintSplitAcrossCalls(t *testing.T) {
	var d varintDecoder
	part1 := NewDecodeBuffer([]byte{0x9a})
	v, st, err := d.Start(31, 31, &part1)
	require.NoError(t, err)
	require.Equal(t, StatusInProgress, st)
	assert.Zero(t, v)

	part2 := NewDecodeBuffer([]byte{0x0a})
	v, st, err = d.Resume(&part2)
	require.NoError(t, err)
	require.Equal(t, StatusDone, st)
	assert.EqualValues(t, 1337, v)
}

func TestVarintTooLong(t *testing.T) {
	rest := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	buf := NewDecodeBuffer(rest)
	var d varintDecoder
	_, st, err := d.Start(127, 127, &buf)
	require.Equal(t, StatusError, st)
	require.Error(t, err)
	var decErr *DecodingError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, ErrVarintTooLong, decErr.Code)
}
