package http2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeHeaderWholeBuffer(t *testing.T) {
	raw := []byte{0x00, 0x00, 0x05, 0x01, 0x05, 0x00, 0x00, 0x00, 0x03}
	buf := NewDecodeBuffer(raw)
	h := DecodeHeader(&buf)
	assert.EqualValues(t, 5, h.Length())
	assert.Equal(t, FrameTypeHeaders, h.Type())
	assert.True(t, h.Has(FlagEndHeaders))
	assert.True(t, h.Has(FlagEndStream))
	assert.EqualValues(t, 3, h.Stream())
}

func TestFrameHeaderDecoderResumesAcrossCalls(t *testing.T) {
	raw := []byte{0x00, 0x00, 0x05, 0x01, 0x04, 0x00, 0x00, 0x00, 0x03}
	var d frameHeaderDecoder

	first := NewDecodeBuffer(raw[0:1])
	_, st := d.Start(&first)
	require.Equal(t, StatusInProgress, st)

	for i := 1; i < len(raw)-1; i++ {
		buf := NewDecodeBuffer(raw[i : i+1])
		_, st := d.Resume(&buf)
		require.Equal(t, StatusInProgress, st)
	}

	buf := NewDecodeBuffer(raw[len(raw)-1:])
	h, st := d.Resume(&buf)
	require.Equal(t, StatusDone, st)
	assert.EqualValues(t, 5, h.Length())
	assert.EqualValues(t, 3, h.Stream())
}
