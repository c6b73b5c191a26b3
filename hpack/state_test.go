package hpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domsolutions/h2dec/internal/h2testing"
)

// TestDecoderBlockTotals replays RFC 7541 C.2.4's single indexed header
// and checks the uncompressed/compressed byte totals reported at block
// end (":method"=7 + "GET"=3 = 10 uncompressed, 1 wire byte consumed).
func TestDecoderBlockTotals(t *testing.T) {
	d := NewDecoder(4096)
	acc := &ListAccumulator{}
	buf := NewDecodeBuffer(h2testing.IndexedHeaderField(2))
	st, err := d.DecodeFragment(&buf, acc)
	require.NoError(t, err)
	require.Equal(t, StatusDone, st)
	require.NoError(t, d.EndHeaderBlock(acc))

	require.Len(t, acc.Fields, 1)
	assert.Equal(t, HeaderField{Name: ":method", Value: "GET"}, acc.Fields[0])
	assert.EqualValues(t, 10, acc.TotalUncompressedBytes)
	assert.EqualValues(t, 1, acc.TotalCompressedBytes)
}

func decodingErrorCode(t *testing.T, err error) ErrorCode {
	t.Helper()
	var decErr *DecodingError
	require.ErrorAs(t, err, &decErr)
	return decErr.Code
}

// TestDecoderRejectsOversizeAcknowledgedSizeUpdate replays spec scenario
// S7: after acknowledging 200 then 300, a block beginning with a size
// update of 400 must be rejected against the final (most recent) limit,
// even though it also violates the stricter low-water-mark bound.
func TestDecoderRejectsOversizeAcknowledgedSizeUpdate(t *testing.T) {
	d := NewDecoder(4096)
	d.ApplyHeaderTableSizeSetting(200)
	d.ApplyHeaderTableSizeSetting(300)

	acc := &ListAccumulator{}
	buf := NewDecodeBuffer(h2testing.DynamicTableSizeUpdate(400))
	_, err := d.DecodeFragment(&buf, acc)
	require.Error(t, err)
	assert.Equal(t, ErrDynamicTableSizeUpdateAboveAcknowledgedSetting, decodingErrorCode(t, err))
	assert.Empty(t, acc.Fields)
}

// TestDecoderRequiresSizeUpdateAfterSettingLowered verifies that once the
// table's actual limit sits above the lowest value acknowledged since the
// previous block, the next block's first entry must be a size update.
func TestDecoderRequiresSizeUpdateAfterSettingLowered(t *testing.T) {
	d := NewDecoder(4096)
	d.ApplyHeaderTableSizeSetting(100)

	acc := &ListAccumulator{}
	buf := NewDecodeBuffer(h2testing.IndexedHeaderField(2))
	_, err := d.DecodeFragment(&buf, acc)
	require.Error(t, err)
	assert.Equal(t, ErrMissingDynamicTableSizeUpdate, decodingErrorCode(t, err))
}

// TestDecoderInitialSizeUpdateAboveLowWaterMark checks the stricter bound
// applies when the required update itself, while within the final limit,
// still exceeds the lowest limit acknowledged since the previous block.
func TestDecoderInitialSizeUpdateAboveLowWaterMark(t *testing.T) {
	d := NewDecoder(4096)
	d.ApplyHeaderTableSizeSetting(100)
	d.ApplyHeaderTableSizeSetting(300)

	acc := &ListAccumulator{}
	buf := NewDecodeBuffer(h2testing.DynamicTableSizeUpdate(250))
	_, err := d.DecodeFragment(&buf, acc)
	require.Error(t, err)
	assert.Equal(t, ErrInitialDynamicTableSizeUpdateAboveLowWaterMark, decodingErrorCode(t, err))
}

// TestDecoderAllowsTwoSizeUpdatesThenRejectsThird exercises the required
// update (down to the low water mark) followed by a second, optional one
// restoring the table back up to the final acknowledged limit; a third is
// rejected regardless of its value.
func TestDecoderAllowsTwoSizeUpdatesThenRejectsThird(t *testing.T) {
	d := NewDecoder(4096)
	d.ApplyHeaderTableSizeSetting(100)
	d.ApplyHeaderTableSizeSetting(300)

	wire := append(h2testing.DynamicTableSizeUpdate(100), h2testing.DynamicTableSizeUpdate(300)...)
	wire = append(wire, h2testing.DynamicTableSizeUpdate(300)...)

	acc := &ListAccumulator{}
	buf := NewDecodeBuffer(wire)
	_, err := d.DecodeFragment(&buf, acc)
	require.Error(t, err)
	assert.Equal(t, ErrDynamicTableSizeUpdateNotAllowed, decodingErrorCode(t, err))
}

// TestDecoderRejectsSizeUpdateAfterHeaderFieldWithNewCode mirrors the
// pre-existing "too late" regression test but pins down the specific
// error code a size update after a header field must raise.
func TestDecoderRejectsSizeUpdateAfterHeaderFieldWithNewCode(t *testing.T) {
	d := NewDecoder(4096)
	wire := append(h2testing.IndexedHeaderField(2), h2testing.DynamicTableSizeUpdate(0)...)
	acc := &ListAccumulator{}
	buf := NewDecodeBuffer(wire)
	_, err := d.DecodeFragment(&buf, acc)
	require.Error(t, err)
	assert.Equal(t, ErrDynamicTableSizeUpdateNotAllowed, decodingErrorCode(t, err))
}

// TestDecoderMissingSizeUpdateAtBlockEnd checks that an empty block
// ending without ever having satisfied a required size update is
// rejected at EndHeaderBlock, not silently accepted.
func TestDecoderMissingSizeUpdateAtBlockEnd(t *testing.T) {
	d := NewDecoder(4096)
	d.ApplyHeaderTableSizeSetting(100)

	acc := &ListAccumulator{}
	buf := NewDecodeBuffer(nil)
	st, err := d.DecodeFragment(&buf, acc)
	require.NoError(t, err)
	assert.Equal(t, StatusDone, st)

	err = d.EndHeaderBlock(acc)
	require.Error(t, err)
	assert.Equal(t, ErrMissingDynamicTableSizeUpdate, decodingErrorCode(t, err))
}

// TestDecoderEnforcesMaxHeaderBlockSize wires WithMaxHeaderBlockSize and
// checks that a block whose HPACK wire bytes exceed the budget is rejected
// with ErrCompressedHeaderSizeExceedsLimit.
func TestDecoderEnforcesMaxHeaderBlockSize(t *testing.T) {
	d := NewDecoder(4096, WithMaxHeaderBlockSize(1))
	wire := append(h2testing.IndexedHeaderField(2), h2testing.IndexedHeaderField(3)...)
	acc := &ListAccumulator{}
	buf := NewDecodeBuffer(wire)
	_, err := d.DecodeFragment(&buf, acc)
	require.Error(t, err)
	assert.Equal(t, ErrCompressedHeaderSizeExceedsLimit, decodingErrorCode(t, err))
}

// TestDecoderEnforcesMaxStringSize checks a literal name longer than the
// configured limit is rejected with the name-specific error code.
func TestDecoderEnforcesMaxStringSize(t *testing.T) {
	d := NewDecoder(4096, WithMaxStringSize(4))
	wire := h2testing.LiteralWithoutIndexing("longer-than-four", "v")
	acc := &ListAccumulator{}
	buf := NewDecodeBuffer(wire)
	_, err := d.DecodeFragment(&buf, acc)
	require.Error(t, err)
	assert.Equal(t, ErrNameTooLong, decodingErrorCode(t, err))
}
