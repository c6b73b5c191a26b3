package hpack

import (
	"bytes"
	"testing"

	xhpack "golang.org/x/net/http2/hpack"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeHuffmanWhole is a small test helper: feed the whole encoded
// payload in one write, then finish.
func decodeHuffmanWhole(t *testing.T, encoded []byte) (string, error) {
	t.Helper()
	d := newHuffmanDecoder()
	if err := d.write(encoded); err != nil {
		return "", err
	}
	return d.finish()
}

func TestHuffmanRFCExample(t *testing.T) {
	// RFC 7541 Appendix C.4.1: "www.example.com"
	encoded := []byte{0xf1, 0xe3, 0xc2, 0xe5, 0xf2, 0x3a, 0x6b, 0xa0, 0xab, 0x90, 0xf4, 0xff}
	got, err := decodeHuffmanWhole(t, encoded)
	require.NoError(t, err)
	assert.Equal(t, "www.example.com", got)
}

func TestHuffmanAgainstXNetOracle(t *testing.T) {
	cases := []string{
		"",
		"a",
		"gzip",
		"application/json; charset=utf-8",
		"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36",
		"no-cache, no-store, must-revalidate",
	}
	for _, s := range cases {
		var buf bytes.Buffer
		_, err := xhpack.HuffmanEncode(&buf, s)
		require.NoError(t, err)

		got, err := decodeHuffmanWhole(t, buf.Bytes())
		require.NoError(t, err)
		assert.Equal(t, s, got, "mismatch for input %q", s)
	}
}

func TestHuffmanSplitAcrossWrites(t *testing.T) {
	var buf bytes.Buffer
	_, err := xhpack.HuffmanEncode(&buf, "accept-encoding")
	require.NoError(t, err)
	encoded := buf.Bytes()

	d := newHuffmanDecoder()
	for _, b := range encoded {
		require.NoError(t, d.write([]byte{b}))
	}
	got, err := d.finish()
	require.NoError(t, err)
	assert.Equal(t, "accept-encoding", got)
}

func TestHuffmanRejectsEmbeddedEOS(t *testing.T) {
	// 30 one-bits is the EOS code; craft 4 bytes of all 1s.
	encoded := []byte{0xff, 0xff, 0xff, 0xff}
	_, err := decodeHuffmanWhole(t, encoded)
	require.Error(t, err)
}
