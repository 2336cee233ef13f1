package transform

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompress_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: []byte{}},
		{name: "short text", data: []byte(`{"number":1}`)},
		{name: "repetitive json", data: []byte(strings.Repeat(`[60,5000,200000,300000],`, 500))},
		{name: "binary", data: []byte{0x00, 0xff, 0x10, 0x80, 0x7f, 0x00, 0x00}},
		{name: "larger than one chunk", data: bytes.Repeat([]byte("abcdefghij"), chunkSize/5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compressed, err := Compress(tt.data)
			require.NoError(t, err)

			got, err := Decompress(compressed)
			require.NoError(t, err)
			assert.Equal(t, len(tt.data), len(got))
			assert.True(t, bytes.Equal(tt.data, got))
		})
	}
}

func TestCompress_ZlibHeader(t *testing.T) {
	compressed, err := Compress([]byte("dive"))
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(compressed), 2)

	// CMF 0x78: deflate with 32K window; header checksum must divide by 31
	assert.Equal(t, byte(0x78), compressed[0])
	assert.Zero(t, (uint16(compressed[0])<<8|uint16(compressed[1]))%31)
}

func TestCompress_ShrinksRepetitiveInput(t *testing.T) {
	data := []byte(strings.Repeat(`{"time":60,"depth":5000},`, 200))
	compressed, err := Compress(data)
	require.NoError(t, err)
	assert.Less(t, len(compressed), len(data)/4)
}

func TestDecompress_Corrupt(t *testing.T) {
	valid, err := Compress([]byte(strings.Repeat("telemetry ", 100)))
	require.NoError(t, err)

	flipped := append([]byte(nil), valid...)
	flipped[len(flipped)/2] ^= 0xff

	badChecksum := append([]byte(nil), valid...)
	badChecksum[len(badChecksum)-1] ^= 0x01

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty input", data: nil},
		{name: "single byte", data: []byte{0x78}},
		{name: "not zlib", data: []byte("hello world, not compressed")},
		{name: "truncated body", data: valid[:len(valid)/2]},
		{name: "missing trailer", data: valid[:len(valid)-4]},
		{name: "flipped byte", data: flipped},
		{name: "bad checksum", data: badChecksum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decompress(tt.data)
			require.Error(t, err)
			assert.Nil(t, got)

			var corrupt *CorruptStreamError
			assert.True(t, errors.As(err, &corrupt))
			assert.ErrorIs(t, err, ErrCorruptStream)
		})
	}
}

func TestDecompress_TruncatedReportsUnexpectedEOF(t *testing.T) {
	valid, err := Compress([]byte("a dive log"))
	require.NoError(t, err)

	_, err = Decompress(valid[:1])
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

// chunkedReader returns at most n bytes per Read to exercise drain.
type chunkedReader struct {
	r io.Reader
	n int
}

func (c *chunkedReader) Read(p []byte) (int, error) {
	if len(p) > c.n {
		p = p[:c.n]
	}
	return c.r.Read(p)
}

func TestDrain_PreservesOrderAcrossChunks(t *testing.T) {
	var want []byte
	for i := 0; i < 5000; i++ {
		want = append(want, byte(i%251))
	}

	got, err := drain(&chunkedReader{r: bytes.NewReader(want), n: 7})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

type failingReader struct{ err error }

func (f failingReader) Read([]byte) (int, error) { return 0, f.err }

func TestDrain_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	_, err := drain(failingReader{err: boom})
	assert.ErrorIs(t, err, boom)
}

func TestCorruptStreamError_Message(t *testing.T) {
	err := &CorruptStreamError{Err: io.ErrUnexpectedEOF}
	assert.Equal(t, "corrupt compressed stream: unexpected EOF", err.Error())
	assert.Equal(t, "corrupt compressed stream", (&CorruptStreamError{}).Error())
}

func TestDecompressLimit(t *testing.T) {
	data := []byte(strings.Repeat("x", 1000))
	compressed, err := Compress(data)
	require.NoError(t, err)

	tests := []struct {
		name    string
		maxSize int64
		wantErr bool
	}{
		{name: "no limit", maxSize: -1},
		{name: "above size", maxSize: 4096},
		{name: "exact size", maxSize: 1000},
		{name: "one byte short", maxSize: 999, wantErr: true},
		{name: "zero", maxSize: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecompressLimit(compressed, tt.maxSize)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, got)

				var corrupt *CorruptStreamError
				assert.True(t, errors.As(err, &corrupt))
				assert.ErrorIs(t, err, ErrCorruptStream)
				assert.ErrorIs(t, err, ErrTooLarge)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, data, got)
		})
	}
}

func TestDecompressLimit_StopsReadingAtLimit(t *testing.T) {
	// 64 MiB нулей сжимаются примерно в 64 KiB
	bomb, err := Compress(make([]byte, 64<<20))
	require.NoError(t, err)
	require.Less(t, len(bomb), 1<<20)

	got, err := DecompressLimit(bomb, 1<<20)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestDecompressLimit_StillChecksStream(t *testing.T) {
	valid, err := Compress([]byte(strings.Repeat("telemetry ", 100)))
	require.NoError(t, err)

	badChecksum := append([]byte(nil), valid...)
	badChecksum[len(badChecksum)-1] ^= 0x01

	_, err = DecompressLimit(badChecksum, 1<<20)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCorruptStream)
	assert.NotErrorIs(t, err, ErrTooLarge)

	_, err = DecompressLimit(valid[:len(valid)/2], 1<<20)
	assert.ErrorIs(t, err, ErrCorruptStream)
	assert.NotErrorIs(t, err, ErrTooLarge)
}
