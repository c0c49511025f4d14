package descriptor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWIF = "KyZpNDKnfs94vbP8LsttmfW9aw4QV5V6MNpQNZomdsh7tgRYD3rt"

func TestChecksumIsStable(t *testing.T) {
	body := "wpkh(" + testWIF + ")"

	first := Checksum(body)
	require.Len(t, first, ChecksumLen)
	for i := 0; i < len(first); i++ {
		assert.GreaterOrEqual(t, strings.IndexByte("qpzry9x8gf2tvdw0s3jn54khce6mua7l", first[i]), 0)
	}

	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Checksum(body))
	}
}

func TestAppendChecksumValidates(t *testing.T) {
	bodies := []string{
		"wpkh(" + testWIF + ")",
		"wpkh(cTnxkovLhGbp7VRhooymfgxLcT6Vq916aSkZhqDvJLsvTugaJcBh)",
		"raw(deadbeef)",
		"",
	}
	for _, body := range bodies {
		full := AppendChecksum(body)
		assert.NoError(t, Validate(full))

		gotBody, gotChecksum, err := SplitChecksum(full)
		require.NoError(t, err)
		assert.Equal(t, body, gotBody)
		assert.Equal(t, Checksum(body), gotChecksum)
	}
}

func TestValidateFailures(t *testing.T) {
	full := Wpkh(testWIF)

	tests := []struct {
		name string
		desc string
		err  error
	}{
		{
			name: "missing checksum separator",
			desc: strings.ReplaceAll(full, "#", ""),
			err:  ErrInvalidDescriptor,
		},
		{
			name: "checksum too short",
			desc: full[:len(full)-1],
			err:  ErrInvalidDescriptor,
		},
		{
			name: "checksum with invalid symbol",
			desc: full[:len(full)-1] + "b",
			err:  ErrInvalidDescriptor,
		},
		{
			name: "checksum too long",
			desc: full + "q",
			err:  ErrInvalidDescriptor,
		},
		{
			name: "checksum of different body",
			desc: "wpkh(" + testWIF + ")#" + Checksum("raw(00)"),
			err:  ErrChecksumMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, Validate(tt.desc), tt.err)
		})
	}
}

func TestValidateDetectsMutations(t *testing.T) {
	full := Wpkh(testWIF)
	require.NoError(t, Validate(full))

	sep := strings.LastIndexByte(full, '#')

	// Flip every checksum symbol.
	for i := sep + 1; i < len(full); i++ {
		replacement := byte('q')
		if full[i] == 'q' {
			replacement = 'p'
		}
		mutated := full[:i] + string(replacement) + full[i+1:]
		assert.ErrorIs(t, Validate(mutated), ErrChecksumMismatch)
	}

	// Flip a sample of body symbols, staying inside the descriptor
	// alphabet so the failure is a checksum mismatch, not a shape error.
	for i := 5; i < sep; i += 7 {
		replacement := byte('2')
		if full[i] == '2' {
			replacement = '3'
		}
		mutated := full[:i] + string(replacement) + full[i+1:]
		assert.ErrorIs(t, Validate(mutated), ErrChecksumMismatch)
	}
}

func TestChecksumSkipsUnknownCharacters(t *testing.T) {
	// Characters outside the descriptor alphabet must not contribute.
	assert.Equal(t, Checksum("wpkh(abc)"), Checksum("wpkh(abc)é"))
	assert.Equal(t, Checksum(""), Checksum("éü"))
}

func TestWpkhShape(t *testing.T) {
	full := Wpkh(testWIF)
	assert.True(t, strings.HasPrefix(full, "wpkh("+testWIF+")#"))
	assert.Len(t, full, len("wpkh()#")+len(testWIF)+ChecksumLen)
	assert.NoError(t, Validate(full))
}
