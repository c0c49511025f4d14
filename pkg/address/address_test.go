package address

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bech32Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

func randomProgram(rng *rand.Rand) []byte {
	program := make([]byte, WitnessV0ProgramLen)
	rng.Read(program)
	return program
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, hrp := range []string{"pocx", "tpocx"} {
		for i := 0; i < 32; i++ {
			program := randomProgram(rng)

			addr, err := Encode(hrp, 0, program)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(addr, hrp+"1q"))
			assert.Equal(t, strings.ToLower(addr), addr)

			gotHrp, gotVer, gotProgram, err := Decode(addr)
			require.NoError(t, err)
			assert.Equal(t, hrp, gotHrp)
			assert.Equal(t, byte(0), gotVer)
			assert.Equal(t, program, gotProgram)
		}
	}
}

func TestEncodeFailures(t *testing.T) {
	program := make([]byte, WitnessV0ProgramLen)

	tests := []struct {
		name    string
		hrp     string
		version byte
		program []byte
		err     error
	}{
		{
			name:    "unsupported witness version",
			hrp:     "pocx",
			version: 1,
			program: program,
			err:     ErrUnsupportedWitnessVersion,
		},
		{
			name:    "program too short",
			hrp:     "pocx",
			version: 0,
			program: program[:19],
			err:     ErrInvalidProgramLength,
		},
		{
			name:    "program too long",
			hrp:     "pocx",
			version: 0,
			program: append(program, 0x00),
			err:     ErrInvalidProgramLength,
		},
		{
			name:    "empty program",
			hrp:     "pocx",
			version: 0,
			program: nil,
			err:     ErrInvalidProgramLength,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := Encode(tt.hrp, tt.version, tt.program)
			assert.Empty(t, addr)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestDecodeRejectsSingleCharMutations(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	addr, err := Encode("pocx", 0, randomProgram(rng))
	require.NoError(t, err)

	alphabet := bech32Charset + "pocxt1"
	for i := 0; i < len(addr); i++ {
		for _, c := range alphabet {
			if rune(addr[i]) == c {
				continue
			}
			mutated := addr[:i] + string(c) + addr[i+1:]
			_, _, _, err := Decode(mutated)
			assert.Errorf(t, err, "mutation %q at position %d was accepted", mutated, i)
		}
	}
}

func TestDecodeRejectsMixedCase(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	addr, err := Encode("pocx", 0, randomProgram(rng))
	require.NoError(t, err)

	mixed := strings.ToUpper(addr[:8]) + addr[8:]
	_, _, _, err = Decode(mixed)
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestDecodeAcceptsUniformUppercase(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	program := randomProgram(rng)
	addr, err := Encode("pocx", 0, program)
	require.NoError(t, err)

	hrp, ver, gotProgram, err := Decode(strings.ToUpper(addr))
	require.NoError(t, err)
	assert.Equal(t, "pocx", hrp)
	assert.Equal(t, byte(0), ver)
	assert.Equal(t, program, gotProgram)
}

func TestDecodeForNetwork(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	program := randomProgram(rng)

	mainnetAddr, err := Encode("pocx", 0, program)
	require.NoError(t, err)
	testnetAddr, err := Encode("tpocx", 0, program)
	require.NoError(t, err)

	_, gotProgram, err := DecodeForNetwork(mainnetAddr, false)
	require.NoError(t, err)
	assert.Equal(t, program, gotProgram)

	_, _, err = DecodeForNetwork(mainnetAddr, true)
	assert.ErrorIs(t, err, ErrWrongNetwork)

	_, _, err = DecodeForNetwork(testnetAddr, false)
	assert.ErrorIs(t, err, ErrWrongNetwork)
}
