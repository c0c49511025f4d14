// Package descriptor computes the checksum that wallet descriptors carry
// after the '#' separator and builds the wpkh() descriptors handed to the
// node when importing a wallet.
//
// The checksum is the BIP-380 polynomial code: an error detecting code
// over a 5 bit alphabet, extended with a base-3 class accumulator so that
// the full 95 symbol descriptor charset is covered. It must match the
// checksum computed by any standard descriptor tool or the node will
// refuse the import.
package descriptor

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// inputCharset is the fixed alphabet of descriptor symbols. The
	// position of a character determines its contribution to the
	// checksum; characters outside the alphabet contribute nothing.
	inputCharset = "0123456789()[],'/*abcdefgh@:$%{}" +
		"IJKLMNOPQRSTUVWXYZ&+-.;<=>?!^_|~" +
		"ijklmnopqrstuvwxyzABCDEFGH`#\"\\ "

	// checksumCharset is the bech32 alphabet used for the 8 checksum
	// symbols.
	checksumCharset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

	// ChecksumLen is the length of a descriptor checksum.
	ChecksumLen = 8
)

// generator holds the five 40-bit constants of the polymod step.
var generator = [5]uint64{
	0xf5dee51989,
	0xa9fdca3312,
	0x1bab10e32d,
	0x3706b1677a,
	0x644d626ffd,
}

var (
	// ErrInvalidDescriptor ...
	ErrInvalidDescriptor = errors.New(
		"descriptor must end with '#' followed by an 8 character checksum",
	)
	// ErrChecksumMismatch ...
	ErrChecksumMismatch = errors.New("descriptor checksum does not match")
)

func polymod(c uint64, val uint64) uint64 {
	c0 := c >> 35
	c = ((c & 0x7ffffffff) << 5) ^ val
	for i := 0; i < 5; i++ {
		if (c0>>uint(i))&1 == 1 {
			c ^= generator[i]
		}
	}
	return c
}

// Checksum returns the 8 character checksum of the given descriptor body.
// Characters outside the descriptor alphabet are skipped; this is defined
// behavior of the code, not an error.
func Checksum(desc string) string {
	c := uint64(1)
	cls := uint64(0)
	clsCount := 0

	for _, ch := range desc {
		pos := strings.IndexRune(inputCharset, ch)
		if pos < 0 {
			continue
		}
		c = polymod(c, uint64(pos)&31)
		cls = cls*3 + uint64(pos>>5)
		clsCount++
		if clsCount == 3 {
			c = polymod(c, cls)
			cls = 0
			clsCount = 0
		}
	}
	if clsCount > 0 {
		c = polymod(c, cls)
	}
	for i := 0; i < ChecksumLen; i++ {
		c = polymod(c, 0)
	}
	c ^= 1

	checksum := make([]byte, ChecksumLen)
	for i := 0; i < ChecksumLen; i++ {
		checksum[i] = checksumCharset[(c>>uint(5*(ChecksumLen-1-i)))&31]
	}
	return string(checksum)
}

// AppendChecksum returns the descriptor body completed with its '#'
// separator and checksum.
func AppendChecksum(desc string) string {
	return fmt.Sprintf("%s#%s", desc, Checksum(desc))
}

// SplitChecksum splits a full descriptor into its body and checksum. It
// fails with ErrInvalidDescriptor if the trailing checksum is missing or
// has the wrong shape.
func SplitChecksum(desc string) (string, string, error) {
	sep := strings.LastIndexByte(desc, '#')
	if sep < 0 {
		return "", "", ErrInvalidDescriptor
	}
	body, checksum := desc[:sep], desc[sep+1:]
	if len(checksum) != ChecksumLen {
		return "", "", ErrInvalidDescriptor
	}
	for i := 0; i < len(checksum); i++ {
		if strings.IndexByte(checksumCharset, checksum[i]) < 0 {
			return "", "", ErrInvalidDescriptor
		}
	}
	return body, checksum, nil
}

// Validate checks the trailing checksum of a full descriptor,
// distinguishing a malformed descriptor (ErrInvalidDescriptor) from a
// well-shaped one whose checksum does not verify (ErrChecksumMismatch).
func Validate(desc string) error {
	body, checksum, err := SplitChecksum(desc)
	if err != nil {
		return err
	}
	if Checksum(body) != checksum {
		return ErrChecksumMismatch
	}
	return nil
}

// Wpkh returns the complete pay-to-witness-pubkey-hash descriptor for the
// given WIF encoded private key.
func Wpkh(wif string) string {
	return AppendChecksum(fmt.Sprintf("wpkh(%s)", wif))
}
