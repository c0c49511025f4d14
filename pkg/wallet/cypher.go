package wallet

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"io"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	cypherKeyLen  = 32
	cypherSaltLen = 32
	scryptN       = 1 << 20
	scryptR       = 8
	scryptP       = 1
)

// EncryptOpts is the struct given to the Encrypt method
type EncryptOpts struct {
	PlainText  string
	Passphrase string
}

func (o EncryptOpts) validate() error {
	if len(o.PlainText) <= 0 {
		return ErrNullPlainText
	}
	if len(strings.TrimSpace(o.Passphrase)) <= 0 {
		return ErrNullPassphrase
	}
	return nil
}

// Encrypt encrypts the given plain text with a key stretched from the
// passphrase. The random salt and nonce travel inside the returned
// base64 string, so the passphrase alone is enough to decrypt it later.
func Encrypt(opts EncryptOpts) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}

	salt := make([]byte, cypherSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	gcm, err := newGCM([]byte(opts.Passphrase), salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	data := gcm.Seal(nonce, nonce, []byte(opts.PlainText), nil)
	data = append(data, salt...)
	return base64.StdEncoding.EncodeToString(data), nil
}

// DecryptOpts is the struct given to the Decrypt method
type DecryptOpts struct {
	CypherText string
	Passphrase string
}

func (o DecryptOpts) validate() error {
	if len(o.CypherText) <= 0 {
		return ErrNullCypherText
	}
	if len(strings.TrimSpace(o.Passphrase)) <= 0 {
		return ErrNullPassphrase
	}
	return nil
}

// Decrypt reverses Encrypt. A wrong passphrase, like any tampering with
// the cypher text, makes the authenticated decryption fail.
func Decrypt(opts DecryptOpts) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}

	data, err := base64.StdEncoding.DecodeString(opts.CypherText)
	if err != nil {
		return "", ErrInvalidCypherText
	}
	if len(data) <= cypherSaltLen {
		return "", ErrInvalidCypherText
	}

	salt, data := data[len(data)-cypherSaltLen:], data[:len(data)-cypherSaltLen]
	gcm, err := newGCM([]byte(opts.Passphrase), salt)
	if err != nil {
		return "", err
	}
	if len(data) < gcm.NonceSize() {
		return "", ErrInvalidCypherText
	}

	nonce, cypherText := data[:gcm.NonceSize()], data[gcm.NonceSize():]
	plainText, err := gcm.Open(nil, nonce, cypherText, nil)
	if err != nil {
		return "", ErrWrongPassphrase
	}
	return string(plainText), nil
}

func newGCM(passphrase, salt []byte) (cipher.AEAD, error) {
	key, err := scrypt.Key(passphrase, salt, scryptN, scryptR, scryptP, cypherKeyLen)
	if err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
