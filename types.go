package crypt

import (
	"crypto/aes"
	"fmt"
	"strings"

	"golang.org/x/crypto/nacl/secretbox"
)

// Format constants. These are fixed by the on-disk container and name
// formats; changing any of them breaks compatibility with existing
// encrypted data.
const (
	// nameCipherBlockSize is the block size of the cipher underlying
	// the wide-block name encryption mode
	nameCipherBlockSize = aes.BlockSize

	// fileMagic is written at the start of every encrypted file
	fileMagic = "RCLONE\x00\x00"

	fileMagicSize  = len(fileMagic)
	fileNonceSize  = 24
	fileHeaderSize = fileMagicSize + fileNonceSize

	// blockDataSize is the plaintext capacity of one sealed block;
	// blockHeaderSize is the authentication overhead added per block
	blockHeaderSize = secretbox.Overhead
	blockDataSize   = 64 * 1024
	blockSize       = blockHeaderSize + blockDataSize

	// maxNameLength bounds the decoded size of an encrypted name
	// segment. Longer input is rejected before the name cipher runs.
	maxNameLength = 2048

	// defaultSuffix is appended to file names when name encryption is
	// off, so that the remote doesn't try to interpret the contents
	defaultSuffix = ".bin"
)

// NameEncryptionMode determines how file and directory names are
// handled
type NameEncryptionMode uint8

const (
	// NameEncryptionStandard encrypts each path segment with the
	// wide-block name cipher and renders it with the configured
	// encoding
	NameEncryptionStandard NameEncryptionMode = iota
	// NameEncryptionOff leaves names in plaintext, adding a suffix to
	// file names
	NameEncryptionOff
	// NameEncryptionObfuscated rotates the characters of each segment
	// with a key-dependent distance. Not secure, but keeps names
	// readable length-wise while discouraging casual inspection.
	NameEncryptionObfuscated
)

// NewNameEncryptionMode turns a string into a NameEncryptionMode
func NewNameEncryptionMode(s string) (mode NameEncryptionMode, err error) {
	s = strings.ToLower(s)
	switch s {
	case "off":
		mode = NameEncryptionOff
	case "standard":
		mode = NameEncryptionStandard
	case "obfuscate":
		mode = NameEncryptionObfuscated
	default:
		err = fmt.Errorf("unknown file name encryption mode %q", s)
	}
	return mode, err
}

// String turns mode into a human-readable string
func (mode NameEncryptionMode) String() (out string) {
	switch mode {
	case NameEncryptionOff:
		out = "off"
	case NameEncryptionStandard:
		out = "standard"
	case NameEncryptionObfuscated:
		out = "obfuscate"
	default:
		out = fmt.Sprintf("Unknown mode #%d", mode)
	}
	return out
}

// NameEncoding selects the text encoding used to render encrypted name
// bytes. The encoding changes only the textual surface of a name,
// never the underlying ciphertext.
type NameEncoding uint8

const (
	// NameEncodingBase32 is lower-cased unpadded base32 with the
	// extended hex alphabet, safe for case-insensitive remotes
	NameEncodingBase32 NameEncoding = iota
	// NameEncodingBase64 is unpadded URL-safe base64
	NameEncodingBase64
	// NameEncodingBase32768 packs 15 bits per UTF-16 code point, for
	// remotes that count name length in UTF-16 units
	NameEncodingBase32768
)

// NewNameEncoding turns a string into a NameEncoding
func NewNameEncoding(s string) (enc NameEncoding, err error) {
	s = strings.ToLower(s)
	switch s {
	case "base32":
		enc = NameEncodingBase32
	case "base64":
		enc = NameEncodingBase64
	case "base32768":
		enc = NameEncodingBase32768
	default:
		err = fmt.Errorf("unknown file name encoding %q", s)
	}
	return enc, err
}

// String turns enc into a human-readable string
func (enc NameEncoding) String() (out string) {
	switch enc {
	case NameEncodingBase32:
		out = "base32"
	case NameEncodingBase64:
		out = "base64"
	case NameEncodingBase32768:
		out = "base32768"
	default:
		out = fmt.Sprintf("Unknown encoding #%d", enc)
	}
	return out
}

// Config describes a cipher instance. The zero value of every field
// except Password is usable: standard name encryption, base32
// encoding, encrypted directory names, built-in salt and suffix.
type Config struct {
	// Password is the credential all key material is derived from.
	// An empty password derives all-zero keys; this is a
	// compatibility escape hatch, not a recommendation.
	Password string

	// Salt is mixed into key derivation. Empty means a fixed
	// built-in salt, which keeps configs portable at the cost of
	// rainbow-table resistance.
	Salt string

	// NameEncryption selects how file and directory names are
	// transformed
	NameEncryption NameEncryptionMode

	// NameEncoding selects the textual encoding of encrypted names
	NameEncoding NameEncoding

	// PlaintextDirNames leaves every path segment except the last in
	// plaintext. The default encrypts directory names as well.
	PlaintextDirNames bool

	// Suffix is appended to file names when name encryption is off.
	// Empty means ".bin"; the special value "none" means no suffix.
	// Anything else must start with a dot.
	Suffix string
}

// Validate checks that the configuration describes a cipher this
// package can build
func (c *Config) Validate() error {
	if c == nil {
		return &ValidationError{Message: "config cannot be nil"}
	}
	switch c.NameEncryption {
	case NameEncryptionStandard, NameEncryptionOff, NameEncryptionObfuscated:
	default:
		return &ValidationError{
			Field:   "NameEncryption",
			Value:   uint8(c.NameEncryption),
			Message: "unknown file name encryption mode",
		}
	}
	switch c.NameEncoding {
	case NameEncodingBase32, NameEncodingBase64, NameEncodingBase32768:
	default:
		return &ValidationError{
			Field:   "NameEncoding",
			Value:   uint8(c.NameEncoding),
			Message: "unknown file name encoding",
		}
	}
	if c.Suffix != "" && !strings.EqualFold(c.Suffix, "none") && !strings.HasPrefix(c.Suffix, ".") {
		return &ValidationError{
			Field:   "Suffix",
			Value:   c.Suffix,
			Message: `must be "none" or start with "."`,
		}
	}
	return nil
}

// suffix resolves the configured suffix to the literal string appended
// to file names
func (c *Config) suffix() string {
	if c.Suffix == "" {
		return defaultSuffix
	}
	if strings.EqualFold(c.Suffix, "none") {
		return ""
	}
	return c.Suffix
}
