package crypt

import (
	"encoding/base32"
	"encoding/base64"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Max-Sum/base32768"
	"github.com/rfjakob/eme"

	"github.com/absfs/crypt/pkcs7"
)

// fileNameEncoding renders encrypted name bytes as text and parses them
// back. The encoding only changes the textual surface of a name; the
// underlying ciphertext bytes are the same for every encoding.
type fileNameEncoding interface {
	EncodeToString(src []byte) string
	DecodeString(s string) ([]byte, error)
}

// caseInsensitiveBase32Encoding is unpadded base32 with the extended
// hex alphabet, emitted in lower case. Decoding accepts either case so
// names survive case-insensitive remotes.
type caseInsensitiveBase32Encoding struct{}

func (caseInsensitiveBase32Encoding) EncodeToString(src []byte) string {
	encoded := base32.HexEncoding.EncodeToString(src)
	return strings.ToLower(encoded)
}

func (caseInsensitiveBase32Encoding) DecodeString(s string) ([]byte, error) {
	if strings.HasSuffix(s, "=") {
		// Stripping the padding ourselves means a trailing = can
		// never be valid input
		return nil, ErrBadBase32Encoding
	}
	roundUpToMultipleOf8 := (len(s) + 7) &^ 7
	equals := roundUpToMultipleOf8 - len(s)
	s = strings.ToUpper(s) + "========"[:equals]
	return base32.HexEncoding.DecodeString(s)
}

// encoding returns the fileNameEncoding for enc, or nil if enc is not a
// known value
func (enc NameEncoding) encoding() fileNameEncoding {
	switch enc {
	case NameEncodingBase32:
		return caseInsensitiveBase32Encoding{}
	case NameEncodingBase64:
		return base64.RawURLEncoding
	case NameEncodingBase32768:
		return base32768.SafeEncoding
	}
	return nil
}

// encryptSegment encrypts a single path segment.
//
// The segment is PKCS#7 padded to the AES block size, encrypted with
// EME (a wide-block mode, so the whole padded name is one block) and
// rendered with the configured encoding. EME is deterministic: equal
// names encrypt equally anywhere in the tree, but names sharing a
// prefix do not produce ciphertext sharing a prefix.
func (c *Cipher) encryptSegment(plaintext string) string {
	if plaintext == "" {
		return ""
	}
	paddedPlaintext := pkcs7.Pad(nameCipherBlockSize, []byte(plaintext))
	ciphertext := eme.Transform(c.block, c.nameTweak[:], paddedPlaintext, eme.DirectionEncrypt)
	return c.fileNameEnc.EncodeToString(ciphertext)
}

// decryptSegment decrypts a single path segment
func (c *Cipher) decryptSegment(ciphertext string) (string, error) {
	if ciphertext == "" {
		return "", nil
	}
	rawCiphertext, err := c.fileNameEnc.DecodeString(ciphertext)
	if err != nil {
		return "", err
	}
	if len(rawCiphertext)%nameCipherBlockSize != 0 {
		return "", ErrNotAMultipleOfBlocksize
	}
	if len(rawCiphertext) == 0 {
		// not possible if DecodeString is working correctly
		return "", ErrTooShortAfterDecode
	}
	if len(rawCiphertext) > maxNameLength {
		return "", ErrTooLongAfterDecode
	}
	paddedPlaintext := eme.Transform(c.block, c.nameTweak[:], rawCiphertext, eme.DirectionDecrypt)
	plaintext, err := pkcs7.Unpad(nameCipherBlockSize, paddedPlaintext)
	if err != nil {
		return "", err
	}
	// Garbage here means the wrong key was used, not a genuine name
	if !utf8.Valid(plaintext) {
		return "", ErrBadDecryptUTF8
	}
	for _, r := range string(plaintext) {
		if unicode.IsControl(r) {
			return "", ErrBadDecryptControlChar
		}
	}
	return string(plaintext), nil
}
