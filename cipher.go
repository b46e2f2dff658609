package crypt

import (
	"crypto/aes"
	gocipher "crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/crypto/scrypt"
)

// defaultSalt is mixed into key derivation when no salt is configured.
// Fixed by the format; changing it orphans existing data.
var defaultSalt = []byte{0xA8, 0x0D, 0xF4, 0x3A, 0x8F, 0xBD, 0x03, 0x08, 0xA7, 0xCA, 0xB8, 0x3E, 0x58, 0x1F, 0x86, 0xB1}

// Cipher holds the derived key material and name handling configuration
// for one encrypted remote. Instances are independent; the only caveat
// is that a single Cipher must not encrypt two content buffers
// concurrently (see EncryptData).
type Cipher struct {
	dataKey         [32]byte                  // used for secretbox
	nameKey         [32]byte                  // used for EME
	nameTweak       [nameCipherBlockSize]byte // used for EME
	block           gocipher.Block
	mode            NameEncryptionMode
	fileNameEnc     fileNameEncoding
	dirNameEncrypt  bool
	encryptedSuffix string
	cryptoRand      io.Reader // source of nonces, normally crypto/rand
}

// New creates a Cipher from config, deriving all key material from the
// configured password and salt
func New(config *Config) (*Cipher, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	c := &Cipher{
		mode:            config.NameEncryption,
		fileNameEnc:     config.NameEncoding.encoding(),
		dirNameEncrypt:  !config.PlaintextDirNames,
		encryptedSuffix: config.suffix(),
		cryptoRand:      rand.Reader,
	}
	if err := c.Key(config.Password, config.Salt); err != nil {
		return nil, fmt.Errorf("failed to derive keys: %w", err)
	}
	return c, nil
}

// Key derives the Cipher's key material from password and salt using
// scrypt with the format's fixed cost parameters. The 80 byte output is
// sliced contiguously into data key, name key and name tweak; deriving
// the three independently would break interoperability.
//
// An empty password yields all-zero keys. An empty salt means the
// built-in default salt.
func (c *Cipher) Key(password, salt string) (err error) {
	const keySize = len(c.dataKey) + len(c.nameKey) + len(c.nameTweak)
	saltBytes := defaultSalt
	if salt != "" {
		saltBytes = []byte(salt)
	}
	var key []byte
	if password == "" {
		key = make([]byte, keySize)
	} else {
		key, err = scrypt.Key([]byte(password), saltBytes, 16384, 8, 1, keySize)
		if err != nil {
			return err
		}
	}
	copy(c.dataKey[:], key)
	copy(c.nameKey[:], key[len(c.dataKey):])
	copy(c.nameTweak[:], key[len(c.dataKey)+len(c.nameKey):])
	// Key the name cipher
	c.block, err = aes.NewCipher(c.nameKey[:])
	return err
}

// encryptFileName encrypts a path segment by segment. A version token
// on the final segment is stripped first and re-attached after, so
// versioned names stay recognisable.
func (c *Cipher) encryptFileName(in string) string {
	segments := strings.Split(in, "/")
	for i := range segments {
		if !c.dirNameEncrypt && i != (len(segments)-1) {
			continue
		}

		versioned := false
		var t time.Time
		if i == (len(segments)-1) && hasVersion(segments[i]) {
			var s string
			t, s = removeVersion(segments[i])
			if s != segments[i] {
				segments[i] = s
				versioned = true
			}
		}

		if c.mode == NameEncryptionStandard {
			segments[i] = c.encryptSegment(segments[i])
		} else {
			segments[i] = c.obfuscateSegment(segments[i])
		}

		if versioned {
			segments[i] = addVersion(segments[i], t)
		}
	}
	return strings.Join(segments, "/")
}

// EncryptFileName encrypts a file path
func (c *Cipher) EncryptFileName(in string) string {
	if c.mode == NameEncryptionOff {
		return in + c.encryptedSuffix
	}
	return c.encryptFileName(in)
}

// decryptFileName decrypts a path segment by segment
func (c *Cipher) decryptFileName(in string) (string, error) {
	segments := strings.Split(in, "/")
	for i := range segments {
		var err error
		if !c.dirNameEncrypt && i != (len(segments)-1) {
			continue
		}

		versioned := false
		var t time.Time
		if i == (len(segments)-1) && hasVersion(segments[i]) {
			var s string
			t, s = removeVersion(segments[i])
			if s != segments[i] {
				segments[i] = s
				versioned = true
			}
		}

		if c.mode == NameEncryptionStandard {
			segments[i], err = c.decryptSegment(segments[i])
		} else {
			segments[i], err = c.deobfuscateSegment(segments[i])
		}
		if err != nil {
			return "", err
		}

		if versioned {
			segments[i] = addVersion(segments[i], t)
		}
	}
	return strings.Join(segments, "/"), nil
}

// DecryptFileName decrypts a file path
func (c *Cipher) DecryptFileName(in string) (string, error) {
	if c.mode == NameEncryptionOff {
		remainingLength := len(in) - len(c.encryptedSuffix)
		if remainingLength == 0 || !strings.HasSuffix(in, c.encryptedSuffix) {
			return "", ErrNotAnEncryptedFile
		}
		decrypted := in[:remainingLength]
		if hasVersion(decrypted) {
			// The version token is left in place, but must not be the
			// whole of the name
			_, unversioned := removeVersion(decrypted)
			if unversioned == "" {
				return "", ErrNotAnEncryptedFile
			}
		}
		return decrypted, nil
	}
	return c.decryptFileName(in)
}

// EncryptDirName encrypts a directory path
func (c *Cipher) EncryptDirName(in string) string {
	if c.mode == NameEncryptionOff || !c.dirNameEncrypt {
		return in
	}
	return c.encryptFileName(in)
}

// DecryptDirName decrypts a directory path
func (c *Cipher) DecryptDirName(in string) (string, error) {
	if c.mode == NameEncryptionOff || !c.dirNameEncrypt {
		return in, nil
	}
	return c.decryptFileName(in)
}
