package crypt

import (
	"bytes"

	"golang.org/x/crypto/nacl/secretbox"
)

var fileMagicBytes = []byte(fileMagic)

// encryptData encrypts plaintext into a fresh buffer using the initial
// nonce passed in, which is mutated in place: the nonce for chunk i+1
// strictly depends on chunk i having been sealed, so chunks cannot be
// processed in parallel.
func (c *Cipher) encryptData(plaintext []byte, n *nonce) []byte {
	out := make([]byte, 0, c.EncryptedSize(int64(len(plaintext))))
	out = append(out, fileMagicBytes...)
	out = append(out, n[:]...)
	// empty plaintext encrypts to just the header
	for len(plaintext) > 0 {
		chunk := plaintext
		if len(chunk) > blockDataSize {
			chunk = chunk[:blockDataSize]
		}
		out = secretbox.Seal(out, chunk, n.pointer(), &c.dataKey)
		n.increment()
		plaintext = plaintext[len(chunk):]
	}
	return out
}

// EncryptData encrypts plaintext into a new buffer laid out as the
// 32 byte file header followed by one sealed chunk per 64 KiB of
// plaintext. The initial nonce is drawn from the Cipher's randomness
// source.
//
// The nonce buffer is mutated in place while sealing chunks, so a
// single Cipher must not run two EncryptData calls concurrently.
func (c *Cipher) EncryptData(plaintext []byte) ([]byte, error) {
	var n nonce
	if err := n.fromReader(c.cryptoRand); err != nil {
		return nil, err
	}
	return c.encryptData(plaintext, &n), nil
}

// DecryptData decrypts a buffer produced by EncryptData. A chunk that
// fails authentication means a wrong key or corrupted data, which are
// indistinguishable; no partial plaintext is returned.
func (c *Cipher) DecryptData(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < fileHeaderSize {
		return nil, ErrEncryptedFileTooShort
	}
	if !bytes.Equal(ciphertext[:fileMagicSize], fileMagicBytes) {
		return nil, ErrEncryptedBadMagic
	}
	var n nonce
	n.fromBuf(ciphertext[fileMagicSize:fileHeaderSize])

	// Rejects a trailing chunk too short to hold any plaintext
	size, err := c.DecryptedSize(int64(len(ciphertext)))
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, size)
	remaining := ciphertext[fileHeaderSize:]
	for len(remaining) > 0 {
		chunk := remaining
		if len(chunk) > blockSize {
			chunk = chunk[:blockSize]
		}
		var ok bool
		out, ok = secretbox.Open(out, chunk, n.pointer(), &c.dataKey)
		if !ok {
			return nil, ErrEncryptedBadBlock
		}
		n.increment()
		remaining = remaining[len(chunk):]
	}
	return out, nil
}

// EncryptedSize calculates the size of the data when encrypted. It is
// pure arithmetic over the chunking rule; no data is touched.
func (c *Cipher) EncryptedSize(size int64) int64 {
	blocks, residue := size/blockDataSize, size%blockDataSize
	encryptedSize := int64(fileHeaderSize) + blocks*(blockHeaderSize+blockDataSize)
	if residue != 0 {
		encryptedSize += blockHeaderSize + residue
	}
	return encryptedSize
}

// DecryptedSize calculates the size of the data when decrypted. A
// trailing partial chunk no bigger than the per-chunk overhead cannot
// contain plaintext and marks the file as truncated.
func (c *Cipher) DecryptedSize(size int64) (int64, error) {
	size -= int64(fileHeaderSize)
	if size < 0 {
		return 0, ErrEncryptedFileTooShort
	}
	blocks, residue := size/blockSize, size%blockSize
	decryptedSize := blocks * blockDataSize
	if residue != 0 {
		residue -= blockHeaderSize
		if residue <= 0 {
			return 0, ErrEncryptedFileBadHeader
		}
	}
	decryptedSize += residue
	return decryptedSize, nil
}
