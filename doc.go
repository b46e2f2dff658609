// Package crypt implements the encrypted file container and name
// encryption scheme used by rclone's crypt remotes, operating purely on
// in-memory buffers and path strings.
//
// # Overview
//
// A Cipher is built from a Config holding the password, salt and name
// handling options. All key material is derived once with scrypt and
// held by the Cipher; files and names encrypted by one implementation
// of the format decrypt byte-for-byte under any other.
//
// # File Format
//
// Encrypted file contents use the following format:
//   - Magic bytes (8 bytes): "RCLONE\x00\x00"
//   - Nonce (24 bytes): initial nonce, random per file
//   - Chunks (variable): NaCl secretbox sealed blocks of up to 64 KiB
//     plaintext, each carrying a 16 byte authentication overhead
//
// The nonce is incremented as a little-endian counter after each chunk,
// so chunks are bound to their position: swapping, deleting or
// truncating chunks fails decryption.
//
// # Name Encryption
//
// File and directory names are encrypted one path segment at a time
// with EME (ECB-Mix-ECB), a wide-block mode over AES-256, after PKCS#7
// padding to 16 bytes. Encryption is deterministic: equal names produce
// equal ciphertext, which lets remotes deduplicate, while names sharing
// a prefix do not produce ciphertext sharing a prefix. The ciphertext
// is rendered with one of three encodings: case-insensitive unpadded
// base32 (extended hex alphabet, lower case), unpadded URL-safe base64,
// or base32768 for remotes that count name lengths in UTF-16 units.
//
// Alternatively names can be left in plaintext with a marker suffix, or
// obfuscated with a key-dependent rotation that keeps them readable.
//
// # Basic Usage
//
//	c, err := crypt.New(&crypt.Config{
//	    Password: "correct horse battery staple",
//	    Salt:     "my-salt",
//	})
//	if err != nil {
//	    panic(err)
//	}
//
//	ciphertext, _ := c.EncryptData([]byte("hello"))
//	plaintext, _ := c.DecryptData(ciphertext)
//
//	name := c.EncryptFileName("documents/report.txt")
//	original, _ := c.DecryptFileName(name)
//
// # Security Considerations
//
// An empty password derives all-zero keys. This is part of the format
// and kept for compatibility; it provides no confidentiality.
//
// A single Cipher must not encrypt two buffers concurrently: content
// encryption mutates a nonce in place, and nonce reuse across buffers
// breaks the authenticated encryption. Separate Cipher instances are
// fully independent.
package crypt
