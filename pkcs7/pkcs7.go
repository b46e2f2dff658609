// Package pkcs7 implements PKCS#7 padding as defined in RFC 5652.
//
// The pad length is recorded in the padding bytes themselves, so
// padding is unambiguously removable: input whose length is already a
// multiple of the block size gains a whole extra block of padding.
package pkcs7

import "errors"

// Errors returned by Unpad
var (
	ErrPaddingNotFound      = errors.New("bad PKCS#7 padding - not padded")
	ErrPaddingNotAMultiple  = errors.New("bad PKCS#7 padding - not a multiple of blocksize")
	ErrPaddingTooLong       = errors.New("bad PKCS#7 padding - too long")
	ErrPaddingTooShort      = errors.New("bad PKCS#7 padding - too short")
	ErrPaddingNotAllTheSame = errors.New("bad PKCS#7 padding - not all the same")
)

// Pad appends padding to buf so its length is a multiple of n. The
// block size n must be 2..255.
func Pad(n int, buf []byte) []byte {
	if n <= 1 || n >= 256 {
		panic("bad multiple")
	}
	length := len(buf)
	padding := n - (length % n)
	for i := 0; i < padding; i++ {
		buf = append(buf, byte(padding))
	}
	if (len(buf) % n) != 0 {
		panic("padding failed")
	}
	return buf
}

// Unpad removes the padding from buf, returning a slice of buf
func Unpad(n int, buf []byte) ([]byte, error) {
	if n <= 1 || n >= 256 {
		panic("bad multiple")
	}
	length := len(buf)
	if length == 0 {
		return nil, ErrPaddingNotFound
	}
	if (length % n) != 0 {
		return nil, ErrPaddingNotAMultiple
	}
	padding := int(buf[length-1])
	if padding > n {
		return nil, ErrPaddingTooLong
	}
	if padding == 0 {
		return nil, ErrPaddingTooShort
	}
	for i := 0; i < padding; i++ {
		if buf[length-1-i] != byte(padding) {
			return nil, ErrPaddingNotAllTheSame
		}
	}
	return buf[:length-padding], nil
}
