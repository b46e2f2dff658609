package crypt

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Cipher operations. Content errors
// (ErrEncrypted*) and name errors are kept distinct: a bad name decode
// usually means a wrong password, a bad block means a wrong password or
// corrupted data, and the two cannot be told apart from the ciphertext.
var (
	ErrBadDecryptUTF8          = errors.New("bad decryption - utf-8 invalid")
	ErrBadDecryptControlChar   = errors.New("bad decryption - contains control chars")
	ErrNotAMultipleOfBlocksize = errors.New("not a multiple of blocksize")
	ErrTooShortAfterDecode     = errors.New("too short after decode")
	ErrTooLongAfterDecode      = errors.New("too long after decode")
	ErrBadBase32Encoding       = errors.New("bad base32 filename encoding")
	ErrNotAnEncryptedFile      = errors.New("not an encrypted file - missing suffix")
	ErrEncryptedFileTooShort   = errors.New("file is too short to be encrypted")
	ErrEncryptedFileBadHeader  = errors.New("file has truncated block header")
	ErrEncryptedBadMagic       = errors.New("not an encrypted file - bad magic string")
	ErrEncryptedBadBlock       = errors.New("failed to authenticate decrypted block - bad password?")
)

// ValidationError represents a configuration validation failure
type ValidationError struct {
	Field   string // The field that failed validation
	Value   any    // The invalid value
	Message string // Human-readable error message
	Err     error  // Underlying error, if any
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
