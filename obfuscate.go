package crypt

import (
	"bytes"
	"strconv"
	"strings"
	"unicode/utf8"
)

// obfuscateQuoteRune escapes the next rune literally in an obfuscated
// segment
const obfuscateQuoteRune = '!'

// obfuscateSegment obfuscates a single path segment.
//
// This is not encryption: it rotates each character by a distance
// derived from the segment's rune sum and the name key, keeping names
// roughly the same length and shape while discouraging casual reading.
// The rune sum mod 256 is stored as a "<n>." prefix so the rotation can
// be undone.
func (c *Cipher) obfuscateSegment(plaintext string) string {
	if plaintext == "" {
		return ""
	}

	// If the string isn't valid UTF-8 then don't rotate; just quote it
	if !utf8.ValidString(plaintext) {
		return "!." + plaintext
	}

	var dir int
	for _, runeValue := range plaintext {
		dir += int(runeValue)
	}
	dir %= 256

	var result bytes.Buffer
	_, _ = result.WriteString(strconv.Itoa(dir) + ".")

	// Augment the stored distance with the name key so plain knowledge
	// of the scheme isn't enough to undo it
	for _, b := range c.nameKey {
		dir += int(b)
	}

	// Each character rotates within its own range so digits stay
	// digits, letters stay letters and so on
	for _, runeValue := range plaintext {
		switch {
		case runeValue == obfuscateQuoteRune:
			_, _ = result.WriteRune(obfuscateQuoteRune)
			_, _ = result.WriteRune(obfuscateQuoteRune)

		case runeValue >= '0' && runeValue <= '9':
			thisdir := (dir % 9) + 1
			newRune := '0' + (int(runeValue)-'0'+thisdir)%10
			_, _ = result.WriteRune(rune(newRune))

		case (runeValue >= 'A' && runeValue <= 'Z') ||
			(runeValue >= 'a' && runeValue <= 'z'):
			// Rotate across the full 52-letter A-Za-z ring so trivial
			// A->a mappings don't happen
			thisdir := dir%25 + 1
			pos := int(runeValue - 'A')
			if pos >= 26 {
				pos -= 6 // lower case
			}
			pos = (pos + thisdir) % 52
			if pos >= 26 {
				pos += 6
			}
			_, _ = result.WriteRune(rune('A' + pos))

		case runeValue >= 0xA0 && runeValue <= 0xFF:
			// Latin 1 supplement
			thisdir := (dir % 95) + 1
			newRune := 0xA0 + (int(runeValue)-0xA0+thisdir)%96
			_, _ = result.WriteRune(rune(newRune))

		case runeValue >= 0x100:
			// Rotate within the rune's own 256-rune block
			thisdir := (dir % 127) + 1
			base := int(runeValue - runeValue%256)
			newRune := rune(base + (int(runeValue)-base+thisdir)%256)
			if !utf8.ValidRune(newRune) {
				// Rotated into an invalid rune; quote the original
				_, _ = result.WriteRune(obfuscateQuoteRune)
				_, _ = result.WriteRune(runeValue)
			} else {
				_, _ = result.WriteRune(newRune)
			}

		default:
			_, _ = result.WriteRune(runeValue)
		}
	}
	return result.String()
}

// deobfuscateSegment undoes obfuscateSegment
func (c *Cipher) deobfuscateSegment(ciphertext string) (string, error) {
	if ciphertext == "" {
		return "", nil
	}
	pos := strings.Index(ciphertext, ".")
	if pos == -1 {
		return "", ErrNotAnEncryptedFile
	}
	num := ciphertext[:pos]
	if num == "!" {
		// No rotation; the original was not valid UTF-8
		return ciphertext[pos+1:], nil
	}
	dir, err := strconv.Atoi(num)
	if err != nil {
		return "", ErrNotAnEncryptedFile
	}
	for _, b := range c.nameKey {
		dir += int(b)
	}

	var result bytes.Buffer
	inQuote := false
	for _, runeValue := range ciphertext[pos+1:] {
		switch {
		case inQuote:
			_, _ = result.WriteRune(runeValue)
			inQuote = false

		case runeValue == obfuscateQuoteRune:
			inQuote = true

		case runeValue >= '0' && runeValue <= '9':
			thisdir := (dir % 9) + 1
			newRune := '0' + int(runeValue) - '0' - thisdir
			if newRune < '0' {
				newRune += 10
			}
			_, _ = result.WriteRune(rune(newRune))

		case (runeValue >= 'A' && runeValue <= 'Z') ||
			(runeValue >= 'a' && runeValue <= 'z'):
			thisdir := dir%25 + 1
			pos := int(runeValue - 'A')
			if pos >= 26 {
				pos -= 6
			}
			pos -= thisdir
			if pos < 0 {
				pos += 52
			}
			if pos >= 26 {
				pos += 6
			}
			_, _ = result.WriteRune(rune('A' + pos))

		case runeValue >= 0xA0 && runeValue <= 0xFF:
			thisdir := (dir % 95) + 1
			newRune := 0xA0 + int(runeValue) - 0xA0 - thisdir
			if newRune < 0xA0 {
				newRune += 96
			}
			_, _ = result.WriteRune(rune(newRune))

		case runeValue >= 0x100:
			thisdir := (dir % 127) + 1
			base := int(runeValue - runeValue%256)
			newRune := int(runeValue) - thisdir
			if newRune < base {
				newRune += 256
			}
			_, _ = result.WriteRune(rune(newRune))

		default:
			_, _ = result.WriteRune(runeValue)
		}
	}
	return result.String(), nil
}
