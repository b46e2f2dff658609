package crypt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var versionTime = time.Date(2001, 2, 3, 4, 5, 6, 123000000, time.UTC)

func TestHasVersion(t *testing.T) {
	for _, test := range []struct {
		in       string
		expected bool
	}{
		{"potato.txt", false},
		{"potato-v2001-02-03-040506-123.txt", true},
		{"potato-v2001-02-03-040506-123", true},
		{"-v2001-02-03-040506-123", true},
		{"potato-v2001-02-03-040506-12", false},
		{"potato-x2001-02-03-040506-123.txt", false},
	} {
		assert.Equal(t, test.expected, hasVersion(test.in), test.in)
	}
}

func TestAddVersion(t *testing.T) {
	for _, test := range []struct {
		in       string
		expected string
	}{
		{"potato.txt", "potato-v2001-02-03-040506-123.txt"},
		{"potato", "potato-v2001-02-03-040506-123"},
		{"potato.tar.gz", "potato.tar-v2001-02-03-040506-123.gz"},
		{"", "-v2001-02-03-040506-123"},
	} {
		assert.Equal(t, test.expected, addVersion(test.in, versionTime), test.in)
	}
}

func TestRemoveVersion(t *testing.T) {
	for _, test := range []struct {
		in           string
		expectedTime time.Time
		expectedName string
	}{
		{"potato-v2001-02-03-040506-123.txt", versionTime, "potato.txt"},
		{"potato-v2001-02-03-040506-123", versionTime, "potato"},
		{"-v2001-02-03-040506-123", versionTime, ""},
		// No token at all
		{"potato.txt", time.Time{}, "potato.txt"},
		// Token too short
		{"potato-v2001-02-03-040506-12.txt", time.Time{}, "potato-v2001-02-03-040506-12.txt"},
		// Token not before the extension
		{"potato-v2001-02-03-040506-123x.txt", time.Time{}, "potato-v2001-02-03-040506-123x.txt"},
		// Impossible date fails to parse
		{"potato-v2001-13-03-040506-123.txt", time.Time{}, "potato-v2001-13-03-040506-123.txt"},
		// Only the last token is removed
		{"potato-v1970-01-01-010101-123-v2001-02-03-040506-123.txt", versionTime, "potato-v1970-01-01-010101-123.txt"},
	} {
		actualTime, actualName := removeVersion(test.in)
		assert.Equal(t, test.expectedTime, actualTime, test.in)
		assert.Equal(t, test.expectedName, actualName, test.in)
	}
}

func TestAddRemoveVersionRoundTrip(t *testing.T) {
	for _, name := range []string{"potato.txt", "potato", "a/b.tar"} {
		versioned := addVersion(name, versionTime)
		actualTime, actualName := removeVersion(versioned)
		assert.Equal(t, versionTime, actualTime, name)
		assert.Equal(t, name, actualName, name)
	}
}
