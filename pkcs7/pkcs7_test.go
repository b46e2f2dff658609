package pkcs7

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPad(t *testing.T) {
	for _, test := range []struct {
		n        int
		in       []byte
		expected []byte
	}{
		{8, []byte{}, []byte{8, 8, 8, 8, 8, 8, 8, 8}},
		{8, []byte{1}, []byte{1, 7, 7, 7, 7, 7, 7, 7}},
		{8, []byte{1, 2, 3}, []byte{1, 2, 3, 5, 5, 5, 5, 5}},
		{8, []byte{1, 2, 3, 4, 5, 6, 7}, []byte{1, 2, 3, 4, 5, 6, 7, 1}},
		{8, []byte{1, 2, 3, 4, 5, 6, 7, 8}, []byte{1, 2, 3, 4, 5, 6, 7, 8, 8, 8, 8, 8, 8, 8, 8, 8}},
		{16, []byte{}, []byte{16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16}},
		{16, []byte{1}, []byte{1, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15}},
	} {
		actual := Pad(test.n, test.in)
		assert.Equal(t, test.expected, actual, fmt.Sprintf("Pad(%d, %v)", test.n, test.in))
		recovered, err := Unpad(test.n, actual)
		assert.NoError(t, err)
		assert.Equal(t, test.in, recovered)
	}
	assert.Panics(t, func() { Pad(1, []byte{}) }, "bad multiple")
	assert.Panics(t, func() { Pad(256, []byte{}) }, "bad multiple")
}

func TestUnpad(t *testing.T) {
	// We've tested the valid cases above, now concentrate on the invalid ones
	for _, test := range []struct {
		n           int
		in          []byte
		expectedErr error
	}{
		{8, []byte{}, ErrPaddingNotFound},
		{8, []byte{1, 2, 3}, ErrPaddingNotAMultiple},
		{8, []byte{1, 2, 3, 4, 5, 6, 7, 9}, ErrPaddingTooLong},
		{8, []byte{1, 2, 3, 4, 5, 6, 7, 0}, ErrPaddingTooShort},
		{8, []byte{1, 2, 3, 4, 5, 6, 2, 3}, ErrPaddingNotAllTheSame},
		{16, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 17}, ErrPaddingTooLong},
	} {
		actual, actualErr := Unpad(test.n, test.in)
		assert.Nil(t, actual)
		assert.Equal(t, test.expectedErr, actualErr, fmt.Sprintf("Unpad(%d, %v)", test.n, test.in))
	}
	assert.Panics(t, func() { _, _ = Unpad(1, []byte{}) }, "bad multiple")
	assert.Panics(t, func() { _, _ = Unpad(256, []byte{}) }, "bad multiple")
}
