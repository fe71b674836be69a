package rosbag

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIsIgnoresDetailAndCause(t *testing.T) {
	err := wrapErr(KindLz4Error, "some detail", fmt.Errorf("boom"))
	assert.True(t, errors.Is(err, ErrKind(KindLz4Error)))
	assert.False(t, errors.Is(err, ErrKind(KindBzip2Error)))
}

func TestErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := wrapErr(KindBzip2Error, "wrapping", cause)
	assert.Same(t, cause, errors.Unwrap(err))
}

func TestErrorMessageFormats(t *testing.T) {
	assert.Contains(t, newErr(KindOutOfBounds, "").Error(), "OutOfBounds")
	assert.Contains(t, newErr(KindInvalidHeader, "bad field").Error(), "bad field")
	withCause := wrapErr(KindLz4Error, "decompress failed", fmt.Errorf("short block"))
	assert.Contains(t, withCause.Error(), "short block")
}
