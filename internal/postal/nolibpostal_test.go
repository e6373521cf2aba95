//go:build !libpostal

package postal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUnavailable(t *testing.T) {
	assert.False(t, Available)
	_, err := Parse("Gartenstr. 25")
	assert.ErrorIs(t, err, ErrUnavailable)
}
