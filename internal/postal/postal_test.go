package postal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromLabels(t *testing.T) {
	got := fromLabels([]Label{
		{Label: "road", Value: "bundesstraße 2 "},
		{Label: "house_number", Value: "25a"},
		{Label: "city", Value: "berlin"},
	})

	assert.Equal(t, "bundesstraße 2", got.Road)
	assert.Equal(t, "25a", got.HouseNumber)
	assert.Empty(t, got.Unit)
	assert.Equal(t, map[string]string{"city": "berlin"}, got.Other)
}

func TestFromLabelsEmpty(t *testing.T) {
	assert.Equal(t, Components{}, fromLabels(nil))
}
