package ranges

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		name         string
		number       int
		affix        string
		want         []string
		wantExpanded bool
	}{
		{"no affix", 25, "", []string{"25"}, false},
		{"letter affix", 25, "a", []string{"25a"}, false},
		{"numeric range", 3, "-5", []string{"3", "4", "5"}, true},
		{"spaced range", 32, "- 35", []string{"32", "33", "34", "35"}, true},
		{"en dash with letter", 10, "–10a", []string{"10", "10a"}, true},
		{"range ending on letter", 10, "-12a", []string{"10", "11", "12a"}, true},
		{"letter range", 3, "a-d", []string{"3a", "3b", "3c", "3d"}, true},
		{"upper case letter range", 3, "A - C", []string{"3A", "3B", "3C"}, true},
		{"mixed case letter range", 3, "a-C", []string{"3 a-C"}, false},
		{"descending range", 32, "-5", []string{"32-5"}, false},
		{"range too wide", 1, "-100", []string{"1-100"}, false},
		{"fraction", 25, "1/3", []string{"25 1/3"}, false},
		{"slash", 32, "/5", []string{"32/5"}, false},
		{"free text", 34, "am 3. Schafott", []string{"34 am 3. Schafott"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, expanded := Expand(tt.number, tt.affix)
			assert.Equal(t, tt.wantExpanded, expanded)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandWithoutHouseNumber(t *testing.T) {
	got, expanded := Expand(0, "")
	assert.False(t, expanded)
	assert.Nil(t, got)
}

func TestExpandMaxSpan(t *testing.T) {
	got, expanded := Expand(1, "-51")
	assert.True(t, expanded)
	assert.Len(t, got, MaxSpan+1)
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "7", Join(7, ""))
	assert.Equal(t, "7b", Join(7, "b"))
	assert.Equal(t, "7-9", Join(7, "-9"))
	assert.Equal(t, "10–10a", Join(10, "–10a"))
	assert.Equal(t, "32/ 5", Join(32, "/ 5"))
	assert.Equal(t, "25 1/3", Join(25, "1/3"))
}
