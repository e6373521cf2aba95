// Package ranges expands house number ranges such as "3-5" or "3a-d" into the
// individual house numbers they cover.
package ranges

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// MaxSpan caps how many numbers a single range may cover.
	MaxSpan = 50
	// MaxHouseNumber is the largest house number a range may end on.
	MaxHouseNumber = 9999
)

var (
	// "-5", " - 5", "–10a"
	reNumberRange = regexp.MustCompile(`^\s*[-–]\s*(\d+)\s*([a-zA-Z]?)\s*$`)
	// "a-d", "a - d"
	reLetterRange = regexp.MustCompile(`^\s*([a-zA-Z])\s*[-–]\s*([a-zA-Z])\s*$`)
)

// Expand returns the house numbers covered by houseNumber and affix. For an
// affix that is not a range, or a range that fails validation, the result is
// the single number with its affix and expanded is false.
func Expand(houseNumber int, affix string) (numbers []string, expanded bool) {
	if houseNumber <= 0 {
		return nil, false
	}
	single := []string{Join(houseNumber, affix)}

	if m := reLetterRange.FindStringSubmatch(affix); m != nil {
		if letters, ok := letterRange(houseNumber, m[1], m[2]); ok {
			return letters, true
		}
		return single, false
	}

	if m := reNumberRange.FindStringSubmatch(affix); m != nil {
		end, err := strconv.Atoi(m[1])
		if err != nil {
			return single, false
		}
		if numbers, ok := numberRange(houseNumber, end, m[2]); ok {
			return numbers, true
		}
	}

	return single, false
}

// Join writes a house number with its affix the way it is usually printed:
// "25a", "3-5", "25 1/3".
func Join(houseNumber int, affix string) string {
	n := strconv.Itoa(houseNumber)
	affix = strings.TrimSpace(affix)
	switch {
	case affix == "":
		return n
	case len(affix) == 1 && (isLower(affix[0]) || isUpper(affix[0])):
		return n + affix
	case strings.HasPrefix(affix, "-"), strings.HasPrefix(affix, "–"), strings.HasPrefix(affix, "/"):
		return n + affix
	}
	return n + " " + affix
}

// letterRange yields 3a, 3b, ... 3d. Both letters must share a case.
func letterRange(n int, from, to string) ([]string, bool) {
	start, end := from[0], to[0]
	sameCase := (isLower(start) && isLower(end)) || (isUpper(start) && isUpper(end))
	if !sameCase || start >= end {
		return nil, false
	}

	prefix := strconv.Itoa(n)
	result := make([]string, 0, end-start+1)
	for c := start; c <= end; c++ {
		result = append(result, prefix+string(c))
	}
	return result, true
}

// numberRange yields start..end. A letter on the end number only survives
// for the last entry: "10-12a" gives 10, 11, 12a. "10-10a" gives 10, 10a.
func numberRange(start, end int, letter string) ([]string, bool) {
	if end == start && letter != "" {
		return []string{strconv.Itoa(start), strconv.Itoa(end) + letter}, true
	}
	if end <= start || end-start > MaxSpan || end > MaxHouseNumber {
		return nil, false
	}

	result := make([]string, 0, end-start+1)
	for i := start; i <= end; i++ {
		result = append(result, strconv.Itoa(i))
	}
	result[len(result)-1] += letter
	return result, true
}

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
