package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("SD_TEST_STR", "value")
	t.Setenv("SD_TEST_INT", "42")
	t.Setenv("SD_TEST_BAD_INT", "forty-two")
	t.Setenv("SD_TEST_BOOL", "yes")

	assert.Equal(t, "value", GetEnv("SD_TEST_STR", "fallback"))
	assert.Equal(t, "fallback", GetEnv("SD_TEST_UNSET", "fallback"))
	assert.Equal(t, 42, GetEnvInt("SD_TEST_INT", 1))
	assert.Equal(t, 1, GetEnvInt("SD_TEST_BAD_INT", 1))
	assert.True(t, GetEnvBool("SD_TEST_BOOL", false))
	assert.False(t, GetEnvBool("SD_TEST_UNSET", false))
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("SD_TEST_KEEP", "from-env")
	t.Setenv("SD_TEST_NEW", "")

	applyEnv(`
# comment
SD_TEST_KEEP=from-file
SD_TEST_NEW = "quoted"
not a pair
`)

	assert.Equal(t, "from-env", os.Getenv("SD_TEST_KEEP"))
	assert.Equal(t, "quoted", os.Getenv("SD_TEST_NEW"))
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"STREETDIVIDER_DICT_SOURCE", "WEB_PORT", "PARSE_CACHE_SIZE", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	s := Load()
	assert.Equal(t, "embedded", s.DictSource)
	assert.Equal(t, 8080, s.WebPort)
	assert.Equal(t, 4096, s.CacheSize)
	assert.Equal(t, "info", s.LogLevel)
}
