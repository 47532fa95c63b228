package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	t.Run("Set", func(t *testing.T) {
		t.Setenv("MEDBRIDGE_TEST_STRING", "mock")
		assert.Equal(t, "mock", GetEnvString("MEDBRIDGE_TEST_STRING", "fhir"))
	})

	t.Run("Unset Falls Back", func(t *testing.T) {
		assert.Equal(t, "fhir", GetEnvString("MEDBRIDGE_TEST_STRING_MISSING", "fhir"))
	})
}

func TestGetEnvInt(t *testing.T) {
	t.Run("Set", func(t *testing.T) {
		t.Setenv("MEDBRIDGE_TEST_INT", "250")
		assert.Equal(t, 250, GetEnvInt("MEDBRIDGE_TEST_INT", 100))
	})

	t.Run("Unparseable Falls Back", func(t *testing.T) {
		t.Setenv("MEDBRIDGE_TEST_INT", "fast")
		assert.Equal(t, 100, GetEnvInt("MEDBRIDGE_TEST_INT", 100))
	})

	t.Run("Unset Falls Back", func(t *testing.T) {
		assert.Equal(t, 100, GetEnvInt("MEDBRIDGE_TEST_INT_MISSING", 100))
	})
}

func TestGetEnvBool(t *testing.T) {
	t.Run("Set", func(t *testing.T) {
		t.Setenv("MEDBRIDGE_TEST_BOOL", "true")
		assert.True(t, GetEnvBool("MEDBRIDGE_TEST_BOOL", false))
	})

	t.Run("Unparseable Falls Back", func(t *testing.T) {
		t.Setenv("MEDBRIDGE_TEST_BOOL", "yep")
		assert.False(t, GetEnvBool("MEDBRIDGE_TEST_BOOL", false))
	})
}
