package util

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetenv(t *testing.T) {
	_ = os.Setenv("EQUITY_TEST_KEY", "value")
	defer func() {
		_ = os.Unsetenv("EQUITY_TEST_KEY")
	}()

	assert.Equal(t, "value", Getenv("EQUITY_TEST_KEY", "default"))
	assert.Equal(t, "default", Getenv("EQUITY_TEST_KEY_MISSING", "default"))
}
