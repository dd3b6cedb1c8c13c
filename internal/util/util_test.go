package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "grow_a_better_solver", SanitizeName("grow a better solver"))
	assert.Equal(t, "a_b_c", SanitizeName("a/b\\c"))
	assert.Equal(t, "plain", SanitizeName("plain"))
}
