package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNullHelpers(t *testing.T) {
	assert.False(t, StringToNullString("").Valid)
	assert.Equal(t, "x", StringToNullString("x").String)

	assert.False(t, TimeToNullTime(time.Time{}).Valid)
	now := time.Now()
	assert.True(t, TimeToNullTime(now).Valid)

	assert.Equal(t, 1, BoolToSmallInt(true))
	assert.Equal(t, 0, BoolToSmallInt(false))
}
