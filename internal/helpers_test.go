package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	date := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "05.03.2024 14:30 UTC", Format(date))
}

func TestFormatUnix(t *testing.T) {
	assert.Equal(t, "01.01.1970 00:00 UTC", FormatUnix(0))
	assert.Equal(t, "05.03.2024 14:30 UTC", FormatUnix(1709649000))
}
