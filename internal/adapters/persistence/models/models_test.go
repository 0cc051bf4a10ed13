package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAdminResetTokenIsExpired(t *testing.T) {
	expires := time.Date(2025, time.March, 12, 9, 15, 0, 0, time.UTC)
	token := &AdminResetToken{ExpiresAt: expires}

	assert.False(t, token.IsExpired(expires.Add(-time.Second)))
	assert.True(t, token.IsExpired(expires))
	assert.True(t, token.IsExpired(expires.Add(time.Minute)))
}
