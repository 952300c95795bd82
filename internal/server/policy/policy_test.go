package policy

import (
	"testing"

	"github.com/dmitrijs2005/messagely/internal/server/models"
	"github.com/stretchr/testify/assert"
)

func testMessage() *models.MessageDetail {
	return &models.MessageDetail{
		ID:   1,
		Body: "hi",
		From: models.Profile{Username: "alice"},
		To:   models.Profile{Username: "bob"},
	}
}

func TestCanReadMessage(t *testing.T) {
	t.Parallel()
	m := testMessage()

	tests := []struct {
		identity string
		want     bool
	}{
		{"alice", true},
		{"bob", true},
		{"carol", false},
		{"", false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, CanReadMessage(tc.identity, m), "identity=%q", tc.identity)
	}
}

func TestCanMarkRead(t *testing.T) {
	t.Parallel()
	m := testMessage()

	tests := []struct {
		identity string
		want     bool
	}{
		{"bob", true},
		{"alice", false},
		{"carol", false},
		{"", false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, CanMarkRead(tc.identity, m), "identity=%q", tc.identity)
	}
}

func TestCanSendAs(t *testing.T) {
	t.Parallel()

	assert.True(t, CanSendAs("alice", "alice"))
	assert.False(t, CanSendAs("alice", "bob"))
	assert.False(t, CanSendAs("", "bob"))
}

func TestCanAccessProfile(t *testing.T) {
	t.Parallel()

	assert.True(t, CanAccessProfile("alice", "alice"))
	assert.False(t, CanAccessProfile("alice", "bob"))
	assert.False(t, CanAccessProfile("", "bob"))
}
