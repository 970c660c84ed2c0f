package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRosterList_PreservesOrder(t *testing.T) {
	roster := NewRosterService()

	list := roster.List()
	assert.NotEmpty(t, list)
	assert.Equal(t, "John Green", list[0].Name)

	// Mutating the returned slice must not affect the roster
	list[0].Name = "changed"
	assert.Equal(t, "John Green", roster.List()[0].Name)
}

func TestRosterFind(t *testing.T) {
	roster := NewRosterService()

	physician, ok := roster.Find("Leila Cameron")
	assert.True(t, ok)
	assert.Equal(t, "/assets/images/dr-cameron.png", physician.Image)

	_, ok = roster.Find("Nobody Here")
	assert.False(t, ok)

	// Exact match only
	_, ok = roster.Find("leila cameron")
	assert.False(t, ok)
}
