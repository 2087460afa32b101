package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusValid(t *testing.T) {
	for _, s := range AllOrderStatuses {
		assert.True(t, s.Valid(), "status %q", s)
	}

	assert.False(t, OrderStatus("paid").Valid())
	assert.False(t, OrderStatus("").Valid())
	assert.False(t, OrderStatus("New").Valid(), "statuses are lowercase")
}
