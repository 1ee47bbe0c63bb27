package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleStatus(t *testing.T) {
	today := "2025-06-15"

	tests := []struct {
		name          string
		current       string
		wantStatus    string
		wantDelivered string
	}{
		{"completed goes back to pending", StatusCompleted, StatusPending, ""},
		{"pending becomes completed", StatusPending, StatusCompleted, today},
		{"cancelled becomes completed", StatusCancelled, StatusCompleted, today},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, deliveredAt := ToggleStatus(tt.current, today)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantDelivered, deliveredAt)
		})
	}
}

func TestToggleStatusNeverProducesCancelled(t *testing.T) {
	for _, current := range []string{StatusPending, StatusCancelled, StatusCompleted} {
		status, _ := ToggleStatus(current, "2025-01-01")
		assert.NotEqual(t, StatusCancelled, status)
	}
}
