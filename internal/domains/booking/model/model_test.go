package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"barberia/internal/domains/booking/model"
)

func TestStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from model.Status
		to   model.Status
		want bool
	}{
		{name: "confirmed to completed", from: model.StatusConfirmed, to: model.StatusCompleted, want: true},
		{name: "confirmed to cancelled", from: model.StatusConfirmed, to: model.StatusCancelled, want: true},
		{name: "completed is terminal", from: model.StatusCompleted, to: model.StatusCancelled, want: false},
		{name: "cancelled is terminal", from: model.StatusCancelled, to: model.StatusConfirmed, want: false},
		{name: "cancelled cannot complete", from: model.StatusCancelled, to: model.StatusCompleted, want: false},
		{name: "no self transition", from: model.StatusConfirmed, to: model.StatusConfirmed, want: false},
		{name: "unknown status goes nowhere", from: model.Status("pending"), to: model.StatusConfirmed, want: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, test.from.CanTransitionTo(test.to))
		})
	}
}

func TestStatusValid(t *testing.T) {
	assert.True(t, model.StatusConfirmed.Valid())
	assert.True(t, model.StatusCompleted.Valid())
	assert.True(t, model.StatusCancelled.Valid())
	assert.False(t, model.Status("pending").Valid())
	assert.False(t, model.Status("").Valid())
}
