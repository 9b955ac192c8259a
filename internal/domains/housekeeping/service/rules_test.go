package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hostal/internal/domains/housekeeping/model"
	staffModel "hostal/internal/domains/staff/model"
)

func TestComputePriority(t *testing.T) {
	tests := []struct {
		name            string
		totalAmount     float64
		specialRequests string
		expected        string
	}{
		{
			name:        "medium priority for a regular reservation",
			totalAmount: 50000,
			expected:    model.PriorityMedium,
		},
		{
			name:        "high priority above the amount threshold",
			totalAmount: 150001,
			expected:    model.PriorityHigh,
		},
		{
			name:        "amount exactly at the threshold stays medium",
			totalAmount: 150000,
			expected:    model.PriorityMedium,
		},
		{
			name:            "urgent keyword wins over a low amount",
			totalAmount:     10000,
			specialRequests: "Limpieza URGENTE antes del mediodía",
			expected:        model.PriorityUrgent,
		},
		{
			name:            "vip keyword wins over the high amount tier",
			totalAmount:     500000,
			specialRequests: "Huésped VIP, atención preferente",
			expected:        model.PriorityUrgent,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, computePriority(test.totalAmount, test.specialRequests))
		})
	}
}

func TestEstimateMinutes(t *testing.T) {
	tests := []struct {
		name        string
		guestCount  int
		totalAmount float64
		expected    int
	}{
		{
			name:        "base duration for a small party",
			guestCount:  2,
			totalAmount: 40000,
			expected:    30,
		},
		{
			name:        "medium party adds fifteen minutes",
			guestCount:  3,
			totalAmount: 40000,
			expected:    45,
		},
		{
			name:        "large party adds thirty minutes",
			guestCount:  5,
			totalAmount: 40000,
			expected:    60,
		},
		{
			name:        "premium amount adds ten minutes",
			guestCount:  2,
			totalAmount: 90000,
			expected:    40,
		},
		{
			name:        "high amount adds fifteen minutes",
			guestCount:  2,
			totalAmount: 200000,
			expected:    45,
		},
		{
			name:        "large party with high amount stacks both tiers",
			guestCount:  6,
			totalAmount: 200000,
			expected:    75,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, estimateMinutes(test.guestCount, test.totalAmount))
		})
	}
}

func TestAssignHousekeeper(t *testing.T) {
	roster := []staffModel.Staff{
		{ID: "staff-a"},
		{ID: "staff-b"},
		{ID: "staff-c"},
	}

	tests := []struct {
		name     string
		roster   []staffModel.Staff
		counter  int
		expected *string
	}{
		{
			name:     "empty roster leaves the task unassigned",
			roster:   nil,
			counter:  0,
			expected: nil,
		},
		{
			name:     "first task goes to the first housekeeper",
			roster:   roster,
			counter:  0,
			expected: stringRef("staff-a"),
		},
		{
			name:     "second task goes to the second housekeeper",
			roster:   roster,
			counter:  1,
			expected: stringRef("staff-b"),
		},
		{
			name:     "counter wraps around the roster",
			roster:   roster,
			counter:  3,
			expected: stringRef("staff-a"),
		},
		{
			name:     "counter far beyond the roster still rotates",
			roster:   roster,
			counter:  7,
			expected: stringRef("staff-b"),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := assignHousekeeper(test.roster, test.counter)
			if test.expected == nil {
				assert.Nil(t, got)

				return
			}

			assert.NotNil(t, got)
			assert.Equal(t, *test.expected, *got)
		})
	}
}

func TestDefaultChecklist(t *testing.T) {
	checklist := defaultChecklist()

	assert.Len(t, checklist, 8)
	assert.Equal(t, "Cambiar sábanas y ropa de cama", checklist[0].Description)
	assert.Equal(t, "Inspección final de la habitación", checklist[7].Description)

	for _, item := range checklist {
		assert.False(t, item.Completed)
	}
}

func stringRef(s string) *string {
	return &s
}
