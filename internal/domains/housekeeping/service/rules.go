package service

import (
	"strings"

	"hostal/internal/domains/housekeeping/model"
	staffModel "hostal/internal/domains/staff/model"
)

const (
	highPriorityAmount    = 150000
	premiumCleanAmount    = 80000
	baseCleaningMinutes   = 30
	largePartyGuestCount  = 5
	mediumPartyGuestCount = 3
)

var urgentKeywords = []string{"urgente", "vip"}

// defaultChecklist is the fixed checklist attached to every generated checkout
// cleaning task. Order matters, housekeepers work top to bottom.
func defaultChecklist() model.Checklist {
	return model.Checklist{
		{Description: "Cambiar sábanas y ropa de cama"},
		{Description: "Limpiar y desinfectar baño"},
		{Description: "Aspirar y trapear pisos"},
		{Description: "Limpiar superficies y muebles"},
		{Description: "Reponer amenidades y toallas"},
		{Description: "Vaciar papeleros"},
		{Description: "Revisar minibar y frigobar"},
		{Description: "Inspección final de la habitación"},
	}
}

// computePriority derives task priority from the reservation. Special requests
// mentioning an urgency keyword win over the amount threshold.
func computePriority(totalAmount float64, specialRequests string) string {
	lowered := strings.ToLower(specialRequests)
	for _, keyword := range urgentKeywords {
		if strings.Contains(lowered, keyword) {
			return model.PriorityUrgent
		}
	}

	if totalAmount > highPriorityAmount {
		return model.PriorityHigh
	}

	return model.PriorityMedium
}

// estimateMinutes derives the cleaning duration from party size and amount tiers.
func estimateMinutes(guestCount int, totalAmount float64) int {
	minutes := baseCleaningMinutes

	switch {
	case guestCount >= largePartyGuestCount:
		minutes += 30
	case guestCount >= mediumPartyGuestCount:
		minutes += 15
	}

	switch {
	case totalAmount > highPriorityAmount:
		minutes += 15
	case totalAmount > premiumCleanAmount:
		minutes += 10
	}

	return minutes
}

// assignHousekeeper rotates assignment over the active housekeeping roster. It is a
// pure function of the roster and a monotonically increasing counter, so a batch
// distributes tasks evenly without shared state.
func assignHousekeeper(roster []staffModel.Staff, counter int) *string {
	if len(roster) == 0 {
		return nil
	}

	id := roster[counter%len(roster)].ID

	return &id
}
