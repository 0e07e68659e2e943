package repository

import "pneuma-faq-bot/internal/model"

// ListDealsOptions selects deals for one day.
type ListDealsOptions struct {
	Day              string // YYYY-MM-DD
	IncludeRecurring bool   // also return deals with no day set
}

// SaveDealOptions inserts or replaces a deal by ID.
type SaveDealOptions struct {
	Deal model.Deal
}
