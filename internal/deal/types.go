package deal

import "pneuma-faq-bot/internal/model"

// --- UseCase Inputs ---

type ListInput struct {
	// Day is a day expression: today, tomorrow, next friday, 2024-05-01...
	Day string
}

type CreateInput struct {
	ID          string
	Day         string // day expression, empty for a recurring deal
	Title       string
	Description string
	Category    string
	Discount    string
}

// --- UseCase Outputs ---

type ListOutput struct {
	Day   string
	Deals []model.Deal
}

type CreateOutput struct {
	Deal model.Deal
}
