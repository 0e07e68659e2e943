package deal

import "pneuma-faq-bot/internal/model"

// DefaultSeed is the recurring partner offer set the bot ships with.
func DefaultSeed() []model.Deal {
	return []model.Deal{
		{ID: "offer-01", Title: "25% off dining at partner restaurants", Category: "dining", Discount: "25%"},
		{ID: "offer-02", Title: "Double points on travel bookings", Category: "travel", Discount: "2x points"},
		{ID: "offer-03", Title: "Flash electronics sale up to 40% off", Category: "electronics", Discount: "40%"},
	}
}
