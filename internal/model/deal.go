package model

// Deal is a partner offer shown by the deals lookup.
type Deal struct {
	ID          string `json:"id"`
	Day         string `json:"day"` // YYYY-MM-DD, empty means every day
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Discount    string `json:"discount"`
}

// Recurring reports whether the deal runs every day.
func (d Deal) Recurring() bool {
	return d.Day == ""
}
