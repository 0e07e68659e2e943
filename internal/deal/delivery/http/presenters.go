package http

import (
	"pneuma-faq-bot/internal/deal"
	"pneuma-faq-bot/internal/model"
)

// --- Request DTOs ---

type listReq struct {
	Day string `form:"day"`
}

func (r listReq) toInput() deal.ListInput {
	return deal.ListInput{Day: r.Day}
}

type createReq struct {
	ID          string `json:"id"          binding:"omitempty,max=64"`
	Day         string `json:"day"         binding:"omitempty,max=32"`
	Title       string `json:"title"       binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=1000"`
	Category    string `json:"category"    binding:"max=64"`
	Discount    string `json:"discount"    binding:"max=64"`
}

func (r createReq) toInput() deal.CreateInput {
	return deal.CreateInput{
		ID:          r.ID,
		Day:         r.Day,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Discount:    r.Discount,
	}
}

// --- Response DTOs ---

type dealResp struct {
	ID          string `json:"id"`
	Day         string `json:"day,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Discount    string `json:"discount,omitempty"`
	Recurring   bool   `json:"recurring"`
}

func newDealResp(d model.Deal) dealResp {
	return dealResp{
		ID:          d.ID,
		Day:         d.Day,
		Title:       d.Title,
		Description: d.Description,
		Category:    d.Category,
		Discount:    d.Discount,
		Recurring:   d.Recurring(),
	}
}

type listResp struct {
	Day   string     `json:"day"`
	Deals []dealResp `json:"deals"`
}

func (h *handler) newListResp(out deal.ListOutput) listResp {
	deals := make([]dealResp, len(out.Deals))
	for i, d := range out.Deals {
		deals[i] = newDealResp(d)
	}
	return listResp{Day: out.Day, Deals: deals}
}

type createResp struct {
	Deal dealResp `json:"deal"`
}

func (h *handler) newCreateResp(out deal.CreateOutput) createResp {
	return createResp{Deal: newDealResp(out.Deal)}
}
