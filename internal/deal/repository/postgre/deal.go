package postgre

import (
	"context"

	repo "pneuma-faq-bot/internal/deal/repository"
	"pneuma-faq-bot/internal/model"
)

// ListDeals returns deals for opt.Day ordered by id.
func (r *implRepository) ListDeals(ctx context.Context, opt repo.ListDealsOptions) ([]model.Deal, error) {
	rows, err := r.db.QueryContext(ctx, listDealsQuery, opt.Day, opt.IncludeRecurring)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListDeals"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var deals []model.Deal
	for rows.Next() {
		var d model.Deal
		if err := rows.Scan(&d.ID, &d.Day, &d.Title, &d.Description, &d.Category, &d.Discount); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListDeals"), err)
			return nil, repo.ErrFailedToList
		}
		deals = append(deals, d)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListDeals"), err)
		return nil, repo.ErrFailedToList
	}
	return deals, nil
}

// SaveDeal upserts a deal by id.
func (r *implRepository) SaveDeal(ctx context.Context, opt repo.SaveDealOptions) (model.Deal, error) {
	in := opt.Deal

	var d model.Deal
	err := r.db.QueryRowContext(ctx, saveDealQuery,
		in.ID, in.Day, in.Title, in.Description, in.Category, in.Discount,
	).Scan(&d.ID, &d.Day, &d.Title, &d.Description, &d.Category, &d.Discount)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SaveDeal"), err)
		return model.Deal{}, repo.ErrFailedToSave
	}
	return d, nil
}

// DeleteDeal removes a deal by id.
func (r *implRepository) DeleteDeal(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteDealQuery, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteDeal"), err)
		return repo.ErrFailedToDelete
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("DeleteDeal"), err)
		return repo.ErrFailedToDelete
	}
	if n == 0 {
		return repo.ErrNotFound
	}
	return nil
}
