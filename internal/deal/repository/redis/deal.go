package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sort"

	"github.com/redis/go-redis/v9"

	repo "pneuma-faq-bot/internal/deal/repository"
	"pneuma-faq-bot/internal/model"
)

// ListDeals reads the day index (and the daily index when asked) then fetches
// the deals in one MGET. Dangling index entries are skipped.
func (r *implRepository) ListDeals(ctx context.Context, opt repo.ListDealsOptions) ([]model.Deal, error) {
	ids, err := r.client.SMembers(ctx, r.dayKey(opt.Day)).Result()
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListDeals"), err)
		return nil, repo.ErrFailedToList
	}
	if opt.IncludeRecurring && opt.Day != "" {
		daily, err := r.client.SMembers(ctx, r.dayKey("")).Result()
		if err != nil {
			r.l.Errorf(ctx, "%s daily: %v", r.dsn("ListDeals"), err)
			return nil, repo.ErrFailedToList
		}
		ids = append(ids, daily...)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	sort.Strings(ids)

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.dealKey(id)
	}

	vals, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		r.l.Errorf(ctx, "%s mget: %v", r.dsn("ListDeals"), err)
		return nil, repo.ErrFailedToList
	}

	deals := make([]model.Deal, 0, len(vals))
	for i, v := range vals {
		raw, ok := v.(string)
		if !ok {
			r.l.Warnf(ctx, "%s: dangling index entry %s", r.dsn("ListDeals"), ids[i])
			continue
		}
		var d model.Deal
		if err := json.Unmarshal([]byte(raw), &d); err != nil {
			r.l.Warnf(ctx, "%s: corrupt deal %s: %v", r.dsn("ListDeals"), ids[i], err)
			continue
		}
		deals = append(deals, d)
	}
	return deals, nil
}

// SaveDeal writes the deal and moves it between day indexes atomically.
func (r *implRepository) SaveDeal(ctx context.Context, opt repo.SaveDealOptions) (model.Deal, error) {
	d := opt.Deal
	payload, err := json.Marshal(d)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal: %v", r.dsn("SaveDeal"), err)
		return model.Deal{}, repo.ErrFailedToSave
	}

	previous, err := r.get(ctx, d.ID)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		r.l.Errorf(ctx, "%s get: %v", r.dsn("SaveDeal"), err)
		return model.Deal{}, repo.ErrFailedToSave
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		if previous.ID != "" && previous.Day != d.Day {
			pipe.SRem(ctx, r.dayKey(previous.Day), d.ID)
		}
		pipe.Set(ctx, r.dealKey(d.ID), payload, 0)
		pipe.SAdd(ctx, r.dayKey(d.Day), d.ID)
		return nil
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SaveDeal"), err)
		return model.Deal{}, repo.ErrFailedToSave
	}
	return d, nil
}

// DeleteDeal removes the deal and its index entry.
func (r *implRepository) DeleteDeal(ctx context.Context, id string) error {
	existing, err := r.get(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return err
		}
		r.l.Errorf(ctx, "%s get: %v", r.dsn("DeleteDeal"), err)
		return repo.ErrFailedToDelete
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, r.dealKey(id))
		pipe.SRem(ctx, r.dayKey(existing.Day), id)
		return nil
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteDeal"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func (r *implRepository) get(ctx context.Context, id string) (model.Deal, error) {
	raw, err := r.client.Get(ctx, r.dealKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return model.Deal{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Deal{}, err
	}
	var d model.Deal
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return model.Deal{}, err
	}
	return d, nil
}
