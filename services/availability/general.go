package availability

import (
	"context"
	"fmt"
	"sort"

	"roomcheck/models"

	"golang.org/x/sync/errgroup"
)

// ResolveAny searches every published category that fits the party and
// aggregates the free units. Categories are resolved concurrently.
func (e *Engine) ResolveAny(ctx context.Context, stay models.DateRange, guests int, excludeBookingID string) (Verdict, error) {
	listed, err := e.Repo.ListPublishedCategories(ctx, guests)
	if err != nil {
		return nil, infraError("list published categories", err)
	}

	categories := make([]models.RoomCategory, 0, len(listed))
	for _, c := range listed {
		if c.Fits(guests) {
			categories = append(categories, c)
		}
	}
	if len(categories) == 0 {
		return CapacityConflict{
			Message:         fmt.Sprintf("No room category accommodates %d guests", guests),
			SuggestWaitlist: false,
		}, nil
	}
	sort.SliceStable(categories, func(i, j int) bool {
		if categories[i].Name != categories[j].Name {
			return categories[i].Name < categories[j].Name
		}
		return categories[i].ID < categories[j].ID
	})

	verdicts := make([]Verdict, len(categories))
	g, gctx := errgroup.WithContext(ctx)
	if e.MaxFanout > 0 {
		g.SetLimit(e.MaxFanout)
	}
	for i, c := range categories {
		g.Go(func() error {
			v, err := e.ResolveCategory(gctx, c.ID, stay, guests, excludeBookingID)
			if err != nil {
				return err
			}
			verdicts[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return aggregate(verdicts), nil
}

// aggregate sums the per-category counts and unions their unit ids in category order.
func aggregate(verdicts []Verdict) Verdict {
	total, contributing := 0, 0
	seen := make(map[string]struct{})
	unitIDs := []string{}

	for _, v := range verdicts {
		avail, ok := v.(Available)
		if !ok || avail.Count == 0 {
			continue
		}
		total += avail.Count
		contributing++
		for _, id := range avail.UnitIDs {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			unitIDs = append(unitIDs, id)
		}
	}

	if total == 0 {
		return CapacityConflict{
			Message:         "No rooms available for the selected dates",
			SuggestWaitlist: true,
		}
	}

	noun := "categories"
	if contributing == 1 {
		noun = "category"
	}
	return Available{
		Count:   total,
		UnitIDs: unitIDs,
		Message: fmt.Sprintf("%d room(s) available across %d %s", total, contributing, noun),
	}
}
