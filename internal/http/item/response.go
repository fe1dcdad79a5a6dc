package item

import (
	"time"

	"github.com/costperday/costperday/internal/cost"
	"github.com/costperday/costperday/internal/item"
)

type itemResponse struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Price        float64    `json:"price"`
	PurchaseDate time.Time  `json:"purchase_date"`
	ElapsedDays  int64      `json:"elapsed_days"`
	DailyCost    float64    `json:"daily_cost"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

type listResponse struct {
	Items          []itemResponse `json:"items"`
	TotalDailyCost float64        `json:"total_daily_cost"`
}

func toResponse(it *item.Item, now time.Time) itemResponse {
	return itemResponse{
		ID:           it.ID,
		Name:         it.Name,
		Price:        it.Price,
		PurchaseDate: it.PurchaseDate,
		ElapsedDays:  cost.ElapsedDays(it.PurchaseDate, now),
		DailyCost:    cost.DailyCost(it.Price, it.PurchaseDate, now),
		CreatedAt:    it.CreatedAt,
		UpdatedAt:    it.UpdatedAt,
	}
}

// toListResponse computes every daily cost against the same instant so the
// per-item figures always sum to the reported total.
func toListResponse(items []*item.Item, now time.Time) listResponse {
	resp := listResponse{
		Items:          make([]itemResponse, len(items)),
		TotalDailyCost: cost.TotalDailyCost(items, now),
	}
	for i, it := range items {
		resp.Items[i] = toResponse(it, now)
	}

	return resp
}
