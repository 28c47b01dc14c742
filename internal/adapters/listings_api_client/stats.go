package listings_api_client

import (
	"admin-console/internal/core/domain"
	"context"
	"net/http"
)

// FetchStats загружает агрегаты дашборда за последние days дней
func (c *Client) FetchStats(ctx context.Context, days int) (*domain.Stats, error) {
	var stats domain.Stats
	path := withQuery("/api/admin/stats", domain.Params{}.Set("days", days))
	if err := c.Request(ctx, http.MethodGet, path, nil, &stats, domain.MsgStatsFailed); err != nil {
		return nil, err
	}
	return &stats, nil
}
