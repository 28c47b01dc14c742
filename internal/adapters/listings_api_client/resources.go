package listings_api_client

import (
	"admin-console/internal/core/domain"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

func (c *Client) SearchQueries(ctx context.Context, params domain.Params) (*domain.Page[domain.Query], error) {
	var raw json.RawMessage
	if err := c.Request(ctx, http.MethodGet, withQuery("/api/queries/search", params), nil, &raw, domain.MsgRequestFailed); err != nil {
		return nil, err
	}
	return decodePage(ctx, raw, queryDTO.toDomain), nil
}

func (c *Client) SearchRatings(ctx context.Context, params domain.Params) (*domain.Page[domain.Rating], error) {
	var raw json.RawMessage
	if err := c.Request(ctx, http.MethodGet, withQuery("/api/ratings/search", params), nil, &raw, domain.MsgRequestFailed); err != nil {
		return nil, err
	}
	return decodePage(ctx, raw, ratingDTO.toDomain), nil
}

func (c *Client) SearchUsers(ctx context.Context, params domain.Params) (*domain.Page[domain.User], error) {
	var raw json.RawMessage
	if err := c.Request(ctx, http.MethodGet, withQuery("/api/users/search", params), nil, &raw, domain.MsgRequestFailed); err != nil {
		return nil, err
	}
	return decodePage(ctx, raw, userDTO.toDomain), nil
}

// SetUserBlocked - частичное обновление ровно одного поля isBlocked
func (c *Client) SetUserBlocked(ctx context.Context, id string, isBlocked bool) (*domain.User, error) {
	var dto userDTO
	path := "/api/users/" + url.PathEscape(id) + "/block"
	if err := c.Request(ctx, http.MethodPatch, path, blockRequest{IsBlocked: isBlocked}, &dto, domain.MsgRequestFailed); err != nil {
		return nil, err
	}
	user := dto.toDomain()
	return &user, nil
}
