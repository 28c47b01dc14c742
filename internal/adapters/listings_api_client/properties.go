package listings_api_client

import (
	"admin-console/internal/core/domain"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

func propertyPath(id string) string {
	return "/api/properties/" + url.PathEscape(id)
}

// ListProperties возвращает полный список объявлений без фильтров
func (c *Client) ListProperties(ctx context.Context) (*domain.Page[domain.Property], error) {
	var raw json.RawMessage
	if err := c.Request(ctx, http.MethodGet, "/api/properties", nil, &raw, domain.MsgRequestFailed); err != nil {
		return nil, err
	}
	return decodePage(ctx, raw, propertyDTO.toDomain), nil
}

// SearchProperties - поиск с фильтрами и пагинацией
func (c *Client) SearchProperties(ctx context.Context, params domain.Params) (*domain.Page[domain.Property], error) {
	var raw json.RawMessage
	if err := c.Request(ctx, http.MethodGet, withQuery("/api/properties/search", params), nil, &raw, domain.MsgRequestFailed); err != nil {
		return nil, err
	}
	return decodePage(ctx, raw, propertyDTO.toDomain), nil
}

func (c *Client) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	var dto propertyDTO
	if err := c.Request(ctx, http.MethodGet, propertyPath(id), nil, &dto, domain.MsgRequestFailed); err != nil {
		return nil, err
	}
	property := dto.toDomain()
	return &property, nil
}

func (c *Client) CreateProperty(ctx context.Context, input domain.PropertyInput) (*domain.Property, error) {
	var dto propertyDTO
	if err := c.Request(ctx, http.MethodPost, "/api/properties", input, &dto, domain.MsgRequestFailed); err != nil {
		return nil, err
	}
	property := dto.toDomain()
	return &property, nil
}

// UpdateProperty полностью заменяет изменяемые поля объявления
func (c *Client) UpdateProperty(ctx context.Context, id string, input domain.PropertyInput) (*domain.Property, error) {
	var dto propertyDTO
	if err := c.Request(ctx, http.MethodPut, propertyPath(id), input, &dto, domain.MsgRequestFailed); err != nil {
		return nil, err
	}
	property := dto.toDomain()
	return &property, nil
}

func (c *Client) DeleteProperty(ctx context.Context, id string) error {
	return c.Request(ctx, http.MethodDelete, propertyPath(id), nil, nil, domain.MsgRequestFailed)
}

// SetPropertyFeatured - частичное обновление ровно одного поля isFeatured
func (c *Client) SetPropertyFeatured(ctx context.Context, id string, isFeatured bool) (*domain.Property, error) {
	var dto propertyDTO
	if err := c.Request(ctx, http.MethodPatch, propertyPath(id)+"/featured", featuredRequest{IsFeatured: isFeatured}, &dto, domain.MsgRequestFailed); err != nil {
		return nil, err
	}
	property := dto.toDomain()
	return &property, nil
}
