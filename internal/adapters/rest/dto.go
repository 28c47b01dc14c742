package rest

import "admin-console/internal/core/domain"

type SendOTPRequestDTO struct {
	Email string `json:"email"`
}

type VerifyOTPRequestDTO struct {
	OTP string `json:"otp"`
}

// PageRequestDTO - переход по страницам: либо номер, либо направление "next"/"prev"
type PageRequestDTO struct {
	Page      int    `json:"page"`
	Direction string `json:"direction"`
}

type FeaturedSearchDTO struct {
	Q *string `json:"q"`
}

type SetFeaturedDTO struct {
	IsFeatured *bool `json:"isFeatured"`
}

type SetBlockedDTO struct {
	IsBlocked *bool `json:"isBlocked"`
}

type SetStarsDTO struct {
	Stars string `json:"stars"`
}

// PropertyRowDTO - строка таблицы объявлений с готовой подписью цены
type PropertyRowDTO struct {
	domain.Property
	PriceLabel string `json:"priceLabel"`
}

func toPropertyRows(items []domain.Property) []PropertyRowDTO {
	rows := make([]PropertyRowDTO, 0, len(items))
	for _, p := range items {
		rows = append(rows, PropertyRowDTO{Property: p, PriceLabel: domain.FormatPrice(p.Price)})
	}
	return rows
}

type PropertiesStateDTO struct {
	domain.ListState[domain.Property, domain.PropertyFilters]
	Items []PropertyRowDTO `json:"items"`
}

func renderProperties(state domain.ListState[domain.Property, domain.PropertyFilters]) any {
	return PropertiesStateDTO{ListState: state, Items: toPropertyRows(state.Items)}
}

type FeaturedListDTO[F any] struct {
	domain.ListState[domain.Property, F]
	Items []PropertyRowDTO `json:"items"`
}

type FeaturedStateDTO struct {
	Featured FeaturedListDTO[struct{}]              `json:"featured"`
	All      FeaturedListDTO[domain.FeaturedFilters] `json:"all"`
}

func renderFeatured(state domain.FeaturedState) FeaturedStateDTO {
	return FeaturedStateDTO{
		Featured: FeaturedListDTO[struct{}]{ListState: state.Featured, Items: toPropertyRows(state.Featured.Items)},
		All:      FeaturedListDTO[domain.FeaturedFilters]{ListState: state.All, Items: toPropertyRows(state.All.Items)},
	}
}

type UploadImagesResponseDTO struct {
	URLs  []string                 `json:"urls"`
	State domain.PropertyFormState `json:"state"`
}

type UploadVideoResponseDTO struct {
	URL   string                   `json:"url"`
	State domain.PropertyFormState `json:"state"`
}
