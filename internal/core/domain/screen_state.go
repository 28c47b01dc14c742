package domain

// ListState - состояние экрана со списком в том виде, в котором его видит UI
type ListState[T any, F any] struct {
	LiveFilters    F         `json:"liveFilters"`
	AppliedFilters F         `json:"appliedFilters"`
	Page           int       `json:"page"`
	Items          []T       `json:"items"`
	Meta           *PageMeta `json:"meta"`
	IsLoading      bool      `json:"isLoading"`
	Error          string    `json:"error,omitempty"`
	CanPrev        bool      `json:"canPrev"`
	CanNext        bool      `json:"canNext"`
	Selected       *T        `json:"selected,omitempty"`
}

// AuthState - шаг входа и баннеры формы входа
type AuthState struct {
	Step      AuthStep `json:"step"`
	Email     string   `json:"email"`
	OTP       string   `json:"otp"`
	IsLoading bool     `json:"isLoading"`
	Message   string   `json:"message,omitempty"`
	Error     string   `json:"error,omitempty"`
	CanSend   bool     `json:"canSendOtp"`
	CanVerify bool     `json:"canVerifyOtp"`
}

type DashboardState struct {
	Days      int    `json:"days"`
	Periods   []int  `json:"periods"`
	Stats     *Stats `json:"stats"`
	IsLoading bool   `json:"isLoading"`
	Error     string `json:"error,omitempty"`
}

// FeaturedState - два независимых списка экрана избранного, у каждого свой баннер
type FeaturedState struct {
	Featured ListState[Property, struct{}]        `json:"featured"`
	All      ListState[Property, FeaturedFilters] `json:"all"`
}

// PropertyFormValues - значения полей формы объявления в виде строк, как их ввел администратор
type PropertyFormValues struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	PropertyType string   `json:"propertyType"`
	ListingType  string   `json:"listingType"`
	Status       string   `json:"status"`
	Price        string   `json:"price"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	Address      string   `json:"address"`
	Pincode      string   `json:"pincode"`
	Area         string   `json:"area"`
	Bedrooms     string   `json:"bedrooms"`
	Bathrooms    string   `json:"bathrooms"`
	OwnerName    string   `json:"ownerName"`
	OwnerContact string   `json:"ownerContact"`
	VideoURL     string   `json:"videoUrl"`
	Images       []string `json:"images"`
	Verified     bool     `json:"verified"`
	IsFeatured   bool     `json:"isFeatured"`
}

type PropertyFormState struct {
	ID                string             `json:"id,omitempty"`
	IsEdit            bool               `json:"isEdit"`
	Values            PropertyFormValues `json:"values"`
	IsLoading         bool               `json:"isLoading"`
	IsUploadingImages bool               `json:"isUploadingImages"`
	IsUploadingVideo  bool               `json:"isUploadingVideo"`
	Error             string             `json:"error,omitempty"`
}
