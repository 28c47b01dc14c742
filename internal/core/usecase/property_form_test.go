package usecase

import (
	"admin-console/internal/core/domain"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFormValues() domain.PropertyFormValues {
	v := NewPropertyFormValues()
	v.Title = "  Sea view villa "
	v.Price = "12345.5"
	v.Images = []string{"https://cdn/a.jpg", "", "https://cdn/a.jpg", "https://cdn/b.jpg"}
	return v
}

func TestBuildPropertyInput(t *testing.T) {
	input, err := BuildPropertyInput(validFormValues())
	require.NoError(t, err)

	assert.Equal(t, "Sea view villa", input.Title)
	assert.Equal(t, 12345.5, input.Price)
	assert.Equal(t, domain.DefaultPropertyType, input.PropertyType)
	assert.Equal(t, []string{"https://cdn/a.jpg", "https://cdn/b.jpg"}, input.Images)
	assert.Nil(t, input.Area)
}

func TestBuildPropertyInput_Validation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(v *domain.PropertyFormValues)
		want   string
	}{
		{"blank title", func(v *domain.PropertyFormValues) { v.Title = "   " }, "Title is required"},
		{"missing price", func(v *domain.PropertyFormValues) { v.Price = "" }, "Price is required"},
		{"non-numeric price", func(v *domain.PropertyFormValues) { v.Price = "lots" }, "Price is required"},
		{"non-numeric area", func(v *domain.PropertyFormValues) { v.Area = "big" }, "Area must be a number"},
		{"non-numeric bedrooms", func(v *domain.PropertyFormValues) { v.Bedrooms = "3 bhk" }, "Bedrooms must be a number"},
		{"infinite bathrooms", func(v *domain.PropertyFormValues) { v.Bathrooms = "Inf" }, "Bathrooms must be a number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validFormValues()
			tt.modify(&v)

			_, err := BuildPropertyInput(v)
			var valErr *domain.ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, tt.want, valErr.Message)
		})
	}
}

func TestFormValuesFromProperty(t *testing.T) {
	v := FormValuesFromProperty(domain.Property{Title: "Plot", Price: price(2500000), Bedrooms: price(2.5)})

	assert.Equal(t, "2500000", v.Price)
	assert.Equal(t, "2.5", v.Bedrooms)
	assert.Empty(t, v.Area)
	assert.Equal(t, domain.DefaultStatus, v.Status)
	assert.Equal(t, []string{}, v.Images)
}

func TestPropertyForm_CreateAndUpdate(t *testing.T) {
	ctx := context.Background()
	var created, updated []domain.PropertyInput
	api := &fakePropertiesAPI{
		create: func(ctx context.Context, input domain.PropertyInput) (*domain.Property, error) {
			created = append(created, input)
			return &domain.Property{ID: "new-1", Title: input.Title}, nil
		},
		update: func(ctx context.Context, id string, input domain.PropertyInput) (*domain.Property, error) {
			updated = append(updated, input)
			return &domain.Property{ID: id, Title: input.Title}, nil
		},
	}
	audit := &recordingAudit{}
	form := NewPropertyForm(api, &fakeUploadsAPI{}, audit)

	saved, err := form.Save(ctx, "", validFormValues())
	require.NoError(t, err)
	assert.Equal(t, "new-1", saved.ID)
	assert.Equal(t, "new-1", form.Snapshot().ID)
	assert.True(t, form.Snapshot().IsEdit)

	_, err = form.Save(ctx, "p9", validFormValues())
	require.NoError(t, err)

	assert.Len(t, created, 1)
	assert.Len(t, updated, 1)
	assert.Equal(t, []string{domain.ActionPropertyCreated, domain.ActionPropertyUpdated}, audit.actions())
}

func TestPropertyForm_SaveFailureKeepsValues(t *testing.T) {
	ctx := context.Background()
	api := &fakePropertiesAPI{
		create: func(ctx context.Context, input domain.PropertyInput) (*domain.Property, error) {
			return nil, errors.New("socket hang up")
		},
	}
	form := NewPropertyForm(api, &fakeUploadsAPI{}, nil)

	values := validFormValues()
	_, err := form.Save(ctx, "", values)
	require.Error(t, err)

	state := form.Snapshot()
	assert.Equal(t, "Save failed", state.Error)
	assert.Equal(t, values.Title, state.Values.Title)
	assert.False(t, state.IsLoading)
	assert.False(t, state.IsEdit)
}

func TestPropertyForm_ValidationErrorShownInBanner(t *testing.T) {
	form := NewPropertyForm(&fakePropertiesAPI{}, &fakeUploadsAPI{}, nil)

	values := validFormValues()
	values.Price = ""
	_, err := form.Save(context.Background(), "", values)
	require.Error(t, err)
	assert.Equal(t, "Price is required", form.Snapshot().Error)
}

func TestPropertyForm_OpenLoadsProperty(t *testing.T) {
	ctx := context.Background()
	api := &fakePropertiesAPI{
		get: func(ctx context.Context, id string) (*domain.Property, error) {
			if id == "missing" {
				return nil, domain.NewRequestError(404, "Property not found")
			}
			return &domain.Property{ID: id, Title: "Loft", Price: price(100), Images: []string{"https://cdn/x.jpg"}}, nil
		},
	}
	form := NewPropertyForm(api, &fakeUploadsAPI{}, nil)

	require.NoError(t, form.Open(ctx, "p1"))
	state := form.Snapshot()
	assert.Equal(t, "Loft", state.Values.Title)
	assert.Equal(t, "100", state.Values.Price)
	assert.True(t, state.IsEdit)

	require.Error(t, form.Open(ctx, "missing"))
	state = form.Snapshot()
	assert.Equal(t, "Property not found", state.Error)
	assert.Empty(t, state.Values.Title)

	require.NoError(t, form.Open(ctx, ""))
	state = form.Snapshot()
	assert.False(t, state.IsEdit)
	assert.Empty(t, state.Error)
	assert.Equal(t, NewPropertyFormValues(), state.Values)
}

func TestPropertyForm_UploadImagesMergesURLs(t *testing.T) {
	ctx := context.Background()
	uploads := &fakeUploadsAPI{
		images: func(ctx context.Context, files []domain.UploadFile) ([]string, error) {
			return []string{"https://cdn/x.jpg", "https://cdn/y.jpg"}, nil
		},
	}
	api := &fakePropertiesAPI{
		get: func(ctx context.Context, id string) (*domain.Property, error) {
			return &domain.Property{ID: id, Title: "Loft", Images: []string{"https://cdn/x.jpg"}}, nil
		},
	}
	form := NewPropertyForm(api, uploads, nil)
	require.NoError(t, form.Open(ctx, "p1"))

	urls, err := form.UploadImages(ctx, []domain.UploadFile{{Name: "y.jpg"}})
	require.NoError(t, err)
	assert.Len(t, urls, 2)
	assert.Equal(t, []string{"https://cdn/x.jpg", "https://cdn/y.jpg"}, form.Snapshot().Values.Images)

	_, err = form.UploadImages(ctx, nil)
	var valErr *domain.ValidationError
	require.ErrorAs(t, err, &valErr)
}

func TestPropertyForm_UploadFailures(t *testing.T) {
	ctx := context.Background()
	uploads := &fakeUploadsAPI{
		images: func(ctx context.Context, files []domain.UploadFile) ([]string, error) {
			return nil, errors.New("reset")
		},
		video: func(ctx context.Context, file domain.UploadFile) (string, error) {
			return "", nil
		},
	}
	form := NewPropertyForm(&fakePropertiesAPI{}, uploads, nil)

	_, err := form.UploadImages(ctx, []domain.UploadFile{{Name: "a.jpg"}})
	require.Error(t, err)
	assert.Equal(t, "Image upload failed", form.Snapshot().Error)

	_, err = form.UploadVideo(ctx, domain.UploadFile{Name: "tour.mp4"})
	require.Error(t, err)
	state := form.Snapshot()
	assert.Equal(t, "Upload failed", state.Error)
	assert.Empty(t, state.Values.VideoURL)
	assert.False(t, state.IsUploadingVideo)
}
