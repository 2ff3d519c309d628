package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"bluetech-store/dto"
)

type pricePayload struct {
	Price dto.FlexNumber `json:"price"`
}

func TestFlexNumberUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		body string
		want float64
	}{
		{"number", `{"price":10}`, 10},
		{"numeric string", `{"price":"10"}`, 10},
		{"decimal string", `{"price":" 12.5 "}`, 12.5},
		{"non-numeric string", `{"price":"abc"}`, 0},
		{"absent", `{}`, 0},
		{"null", `{"price":null}`, 0},
		{"boolean", `{"price":true}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload pricePayload
			err := json.Unmarshal([]byte(tt.body), &payload)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, float64(payload.Price))
		})
	}
}

func TestCoercePrice(t *testing.T) {
	assert.Equal(t, dto.FlexNumber(10), dto.CoercePrice("10"))
	assert.Equal(t, dto.FlexNumber(12.5), dto.CoercePrice("12.5"))
	assert.Equal(t, dto.FlexNumber(0), dto.CoercePrice(""))
	assert.Equal(t, dto.FlexNumber(0), dto.CoercePrice("abc"))
}

func TestResolveImagePrecedence(t *testing.T) {
	t.Run("uploaded file wins", func(t *testing.T) {
		input := dto.ProductInput{Image: "img.png", ImageURL: "https://example.com/a.png"}
		input.ResolveImage("/uploads/123-456-img.png")
		assert.Equal(t, dto.ImageUploadedFile, input.Resolved.Kind)
		assert.Equal(t, "/uploads/123-456-img.png", input.Resolved.Path)
	})

	t.Run("imageUrl over image", func(t *testing.T) {
		input := dto.ProductInput{Image: "img.png", ImageURL: "https://example.com/a.png"}
		input.ResolveImage("")
		assert.Equal(t, dto.ImageURL, input.Resolved.Kind)
		assert.Equal(t, "https://example.com/a.png", input.Resolved.Path)
	})

	t.Run("image field fallback", func(t *testing.T) {
		input := dto.ProductInput{Image: "https://example.com/b.png"}
		input.ResolveImage("")
		assert.Equal(t, dto.ImageURL, input.Resolved.Kind)
		assert.Equal(t, "https://example.com/b.png", input.Resolved.Path)
	})

	t.Run("none", func(t *testing.T) {
		input := dto.ProductInput{}
		input.ResolveImage("")
		assert.Equal(t, dto.ImageNone, input.Resolved.Kind)
		assert.Equal(t, "", input.Resolved.Path)
	})
}
