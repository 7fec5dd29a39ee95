package request

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danceapp/events-api/internal/domain"
)

func TestEventFilterRequest_Parse(t *testing.T) {
	req := EventFilterRequest{
		Type:     `["Social","CONCERT"]`,
		Style:    `["Salsa"]`,
		Date:     "2030-02-01",
		Title:    "  Night ",
		Location: "[31.5, 74.3]",
		City:     "Lahore",
		Province: "Punjab",
	}

	params, err := req.Parse()
	require.NoError(t, err)

	assert.Equal(t, []string{"social", "concert"}, params.Types)
	assert.Equal(t, []string{"salsa"}, params.Styles)
	assert.Equal(t, "night", params.Title)
	assert.Equal(t, "lahore", params.City)
	assert.Equal(t, "punjab", params.Province)
	require.NotNil(t, params.Date)
	assert.Equal(t, time.Date(2030, 2, 1, 0, 0, 0, 0, time.UTC), *params.Date)
	assert.Equal(t, &domain.GeoPoint{Lat: 31.5, Lon: 74.3}, params.Location)
}

func TestEventFilterRequest_Parse_Empty(t *testing.T) {
	params, err := (&EventFilterRequest{}).Parse()
	require.NoError(t, err)

	assert.Nil(t, params.Types)
	assert.Nil(t, params.Styles)
	assert.Nil(t, params.Date)
	assert.Nil(t, params.Location)
}

func TestEventFilterRequest_Parse_MalformedJSON(t *testing.T) {
	for _, req := range []EventFilterRequest{
		{Type: `["social"`},
		{Style: `salsa`},
		{Location: `[1,`},
	} {
		_, err := req.Parse()
		require.Error(t, err)

		var fieldErr *FieldError
		assert.False(t, errors.As(err, &fieldErr))
	}
}

func TestEventFilterRequest_Parse_FieldErrors(t *testing.T) {
	tests := []struct {
		name  string
		req   EventFilterRequest
		field string
	}{
		{name: "bad date", req: EventFilterRequest{Date: "01/02/2030"}, field: "date"},
		{name: "one coordinate", req: EventFilterRequest{Location: "[1]"}, field: "location"},
		{name: "unknown type", req: EventFilterRequest{Type: `["ballet"]`}, field: "type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.Parse()

			var fieldErr *FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.field, fieldErr.Field)
		})
	}
}

func TestAdvertisementRequest_Parse(t *testing.T) {
	params := (&AdvertisementRequest{Title: " Shoes", Category: "SHOP"}).Parse()
	assert.Equal(t, "shoes", params.Title)
	assert.Equal(t, "shop", params.Category)
}
