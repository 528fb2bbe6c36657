package places

import (
	"testing"

	"github.com/dmitrijs2005/museumkeeper/internal/client/identity"
	"github.com/dmitrijs2005/museumkeeper/internal/common"
	"github.com/dmitrijs2005/museumkeeper/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapt_FullRecord(t *testing.T) {
	c := NewClient(Config{APIKey: "k"}, logging.Discard())
	open := true

	got := c.Adapt([]Place{{
		PlaceID:          "ChIJ-masp",
		Reference:        "ref-masp",
		Name:             "MASP",
		Vicinity:         "Av. Paulista, 1578",
		FormattedAddress: "Av. Paulista, 1578 - Bela Vista, São Paulo",
		Rating:           common.Ptr(4.7),
		UserRatingsTotal: common.Ptr(120000),
		Types:            []string{"museum", "tourist_attraction", "point_of_interest", "establishment"},
		OpeningHours:     &OpeningHours{OpenNow: &open},
		Photos:           []Photo{{PhotoReference: "photo-1"}, {PhotoReference: "photo-2"}},
		Geometry:         &Geometry{},
	}})
	require.Len(t, got, 1)
	v := got[0]

	key, ok := identity.Of(v)
	require.True(t, ok)
	assert.Equal(t, "ChIJ-masp", key)
	assert.Equal(t, "ChIJ-masp", v.ID)
	assert.Equal(t, "MASP", v.Title)
	assert.Equal(t, "MASP", v.Name)
	assert.Equal(t, "Av. Paulista, 1578", v.Subtitle)
	assert.Equal(t, "Av. Paulista, 1578 - Bela Vista, São Paulo", v.FormattedAddress)
	assert.Equal(t, "museum, tourist_attraction, point_of_interest", v.Description)
	assert.Equal(t, 4.7, *v.Rating)
	assert.Equal(t, 120000, *v.UserRatingsTotal)
	require.NotNil(t, v.OpeningHours)
	assert.True(t, *v.OpeningHours.OpenNow)
	require.Len(t, v.Photos, 2)
	assert.Equal(t, c.PhotoURL("photo-1", 600), v.Image.URI)
	assert.Equal(t, "photo-2", v.Photos[1].PhotoReference)
	require.NotNil(t, v.Latitude)
	assert.False(t, v.IsCustom)
}

func TestAdapt_Fallbacks(t *testing.T) {
	c := NewClient(Config{APIKey: "k"}, logging.Discard())

	got := c.Adapt([]Place{
		{PlaceID: "A", Name: "Only formatted", FormattedAddress: "Rua A, 1"},
		{PlaceID: "B", Name: "Nothing", Rating: common.Ptr(0.0), Photos: []Photo{{}}},
	})
	require.Len(t, got, 2)

	assert.Equal(t, "Rua A, 1", got[0].Subtitle)
	assert.Equal(t, "Museum", got[0].Description)
	assert.Equal(t, common.DefaultRating, *got[0].Rating)
	assert.Nil(t, got[0].UserRatingsTotal)
	assert.Nil(t, got[0].OpeningHours)
	assert.Nil(t, got[0].Latitude)

	assert.Equal(t, "Museum", got[1].Subtitle)
	assert.Equal(t, "", got[1].FormattedAddress)
	assert.Equal(t, common.DefaultRating, *got[1].Rating)
	assert.Nil(t, got[1].Image, "photos without reference are skipped")
	assert.Empty(t, got[1].Photos)
}

func TestAdapt_Empty(t *testing.T) {
	c := NewClient(Config{}, logging.Discard())
	assert.NotNil(t, c.Adapt(nil))
	assert.Empty(t, c.Adapt(nil))
}
