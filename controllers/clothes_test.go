package controllers

import (
	"net/http"
	"testing"

	"stylesnapapi/models"
	"stylesnapapi/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateClothingOk(t *testing.T) {
	s := newTestServer(t, test.AWSProviderMock{}, test.URLCacheMock{}, nil)

	reqBody := CreateClothingIn{
		Name:         "Summer dress",
		Description:  StrPointer("Light linen dress"),
		Category:     " Top ",
		ClothingType: "dress",
		PrimaryColor: StrPointer("beige"),
		StyleTags:    []string{" Casual", "", "BOHO"},
		ImageKey:     StrPointer("clothes/dress.jpg"),
	}
	rec := s.do(test.NewJSONAuthRequest("POST", "/clothes/create", "1", reqBody))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	response := decode[ClothingResponse](t, rec)
	assert.Equal(t, uint(1), response.ID)
	assert.Equal(t, "Summer dress", response.Name)
	assert.Equal(t, "top", response.Category)
	assert.Equal(t, "Dress", response.ClothingType)
	assert.Equal(t, []string{"casual", "boho"}, response.StyleTags)
	assert.Equal(t, "in_closet", response.Status)
	require.NotNil(t, response.Uri)
	assert.Equal(t, "https://cached.example.com/clothes/dress.jpg", *response.Uri)

	stored := s.closet.Items[1]
	require.Len(t, stored, 1)
	assert.Equal(t, uint(1), stored[0].OwnerID)
	assert.Equal(t, "clothes/dress.jpg", *stored[0].ImageURL)
}

func TestCreateClothingInvalidInput(t *testing.T) {
	s := newTestServer(t, test.AWSProviderMock{}, test.URLCacheMock{}, nil)

	cases := map[string]CreateClothingIn{
		"unknown category": {Category: "hat", ClothingType: "Cap"},
		"missing category": {ClothingType: "Shirt"},
		"missing type":     {Category: "top"},
		"too many tags":    {Category: "top", ClothingType: "Shirt", StyleTags: make([]string, 11)},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := s.do(test.NewJSONAuthRequest("POST", "/clothes/create", "1", body))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	rec := s.do(test.NewJSONAuthRequestRaw("POST", "/clothes/create", "1", `{"category": 12`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, s.closet.Items[1])
}

func TestCreateClothingStoreFailure(t *testing.T) {
	s := newTestServer(t, test.AWSProviderMock{}, test.URLCacheMock{}, nil)
	s.closet.Err = test.ErrMockFailure

	rec := s.do(test.NewJSONAuthRequest("POST", "/clothes/create", "1", CreateClothingIn{Category: "top", ClothingType: "Shirt"}))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestListClothesGroupsByCategory(t *testing.T) {
	s := newTestServer(t, test.AWSProviderMock{}, test.URLCacheMock{}, nil)
	s.seedCloset(1)
	s.closet.Items[1] = append(s.closet.Items[1],
		models.Clothing{JsonModel: models.JsonModel{ID: 4}, OwnerID: 1, Category: "outerwear", ClothingType: "Coat", ImageURL: StrPointer("clothes/coat.jpg")},
		models.Clothing{JsonModel: models.JsonModel{ID: 5}, OwnerID: 1, Category: "accessory", ClothingType: "Scarf"},
	)
	s.seedCloset(2)

	rec := s.do(test.NewJSONAuthRequest("GET", "/clothes/list", "1", nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	response := decode[ClothesListResponse](t, rec)
	require.Len(t, response.Tops, 1)
	require.Len(t, response.Bottoms, 1)
	require.Len(t, response.Outerwear, 1)
	require.Len(t, response.Shoes, 1)
	require.Len(t, response.Accessories, 1)
	assert.Equal(t, uint(4), response.Outerwear[0].ID)
	require.NotNil(t, response.Outerwear[0].Uri)
	assert.Equal(t, "https://cached.example.com/clothes/coat.jpg", *response.Outerwear[0].Uri)
	assert.Nil(t, response.Shoes[0].Uri)
	assert.Equal(t, []string{}, response.Accessories[0].StyleTags)
}

func TestListClothesEmpty(t *testing.T) {
	s := newTestServer(t, test.AWSProviderMock{}, test.URLCacheMock{}, nil)

	rec := s.do(test.NewJSONAuthRequest("GET", "/clothes/list", "1", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"tops": [], "bottoms": [], "outerwear": [], "shoes": [], "accessories": []}`, rec.Body.String())
}

func TestListClothesFailure(t *testing.T) {
	s := newTestServer(t, test.AWSProviderMock{}, test.URLCacheMock{}, nil)
	s.closet.Err = test.ErrMockFailure

	rec := s.do(test.NewJSONAuthRequest("GET", "/clothes/list", "1", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRemoveClothing(t *testing.T) {
	s := newTestServer(t, test.AWSProviderMock{}, test.URLCacheMock{}, nil)
	s.seedCloset(1)

	rec := s.do(test.NewJSONAuthRequest("DELETE", "/clothes/2", "2", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(test.NewJSONAuthRequest("DELETE", "/clothes/2", "1", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(test.NewJSONAuthRequest("DELETE", "/clothes/2", "1", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(test.NewJSONAuthRequest("DELETE", "/clothes/abc", "1", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// with the jeans gone the closet can no longer make an outfit
	rec = s.do(test.NewJSONAuthRequest("POST", "/outfits/generate", "1", GenerateOutfitIn{}))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
