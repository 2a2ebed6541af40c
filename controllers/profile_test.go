package controllers

import (
	"net/http"
	"testing"

	"stylesnapapi/models"
	"stylesnapapi/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfileOk(t *testing.T) {
	s := newTestServer(t, test.AWSProviderMock{}, test.URLCacheMock{}, nil)

	rec := s.do(test.NewJSONAuthRequest("GET", "/profile/me", "1", nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	response := decode[models.UserInfoOut](t, rec)
	assert.Equal(t, uint(1), response.Id)
	assert.Equal(t, "OurName", response.Name)
	assert.Equal(t, "email@example.com", response.Email)
	assert.False(t, response.ReceiveDailyOutfit)
	assert.Nil(t, response.DefaultOccasion)
}

func TestGetProfileUnauthorized(t *testing.T) {
	s := newTestServer(t, test.AWSProviderMock{}, test.URLCacheMock{}, nil)

	rec := s.do(test.NewJSONAuthRequest("GET", "/profile/me", "42", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateSettingsOk(t *testing.T) {
	s := newTestServer(t, test.AWSProviderMock{}, test.URLCacheMock{}, nil)

	rec := s.do(test.NewJSONAuthRequest("PATCH", "/profile/settings", "1", models.UserSettingsIn{
		ReceiveDailyOutfit: BoolPointer(true),
		DefaultOccasion:    StrPointer("work"),
		DefaultStyle:       StrPointer("Business"),
	}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	response := decode[models.UserInfoOut](t, rec)
	assert.True(t, response.ReceiveDailyOutfit)
	require.NotNil(t, response.DefaultOccasion)
	assert.Equal(t, "work", *response.DefaultOccasion)
	assert.Nil(t, response.DefaultWeather)

	daily, err := s.users.DailyOutfitUsers(t.Context())
	require.NoError(t, err)
	require.Len(t, daily, 1)
	assert.Equal(t, uint(1), daily[0].ID)
}

func TestUpdateSettingsClearsDefaults(t *testing.T) {
	s := newTestServer(t, test.AWSProviderMock{}, test.URLCacheMock{}, nil)
	s.users.Users[1].DefaultOccasion = StrPointer("work")
	s.users.Users[1].DefaultStyle = StrPointer("business")

	rec := s.do(test.NewJSONAuthRequestRaw("PATCH", "/profile/settings", "1", `{"default_occasion": "", "default_weather": " "}`))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	response := decode[models.UserInfoOut](t, rec)
	assert.Nil(t, response.DefaultOccasion)
	assert.Nil(t, response.DefaultWeather)
	require.NotNil(t, response.DefaultStyle)
	assert.Equal(t, "business", *response.DefaultStyle)
}

func TestUpdateSettingsInvalid(t *testing.T) {
	s := newTestServer(t, test.AWSProviderMock{}, test.URLCacheMock{}, nil)

	rec := s.do(test.NewJSONAuthRequest("PATCH", "/profile/settings", "1", models.UserSettingsIn{DefaultWeather: StrPointer("tropical")}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	message := decode[map[string]string](t, rec)["error"]
	assert.Contains(t, message, "'default_weather' tag")
	assert.NotContains(t, message, "code=400")

	rec = s.do(test.NewJSONAuthRequest("PATCH", "/profile/settings", "1", models.UserSettingsIn{DefaultOccasion: StrPointer("gala")}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	user, err := s.users.GetUser(t.Context(), 1)
	require.NoError(t, err)
	assert.Nil(t, user.DefaultWeather)
	assert.Nil(t, user.DefaultOccasion)
}
