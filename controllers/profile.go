package controllers

import (
	"net/http"

	"stylesnapapi/models"
	"stylesnapapi/services"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
)

type ProfileController struct {
	Users services.UserProvider
}

func toUserInfo(user models.UserAccount) models.UserInfoOut {
	return models.UserInfoOut{
		Id:                 user.ID,
		Name:               user.Name,
		Email:              user.Email,
		ReceiveDailyOutfit: user.ReceiveDailyOutfit,
		DefaultOccasion:    user.DefaultOccasion,
		DefaultWeather:     user.DefaultWeather,
		DefaultStyle:       user.DefaultStyle,
	}
}

func (controller *ProfileController) ProfileRoutes(g *echo.Group) {
	g.GET("/me", func(c echo.Context) error {
		user, ok := currentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		}
		return c.JSON(http.StatusOK, toUserInfo(user))
	})

	g.PATCH("/settings", func(c echo.Context) error {
		user, ok := currentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		}
		var req models.UserSettingsIn
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		}
		if err := c.Validate(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": errorMessage(err)})
		}
		updated, err := controller.Users.UpdateSettings(c.Request().Context(), user.ID, req)
		if err != nil {
			sentry.CaptureException(err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update settings"})
		}
		return c.JSON(http.StatusOK, toUserInfo(*updated))
	})
}
