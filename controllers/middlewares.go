package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"stylesnapapi/models"
	"stylesnapapi/services"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

func userIDFromToken(c echo.Context) (uint, bool) {
	userRaw := c.Get("user")
	if userRaw == nil {
		return 0, false
	}
	token, ok := userRaw.(*jwt.Token)
	if !ok {
		return 0, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return 0, false
	}
	userID, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(userID), true
}

// UserMiddleware loads the token subject into "currentUser".
func UserMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		users := c.Get("__users").(services.UserProvider)
		userID, ok := userIDFromToken(c)
		if !ok {
			log.Println("Error while getting the token information!")
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		}

		user, err := users.GetUser(c.Request().Context(), userID)
		if errors.Is(err, services.ErrUserNotFound) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		}
		if err != nil {
			log.Printf("Failed to fetch user %v: %v", userID, err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch user"})
		}
		if user.Banned {
			return echo.NewHTTPError(http.StatusLocked)
		}
		c.Set("currentUser", *user)
		return next(c)
	}
}

func currentUser(c echo.Context) (models.UserAccount, bool) {
	user, ok := c.Get("currentUser").(models.UserAccount)
	return user, ok
}
