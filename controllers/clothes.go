package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"stylesnapapi/models"
	"stylesnapapi/services"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
)

type CreateClothingIn struct {
	Name         string   `json:"name" validate:"omitempty,max=100"`
	Description  *string  `json:"description" validate:"omitempty,max=500"`
	Category     string   `json:"category" validate:"required,category"`
	ClothingType string   `json:"clothing_type" validate:"required,max=50"` // e.g. Dress, Jeans, Sneakers
	PrimaryColor *string  `json:"primary_color" validate:"omitempty,max=30"`
	Color        *string  `json:"color" validate:"omitempty,max=30"`
	StyleTags    []string `json:"style_tags" validate:"max=10,dive,max=30"`
	// object key of an already uploaded image
	ImageKey *string `json:"image_key" validate:"omitempty,max=200"`
}

type ClothingResponse struct {
	ID           uint     `json:"id"`
	Name         string   `json:"name"`
	Description  *string  `json:"description"`
	Category     string   `json:"category"`
	ClothingType string   `json:"clothing_type"`
	PrimaryColor *string  `json:"primary_color"`
	Color        *string  `json:"color"`
	StyleTags    []string `json:"style_tags"`
	Status       string   `json:"status"`
	Uri          *string  `json:"uri,omitempty"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

type ClothesListResponse struct {
	Tops        []ClothingResponse `json:"tops"`
	Bottoms     []ClothingResponse `json:"bottoms"`
	Outerwear   []ClothingResponse `json:"outerwear"`
	Shoes       []ClothingResponse `json:"shoes"`
	Accessories []ClothingResponse `json:"accessories"`
}

type ClothesController struct {
	Closet services.ClosetProvider
	Images *ImagePresigner
}

func (controller *ClothesController) ClothingRoutes(g *echo.Group) {
	g.POST("/create", controller.CreateClothing)
	g.GET("/list", controller.ListClothes)
	g.DELETE("/:clothingId", controller.RemoveClothing)
}

func toClothingResponse(item models.Clothing, uri string) ClothingResponse {
	tags := []string(item.StyleTags)
	if tags == nil {
		tags = []string{}
	}
	response := ClothingResponse{
		ID:           item.ID,
		Name:         item.Name,
		Description:  item.Description,
		Category:     item.Category,
		ClothingType: item.ClothingType,
		PrimaryColor: item.PrimaryColor,
		Color:        item.Color,
		StyleTags:    tags,
		Status:       item.Status,
		CreatedAt:    item.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:    item.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if uri != "" {
		response.Uri = &uri
	}
	return response
}

func imageKeys(clothes []models.Clothing) []string {
	keys := make([]string, len(clothes))
	for i, item := range clothes {
		keys[i] = services.StrValue(item.ImageURL)
	}
	return keys
}

func (controller *ClothesController) CreateClothing(c echo.Context) error {
	var req CreateClothingIn
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": errorMessage(err)})
	}
	user, ok := currentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	tags := make([]string, 0, len(req.StyleTags))
	for _, tag := range req.StyleTags {
		if tag = strings.ToLower(strings.TrimSpace(tag)); tag != "" {
			tags = append(tags, tag)
		}
	}
	clothing := models.Clothing{
		Name:         req.Name,
		Description:  req.Description,
		Category:     strings.ToLower(strings.TrimSpace(req.Category)),
		ClothingType: services.NormalizeClothingType(req.ClothingType),
		PrimaryColor: req.PrimaryColor,
		Color:        req.Color,
		StyleTags:    tags,
		OwnerID:      user.ID,
		Status:       "in_closet",
		ImageURL:     req.ImageKey,
	}
	if err := controller.Closet.AddItem(c.Request().Context(), &clothing); err != nil {
		sentry.CaptureException(fmt.Errorf("[User %v] failed to add clothing: %w", user.ID, err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to add clothing, please try again"})
	}
	uri := controller.Images.ReadURLs(c.Request().Context(), []string{services.StrValue(clothing.ImageURL)})[0]
	return c.JSON(http.StatusCreated, toClothingResponse(clothing, uri))
}

func (controller *ClothesController) ListClothes(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}
	clothes, err := controller.Closet.ListItems(c.Request().Context(), user.ID)
	if err != nil {
		log.Printf("[User %v] Failed to fetch clothes: %v", user.ID, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch clothes"})
	}
	urls := controller.Images.ReadURLs(c.Request().Context(), imageKeys(clothes))

	response := ClothesListResponse{
		Tops:        []ClothingResponse{},
		Bottoms:     []ClothingResponse{},
		Outerwear:   []ClothingResponse{},
		Shoes:       []ClothingResponse{},
		Accessories: []ClothingResponse{},
	}
	for i, item := range clothes {
		resp := toClothingResponse(item, urls[i])
		switch strings.ToLower(item.Category) {
		case "top":
			response.Tops = append(response.Tops, resp)
		case "bottom":
			response.Bottoms = append(response.Bottoms, resp)
		case "outerwear":
			response.Outerwear = append(response.Outerwear, resp)
		case "shoes":
			response.Shoes = append(response.Shoes, resp)
		case "accessory":
			response.Accessories = append(response.Accessories, resp)
		}
	}
	return c.JSON(http.StatusOK, response)
}

func (controller *ClothesController) RemoveClothing(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}
	var clothingID uint
	if err := echo.PathParamsBinder(c).MustUint("clothingId", &clothingID).BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid clothing id"})
	}
	err := controller.Closet.RemoveItem(c.Request().Context(), user.ID, clothingID)
	if errors.Is(err, services.ErrClothingNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Clothing not found"})
	}
	if err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to remove clothing"})
	}
	return c.NoContent(http.StatusNoContent)
}
