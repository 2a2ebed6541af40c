package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"stylesnapapi/models"
	"stylesnapapi/outfitgen"
	"stylesnapapi/services"
	"stylesnapapi/tasks"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
)

type GenerateOutfitIn struct {
	Occasion string `json:"occasion" validate:"omitempty,occasion"`
	Weather  string `json:"weather" validate:"omitempty,weather"`
	// celsius, used when weather is empty
	Temperature *float64 `json:"temperature" validate:"omitempty,min=-60,max=60"`
	Condition   string   `json:"condition" validate:"omitempty,condition"`
	Style       string   `json:"style" validate:"omitempty,style"`
}

func (in GenerateOutfitIn) Params() outfitgen.Params {
	params := outfitgen.Params{
		Occasion:  outfitgen.Occasion(in.Occasion),
		Weather:   outfitgen.Weather(in.Weather),
		Condition: outfitgen.Condition(in.Condition),
		Style:     in.Style,
	}
	if strings.TrimSpace(in.Weather) == "" && in.Temperature != nil {
		params.Weather = services.WeatherBandForTemperature(*in.Temperature)
	}
	return params
}

type RateOutfitIn struct {
	Rating int `json:"rating" validate:"required,min=1,max=5"`
}

type OutfitItemResponse struct {
	outfitgen.Item
	Name string  `json:"name"`
	Uri  *string `json:"uri,omitempty"`
}

type GeneratedOutfitResponse struct {
	GenerationID   string                `json:"generation_id"`
	OutfitID       *uint                 `json:"outfit_id"`
	Saved          bool                  `json:"saved"`
	Items          []OutfitItemResponse  `json:"items"`
	Score          int                   `json:"score"`
	ColorScheme    outfitgen.ColorScheme `json:"color_scheme"`
	StyleTheme     string                `json:"style_theme"`
	Occasion       outfitgen.Occasion    `json:"occasion"`
	Weather        outfitgen.Weather     `json:"weather"`
	Condition      outfitgen.Condition   `json:"condition,omitempty"`
	Breakdown      outfitgen.Breakdown   `json:"breakdown"`
	Candidates     int                   `json:"candidates"`
	SuggestedTypes []string              `json:"suggested_types"`
}

type OutfitQueuedResponse struct {
	GenerationID string `json:"generation_id"`
	TaskID       string `json:"task_id"`
	Status       string `json:"status"`
}

type OutfitHistoryResponse struct {
	Outfits []models.GeneratedOutfit `json:"outfits"`
}

type OutfitController struct {
	Outfits  services.OutfitGenerator
	History  services.OutfitHistoryProvider
	Images   *ImagePresigner
	Enqueuer TaskEnqueuer
}

func (controller *OutfitController) OutfitRoutes(g *echo.Group) {
	g.POST("/generate", controller.GenerateOutfit)
	g.POST("/generate/async", controller.GenerateOutfitAsync)
	g.GET("/history", controller.ListHistory)
	g.GET("/suggested", controller.ListSuggested)
	g.POST("/:outfitId/rate", controller.RateOutfit)
}

func generationErrorResponse(c echo.Context, userID uint, err error) error {
	switch {
	case errors.Is(err, outfitgen.ErrInsufficientItems):
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": outfitgen.ErrInsufficientItems.Error()})
	case errors.Is(err, outfitgen.ErrInvalidParameter):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	log.Printf("[User %v] Outfit generation failed: %v", userID, err)
	sentry.CaptureException(fmt.Errorf("[User %v] outfit generation failed: %w", userID, err))
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate outfit, please try again"})
}

// bindGenerateRequest returns the message for a 400 when the body is unusable.
func bindGenerateRequest(c echo.Context, req *GenerateOutfitIn) string {
	if err := c.Bind(req); err != nil {
		return "Invalid request body"
	}
	if err := c.Validate(*req); err != nil {
		return errorMessage(err)
	}
	return ""
}

func (controller *OutfitController) GenerateOutfit(c echo.Context) error {
	var req GenerateOutfitIn
	if msg := bindGenerateRequest(c, &req); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}
	user, ok := currentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	result, err := controller.Outfits.Generate(c.Request().Context(), services.GenerateRequest{
		UserID: user.ID,
		Params: req.Params(),
		Source: models.OutfitSourceAPI,
	})
	if err != nil {
		return generationErrorResponse(c, user.ID, err)
	}

	urls := controller.Images.ReadURLs(c.Request().Context(), imageKeys(result.Clothes))
	items := make([]OutfitItemResponse, 0, len(result.Outfit.Items))
	for i, item := range result.Outfit.Items {
		resp := OutfitItemResponse{Item: item, Name: result.Clothes[i].Name}
		if urls[i] != "" {
			resp.Uri = &urls[i]
		}
		items = append(items, resp)
	}
	suggested := outfitgen.PreferredTypes(result.Params.Weather)
	if suggested == nil {
		suggested = []string{}
	}
	return c.JSON(http.StatusOK, GeneratedOutfitResponse{
		GenerationID:   result.GenerationID,
		OutfitID:       result.OutfitID,
		Saved:          result.Saved,
		Items:          items,
		Score:          result.Outfit.Score,
		ColorScheme:    result.Outfit.ColorScheme,
		StyleTheme:     result.Outfit.StyleTheme,
		Occasion:       result.Outfit.Occasion,
		Weather:        result.Outfit.Weather,
		Condition:      result.Params.Condition,
		Breakdown:      result.Outfit.Breakdown,
		Candidates:     result.Outfit.Candidates,
		SuggestedTypes: suggested,
	})
}

func (controller *OutfitController) GenerateOutfitAsync(c echo.Context) error {
	var req GenerateOutfitIn
	if msg := bindGenerateRequest(c, &req); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}
	user, ok := currentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}
	if controller.Enqueuer == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "Service is not available, please try again a bit later"})
	}
	// fail fast instead of queueing a task that can never succeed
	params, err := outfitgen.Normalize(req.Params())
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	generationID := uuid.NewString()
	task, err := tasks.NewOutfitGenerationTask(user.ID, generationID, params)
	if err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Sorry, could not start generation, please try again"})
	}
	info, err := controller.Enqueuer.Enqueue(task, asynq.MaxRetry(3), asynq.Queue(tasks.QueueGenerate))
	if err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Sorry, could not start generation, please try again"})
	}
	log.Println("[Queue] Outfit generation task submitted, Generation ID: ", generationID, " Task ID: ", info.ID)
	return c.JSON(http.StatusAccepted, OutfitQueuedResponse{
		GenerationID: generationID,
		TaskID:       info.ID,
		Status:       "pending",
	})
}

// listOutfits binds limit from the query string on top of filter.
func (controller *OutfitController) listOutfits(c echo.Context, filter services.HistoryFilter) error {
	user, ok := currentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}
	filter.Limit = services.DefaultHistoryLimit
	if err := echo.QueryParamsBinder(c).Int("limit", &filter.Limit).BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid limit"})
	}
	filter.Limit = services.ClampHistoryLimit(filter.Limit)
	outfits, err := controller.History.List(c.Request().Context(), user.ID, filter)
	if err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch outfit history"})
	}
	if outfits == nil {
		outfits = []models.GeneratedOutfit{}
	}
	return c.JSON(http.StatusOK, OutfitHistoryResponse{Outfits: outfits})
}

// ListHistory accepts optional occasion and rating_min filters.
func (controller *OutfitController) ListHistory(c echo.Context) error {
	var filter services.HistoryFilter
	err := echo.QueryParamsBinder(c).
		String("occasion", &filter.Occasion).
		Int("rating_min", &filter.MinRating).
		BindError()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid history filter"})
	}
	filter.Occasion = strings.ToLower(strings.TrimSpace(filter.Occasion))
	return controller.listOutfits(c, filter)
}

// ListSuggested returns the outfits the daily task picked for the caller.
func (controller *OutfitController) ListSuggested(c echo.Context) error {
	return controller.listOutfits(c, services.HistoryFilter{Source: models.OutfitSourceDaily})
}

func (controller *OutfitController) RateOutfit(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}
	var outfitID uint
	if err := echo.PathParamsBinder(c).MustUint("outfitId", &outfitID).BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid outfit id"})
	}
	var req RateOutfitIn
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": errorMessage(err)})
	}
	outfit, err := controller.History.Rate(c.Request().Context(), user.ID, outfitID, req.Rating)
	if errors.Is(err, services.ErrOutfitNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Outfit not found"})
	}
	if err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to rate outfit"})
	}
	return c.JSON(http.StatusOK, outfit)
}
