package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"stylesnapapi/models"
	"stylesnapapi/outfitgen"
	"stylesnapapi/services"

	"github.com/getsentry/sentry-go"
	"github.com/hibiken/asynq"
)

const (
	TypeGenerateOutfit = "generate:outfit"
	TypeDailyOutfit    = "outfit:daily"

	QueueGenerate = "generate"
)

type OutfitGenerationPayload struct {
	UserID       uint             `json:"user_id"`
	GenerationID string           `json:"generation_id"`
	Params       outfitgen.Params `json:"params"`
}

func NewOutfitGenerationTask(userID uint, generationID string, params outfitgen.Params) (*asynq.Task, error) {
	payload, err := json.Marshal(OutfitGenerationPayload{
		UserID:       userID,
		GenerationID: generationID,
		Params:       params,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeGenerateOutfit, payload), nil
}

func NewDailyOutfitTask() *asynq.Task {
	return asynq.NewTask(TypeDailyOutfit, []byte{})
}

// terminal errors will fail the same way on every retry
func isTerminal(err error) bool {
	return errors.Is(err, outfitgen.ErrInsufficientItems) || errors.Is(err, outfitgen.ErrInvalidParameter)
}

func HandleOutfitGenerationTask(ctx context.Context, t *asynq.Task, outfits services.OutfitGenerator) error {
	var payload OutfitGenerationPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		sentry.CaptureException(fmt.Errorf("[Queue] bad %s payload: %w", TypeGenerateOutfit, err))
		return fmt.Errorf("json.Unmarshal failed: %v: %w", err, asynq.SkipRetry)
	}
	log.Printf("[Outfit: %s] Generating for user %v", payload.GenerationID, payload.UserID)

	result, err := outfits.Generate(ctx, services.GenerateRequest{
		UserID:       payload.UserID,
		Params:       payload.Params,
		Source:       models.OutfitSourceAsync,
		GenerationID: payload.GenerationID,
	})
	if isTerminal(err) {
		log.Printf("[Outfit: %s] Not generated for user %v: %v", payload.GenerationID, payload.UserID, err)
		return nil
	}
	if err != nil {
		sentry.CaptureException(fmt.Errorf("[Outfit: %s] generation failed: %w", payload.GenerationID, err))
		return err
	}
	log.Printf("[Outfit: %s] Generated score %v, saved %v", result.GenerationID, result.Outfit.Score, result.Saved)
	return nil
}

// DailyParams builds the daily generation parameters from the user's stored
// defaults, falling back to a casual outfit for warm weather.
func DailyParams(user models.UserAccount) outfitgen.Params {
	params := outfitgen.Params{
		Occasion: outfitgen.OccasionCasual,
		Weather:  outfitgen.WeatherWarm,
	}
	if user.DefaultOccasion != nil && *user.DefaultOccasion != "" {
		params.Occasion = outfitgen.Occasion(*user.DefaultOccasion)
	}
	if user.DefaultWeather != nil && *user.DefaultWeather != "" {
		params.Weather = outfitgen.Weather(*user.DefaultWeather)
	}
	if user.DefaultStyle != nil {
		params.Style = *user.DefaultStyle
	}
	return params
}

// HandleDailyOutfitTask generates one outfit for every opted-in user. A
// failure for one user never stops the run.
func HandleDailyOutfitTask(ctx context.Context, t *asynq.Task, users services.UserProvider, outfits services.OutfitGenerator) error {
	dailyUsers, err := users.DailyOutfitUsers(ctx)
	if err != nil {
		sentry.CaptureException(fmt.Errorf("[Daily Outfit] listing users: %w", err))
		return err
	}
	log.Printf("[Daily Outfit] Generating for %v users", len(dailyUsers))

	generated, skipped, failed := 0, 0, 0
	for _, user := range dailyUsers {
		if err := ctx.Err(); err != nil {
			return err
		}
		_, err := outfits.Generate(ctx, services.GenerateRequest{
			UserID: user.ID,
			Params: DailyParams(user),
			Source: models.OutfitSourceDaily,
		})
		switch {
		case err == nil:
			generated++
		case isTerminal(err):
			skipped++
			log.Printf("[Daily Outfit] Skipped user %v: %v", user.ID, err)
		default:
			failed++
			sentry.WithScope(func(scope *sentry.Scope) {
				scope.SetTag("task", TypeDailyOutfit)
				scope.SetExtra("user_id", user.ID)
				sentry.CaptureException(err)
			})
		}
	}
	log.Printf("[Daily Outfit] Done: %v generated, %v skipped, %v failed", generated, skipped, failed)
	return nil
}
