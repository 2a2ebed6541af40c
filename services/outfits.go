package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"stylesnapapi/models"
	"stylesnapapi/outfitgen"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
)

type GenerateRequest struct {
	UserID uint
	Params outfitgen.Params
	// api, async or daily
	Source string
	// assigned when empty; async callers pick it at enqueue time
	GenerationID string
}

type GenerationResult struct {
	GenerationID string
	Params       outfitgen.Params
	Outfit       outfitgen.Outfit
	// Clothes holds the stored rows of the outfit items, in outfit order.
	Clothes  []models.Clothing
	OutfitID *uint
	Saved    bool
}

// OutfitGenerator is what the HTTP and queue layers need from OutfitService.
type OutfitGenerator interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerationResult, error)
}

// OutfitService loads the closet, runs the generator and records the result.
// A failed history write never fails the generation.
type OutfitService struct {
	Closet    ClosetProvider
	History   OutfitHistoryProvider
	Generator *outfitgen.Generator
}

func NewOutfitService(closet ClosetProvider, history OutfitHistoryProvider, opts ...outfitgen.Option) *OutfitService {
	return &OutfitService{
		Closet:    closet,
		History:   history,
		Generator: outfitgen.New(opts...),
	}
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, outfitgen.ErrInsufficientItems):
		return OutcomeInsufficientItems
	case errors.Is(err, outfitgen.ErrInvalidParameter):
		return OutcomeInvalidParameter
	}
	return OutcomeClosetError
}

func (s *OutfitService) Generate(ctx context.Context, req GenerateRequest) (*GenerationResult, error) {
	started := time.Now()
	if req.Source == "" {
		req.Source = models.OutfitSourceAPI
	}
	if req.GenerationID == "" {
		req.GenerationID = uuid.NewString()
	}

	result, err := s.generate(ctx, req)
	if err != nil {
		RecordGeneration(req.Source, outcomeOf(err), time.Since(started))
		return nil, err
	}
	RecordGeneration(req.Source, OutcomeGenerated, time.Since(started))
	OutfitScore.Observe(float64(result.Outfit.Score))
	OutfitCandidates.Observe(float64(result.Outfit.Candidates))
	return result, nil
}

func (s *OutfitService) generate(ctx context.Context, req GenerateRequest) (*GenerationResult, error) {
	// reject bad parameters before touching the closet
	params, err := outfitgen.Normalize(req.Params)
	if err != nil {
		return nil, err
	}

	clothes, err := s.Closet.ListItems(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("loading closet for user %v: %w", req.UserID, err)
	}

	outfit, err := s.Generator.Generate(ToGeneratorItems(clothes), params)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.Clothing, len(clothes))
	for _, clothing := range clothes {
		byID[ClothingItemID(clothing.ID)] = clothing
	}
	result := &GenerationResult{
		GenerationID: req.GenerationID,
		Params:       params,
		Outfit:       outfit,
		Clothes:      make([]models.Clothing, 0, len(outfit.Items)),
	}
	itemIDs := make([]string, 0, len(outfit.Items))
	for _, item := range outfit.Items {
		itemIDs = append(itemIDs, item.ID)
		result.Clothes = append(result.Clothes, byID[item.ID])
	}

	if s.History == nil {
		return result, nil
	}
	record := &models.GeneratedOutfit{
		GenerationID:     req.GenerationID,
		UserAccountID:    req.UserID,
		ItemIDs:          itemIDs,
		Occasion:         string(params.Occasion),
		WeatherCondition: string(params.Weather),
		Condition:        StrPointer(string(params.Condition)),
		Style:            StrPointer(params.Style),
		ColorScheme:      string(outfit.ColorScheme),
		StyleTheme:       outfit.StyleTheme,
		AIScore:          outfit.Score,
		Candidates:       outfit.Candidates,
		Source:           req.Source,
	}
	if err := s.History.Record(ctx, record); err != nil {
		log.Printf("[Outfit: %s] Failed to record generated outfit for user %v: %v", req.GenerationID, req.UserID, err)
		OutfitHistoryFailuresTotal.Inc()
		sentry.WithScope(func(scope *sentry.Scope) {
			scope.SetTag("failure_type", "outfit_history")
			scope.SetExtra("generation_id", req.GenerationID)
			scope.SetExtra("user_id", req.UserID)
			sentry.CaptureException(err)
		})
		return result, nil
	}
	result.Saved = true
	result.OutfitID = &record.ID
	return result, nil
}
