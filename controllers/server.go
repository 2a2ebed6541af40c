package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"stylesnapapi/models"
	"stylesnapapi/services"

	"github.com/go-playground/validator"
	"github.com/hibiken/asynq"
	echojwt "github.com/labstack/echo-jwt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// errorMessage drops the "code=..., message=" framing of an echo.HTTPError.
func errorMessage(err error) string {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return fmt.Sprint(httpErr.Message)
	}
	return err.Error()
}

// TaskEnqueuer is the part of *asynq.Client the handlers use.
type TaskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterValidation("occasion", models.ValidateOccasion)
	v.RegisterValidation("weather", models.ValidateWeather)
	v.RegisterValidation("condition", models.ValidateCondition)
	v.RegisterValidation("style", models.ValidateStyle)
	v.RegisterValidation("default_occasion", models.Clearable(models.ValidateOccasion))
	v.RegisterValidation("default_weather", models.Clearable(models.ValidateWeather))
	v.RegisterValidation("default_style", models.Clearable(models.ValidateStyle))
	v.RegisterValidation("category", models.ValidateCategory)
	return &CustomValidator{validator: v}
}

func SetupServer(
	users services.UserProvider,
	closet services.ClosetProvider,
	history services.OutfitHistoryProvider,
	awsService services.AWSServiceProvider,
	urlCache services.ImageURLProvider,
	asynqClient TaskEnqueuer,
) *echo.Echo {
	err := awsService.InitPresignClient(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize AWS provider: S3: %v", err)
	}

	e := echo.New()
	e.Validator = NewValidator()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("__users", users)
			return next(c)
		}
	})
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	images := &ImagePresigner{AWSService: awsService, URLCache: urlCache}
	jwtMiddleware := echojwt.JWT([]byte(os.Getenv("JWT_SECRET")))

	outfitController := OutfitController{
		Outfits:  services.NewOutfitService(closet, history),
		History:  history,
		Images:   images,
		Enqueuer: asynqClient,
	}
	outfitGroup := e.Group("/outfits", jwtMiddleware, UserMiddleware)
	outfitController.OutfitRoutes(outfitGroup)

	clothesController := ClothesController{Closet: closet, Images: images}
	clothesGroup := e.Group("/clothes", jwtMiddleware, UserMiddleware)
	clothesController.ClothingRoutes(clothesGroup)

	profileController := ProfileController{Users: users}
	profileGroup := e.Group("/profile", jwtMiddleware, UserMiddleware)
	profileController.ProfileRoutes(profileGroup)

	return e
}
