package models

import (
	"strings"

	"stylesnapapi/outfitgen"

	"github.com/go-playground/validator"
)

func normalized(fl validator.FieldLevel) string {
	return strings.ToLower(strings.TrimSpace(fl.Field().String()))
}

func ValidateOccasion(fl validator.FieldLevel) bool {
	return outfitgen.ValidOccasion(outfitgen.Occasion(normalized(fl)))
}

func ValidateWeather(fl validator.FieldLevel) bool {
	return outfitgen.ValidWeather(outfitgen.Weather(normalized(fl)))
}

func ValidateCondition(fl validator.FieldLevel) bool {
	return outfitgen.ValidCondition(outfitgen.Condition(normalized(fl)))
}

func ValidateStyle(fl validator.FieldLevel) bool {
	return outfitgen.ValidStyle(normalized(fl))
}

// Clearable lets an empty value through on top of fn, for settings where ""
// resets a stored default.
func Clearable(fn validator.Func) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return normalized(fl) == "" || fn(fl)
	}
}

// ValidateCategory accepts the closet categories the generator buckets on.
func ValidateCategory(fl validator.FieldLevel) bool {
	switch outfitgen.Category(normalized(fl)) {
	case outfitgen.CategoryTop, outfitgen.CategoryBottom, outfitgen.CategoryOuterwear,
		outfitgen.CategoryShoes, outfitgen.CategoryAccessory:
		return true
	}
	return false
}
