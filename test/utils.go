package test

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"stylesnapapi/dbhelper"
	"stylesnapapi/models"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

const TestJWTSecret = "test-secret"

func JsonString(model interface{}) string {
	bytes, _ := json.Marshal(model)
	return string(bytes)
}

func NewJSONRequest(method string, target string, param interface{}) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(JsonString(param)))
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	return req
}

func GenerateUserToken(userPk string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userPk,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 72)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	t, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		log.Fatalf("Error when signing user token for %s. Error %s ", userPk, err)
	}
	return t
}

func NewJSONAuthRequest(method string, target string, userPk string, param interface{}) *http.Request {
	req := NewJSONRequest(method, target, param)
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", GenerateUserToken(userPk)))
	return req
}

func NewJSONAuthRequestRaw(method string, target string, userPk string, json string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(json))
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", GenerateUserToken(userPk)))
	return req
}

// DBOrSkip opens the test database, skipping the test when postgres is unreachable.
func DBOrSkip(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := dbhelper.OpenTestDB()
	if err != nil {
		t.Skipf("postgres not available: %v", err)
	}
	t.Cleanup(dbhelper.SetupCleaner(db))
	return db
}

func FakeUser(db *gorm.DB, email string) *models.UserAccount {
	if email == "" {
		email = "email@example.com"
	}
	user := &models.UserAccount{
		Name:  "OurName",
		Email: email,
	}
	db.Create(user)
	return user
}

func FakeClothing(db *gorm.DB, owner *models.UserAccount, category, clothingType, color string, tags ...string) *models.Clothing {
	clothing := &models.Clothing{
		Name:         fmt.Sprintf("%s %s", color, clothingType),
		Category:     category,
		ClothingType: clothingType,
		PrimaryColor: &color,
		StyleTags:    tags,
		OwnerID:      owner.ID,
		Status:       "in_closet",
		ImageURL:     NewRefString(fmt.Sprintf("clothes/%s-%s.jpg", category, color)),
	}
	db.Create(clothing)
	return clothing
}

func NewRefString(data string) *string {
	return &data
}
