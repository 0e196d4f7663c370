package utils

import (
	"testing"

	"github.com/aitbensouda/krili-backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := &models.User{
		ID:       "u1",
		Email:    "amine@example.com",
		UserType: models.UserTypeClient,
	}

	tokenString, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	token, err := ValidateToken(tokenString)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !token.Valid {
		t.Fatal("token should be valid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("expected map claims")
	}
	if claims["id"] != "u1" {
		t.Fatalf("expected id u1 got %v", claims["id"])
	}
	if claims["userType"] != "client" {
		t.Fatalf("expected userType client got %v", claims["userType"])
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	tokenString, err := GenerateToken(&models.User{ID: "u1"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	t.Setenv("JWT_SECRET", "other-secret")
	token, err := ValidateToken(tokenString)
	if err == nil && token.Valid {
		t.Fatal("token signed with a different secret should not validate")
	}
}
