package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	req := require.New(t)
	password := "MySuperS3cretPassword!"

	hash, err := HashPassword(password)
	req.NoError(err)
	req.True(strings.HasPrefix(hash, "$argon2id$"))

	match, err := ComparePassword(password, hash)
	req.NoError(err)
	req.True(match)

	// Wrong password must not match
	match, err = ComparePassword("WrongPassword", hash)
	req.NoError(err)
	req.False(match)
}

func TestComparePassword_Malformed_Hash(t *testing.T) {
	req := require.New(t)
	for _, encoded := range []string{
		"",
		"not-a-hash",
		"$argon2i$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA", // wrong variant
		"$argon2id$v=19$m=65536,t=3,p=2$!!!$aGFzaA",   // bad salt encoding
	} {
		match, err := ComparePassword("whatever", encoded)
		req.Error(err)
		req.False(match)
	}
}

func TestRegistrationValidation(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr bool
	}{
		{"Valid request", RegisterRequest{"test@example.com", "Alice", "ComplexPass123!"}, false},
		{"Invalid email", RegisterRequest{"notanemail", "Alice", "ComplexPass123!"}, true},
		{"Missing display name", RegisterRequest{"test@example.com", "", "ComplexPass123!"}, true},
		{"Display name too short", RegisterRequest{"test@example.com", "A", "ComplexPass123!"}, true},
		{"Password too short", RegisterRequest{"test@example.com", "Alice", "Short1!"}, true},
		{"Missing digit", RegisterRequest{"test@example.com", "Alice", "NoDigitPassword!"}, true},
		{"Missing special char", RegisterRequest{"test@example.com", "Alice", "NoSpecialChar123"}, true},
		{"Missing uppercase", RegisterRequest{"test@example.com", "Alice", "nouppercase123!!"}, true},
		{"Password too long (edge case)", RegisterRequest{"test@example.com", "Alice", strings.Repeat("a", 73)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegister(tt.req)
			if tt.wantErr {
				req.Error(err)
			} else {
				req.NoError(err)
			}
		})
	}
}

func TestTokenRoundTrip(t *testing.T) {
	req := require.New(t)

	token, err := GenerateToken("user-123", "Alice", []string{"user"}, 1*time.Hour)
	req.NoError(err)

	claims, err := ValidateToken(token)
	req.NoError(err)
	req.Equal("user-123", claims.UserID)
	req.Equal("Alice", claims.DisplayName)
	req.Equal([]string{"user"}, claims.Roles)
	req.Equal("story-splitter", claims.Issuer)
}

func TestTokenExpired(t *testing.T) {
	req := require.New(t)

	token, err := GenerateToken("user-123", "Alice", []string{"user"}, -1*time.Minute)
	req.NoError(err)

	_, err = ValidateToken(token)
	req.Error(err)
}

// BenchmarkHashPassword measures the CPU/RAM cost of the Argon2id parameters
func BenchmarkHashPassword(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = HashPassword("A-very-long-and-complex-password-for-bench-123!")
	}
}
