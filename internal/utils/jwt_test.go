package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTUtil_GenerateToken(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", 2)

	tokenString, err := jwtUtil.GenerateToken(1, "ann@x.com", "Employee", true)

	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	// Validate the token to ensure it's well-formed and contains correct claims
	claims, err := jwtUtil.ValidateToken(tokenString)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, "ann@x.com", claims.Email)
	assert.Equal(t, "Employee", claims.Role)
	assert.True(t, claims.Verified)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTUtil_ValidateToken_Malformed(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", 2)

	_, err := jwtUtil.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrTokenMalformed)

	_, err = jwtUtil.ValidateToken("")
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestJWTUtil_ValidateToken_ExpiredToken(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", -1) // Token expires in the past

	tokenString, err := jwtUtil.GenerateToken(1, "ann@x.com", "Employee", false)
	require.NoError(t, err)

	_, err = jwtUtil.ValidateToken(tokenString)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestJWTUtil_ValidateToken_WrongSecret(t *testing.T) {
	jwtUtil1 := NewJWTUtil("secret1", 2)
	jwtUtil2 := NewJWTUtil("secret2", 2)

	tokenString, err := jwtUtil1.GenerateToken(1, "ann@x.com", "Employee", false)
	require.NoError(t, err)

	_, err = jwtUtil2.ValidateToken(tokenString)
	assert.ErrorIs(t, err, ErrTokenSignatureInvalid)
}

func TestJWTUtil_ValidateToken_TamperedSignature(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", 2)

	tokenString, err := jwtUtil.GenerateToken(1, "ann@x.com", "Employee", false)
	require.NoError(t, err)

	// Flip one byte inside the signature segment
	parts := strings.Split(tokenString, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = jwtUtil.ValidateToken(tampered)
	assert.ErrorIs(t, err, ErrTokenSignatureInvalid)
}

func TestJWTUtil_ValidateToken_InvalidSigningMethod(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", 2)
	claims := &JWTClaims{
		UserID: 1,
		Email:  "ann@x.com",
		Role:   "Employee",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS384, claims)
	// Sign with the same secret, as the key type is compatible for HMAC algorithms
	tokenString, _ := token.SignedString([]byte("secret"))

	_, err := jwtUtil.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestJWTUtil_Expiration(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", 2)
	assert.Equal(t, 2*time.Hour, jwtUtil.Expiration())
}
