package auth

import (
	"testing"
	"time"

	"github.com/MustaliSadikot/pg-finder-ms/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestJWTManager_IssueParse(t *testing.T) {
	m := NewJWTManager("secret", "pg-finder", time.Hour)

	token, err := m.Issue(domain.Session{UserID: "u1", Role: domain.RoleOwner})
	require.NoError(t, err)

	session, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", session.UserID)
	assert.Equal(t, domain.RoleOwner, session.Role)
}

func TestJWTManager_Parse_WrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret", "pg-finder", time.Hour).
		Issue(domain.Session{UserID: "u1", Role: domain.RoleTenant})
	require.NoError(t, err)

	_, err = NewJWTManager("other", "pg-finder", time.Hour).Parse(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTManager_Parse_Expired(t *testing.T) {
	m := NewJWTManager("secret", "pg-finder", time.Minute)
	m.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := m.Issue(domain.Session{UserID: "u1", Role: domain.RoleTenant})
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Parse(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTManager_Parse_WrongIssuer(t *testing.T) {
	token, err := NewJWTManager("secret", "someone-else", time.Hour).
		Issue(domain.Session{UserID: "u1", Role: domain.RoleTenant})
	require.NoError(t, err)

	_, err = NewJWTManager("secret", "pg-finder", time.Hour).Parse(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTManager_Parse_RejectsOtherAlgorithms(t *testing.T) {
	c := claims{UserID: "u1", Role: domain.RoleOwner, RegisteredClaims: jwt.RegisteredClaims{Issuer: "pg-finder"}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, c).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewJWTManager("secret", "pg-finder", time.Hour).Parse(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTManager_Parse_UnknownRole(t *testing.T) {
	token, err := NewJWTManager("secret", "pg-finder", time.Hour).
		Issue(domain.Session{UserID: "u1", Role: "admin"})
	require.NoError(t, err)

	_, err = NewJWTManager("secret", "pg-finder", time.Hour).Parse(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.NoError(t, h.Compare(hash, "hunter22"))
	assert.Error(t, h.Compare(hash, "hunter23"))
}

func TestNewBcryptHasher_DefaultCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost)
	assert.Equal(t, bcrypt.MinCost, NewBcryptHasher(bcrypt.MinCost).cost)
}
