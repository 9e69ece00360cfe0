package jwtservice_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/drinklog/internal/error_values"
	"github.com/limbo/drinklog/pkg/entity"
	jwtservice "github.com/limbo/drinklog/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	s := jwtservice.New("secret", time.Minute)
	user := &entity.User{ID: uuid.New(), Name: "drinker"}
	token, err := s.GenerateToken(user)
	require.NoError(t, err)
	claims, err := s.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, "drinker", claims.Username)
}

func TestTokenRejected(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Name: "drinker"}
	token, err := jwtservice.New("secret", time.Minute).GenerateToken(user)
	require.NoError(t, err)

	_, err = jwtservice.New("other", time.Minute).ParseToken(token)
	assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)

	_, err = jwtservice.New("secret", time.Minute).ParseToken("not.a.token")
	assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
}
