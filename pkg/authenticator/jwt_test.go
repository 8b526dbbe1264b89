package authenticator_test

import (
	"testing"
	"time"

	"github.com/quotelane/backend/pkg/authenticator"
	"github.com/stretchr/testify/require"
)

type payload struct {
	ID string `json:"id"`
}

func TestJWT(t *testing.T) {
	engine := authenticator.NewTokenEngine[payload]("secret", time.Minute)
	token, err := engine.Generate("user1", payload{ID: "user1"})
	require.NoError(t, err)

	obj, err := engine.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user1", obj.ID)
}

func TestJWTExpiration(t *testing.T) {
	engine := authenticator.NewTokenEngine[payload]("secret", -time.Minute)
	token, err := engine.Generate("user1", payload{ID: "user1"})
	require.NoError(t, err)

	_, err = engine.Verify(token)
	require.Error(t, err)
}

func TestJWTWrongSecret(t *testing.T) {
	engine := authenticator.NewTokenEngine[payload]("secret", time.Minute)
	token, err := engine.Generate("user1", payload{ID: "user1"})
	require.NoError(t, err)

	another := authenticator.NewTokenEngine[payload]("another-secret", time.Minute)
	_, err = another.Verify(token)
	require.Error(t, err)
}
