package authenticator

type TokenEngine[T any] interface {
	// Generate signs a token whose subject is sub and whose payload is obj.
	Generate(sub string, obj T) (string, error)

	// Verify checks the token signature and expiration, then returns the
	// embedded payload.
	Verify(token string) (T, error)
}
