package common

import (
	"fmt"

	"github.com/quotelane/backend/pkg/crypto"
)

// RedisKeyTokenBlacklist keys a revoked access token by its digest, so the
// raw token never reaches the cache.
func RedisKeyTokenBlacklist(token string) string {
	return fmt.Sprintf("tokenblacklist:%s", crypto.SHA256([]byte(token)))
}
