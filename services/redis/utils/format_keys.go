package utils

/**
 * Key formats for the Redis (key, value) pairs, so the layout is defined
 * in one place.
 */

import "fmt"

func FormatRevokedTokenKey(tokenKey string) string {
	return fmt.Sprintf("revoked:%s", tokenKey)
}
