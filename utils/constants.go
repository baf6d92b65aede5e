// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// SlotCachePrefix is the prefix for cached open-slot resolutions.
const SlotCachePrefix = "slots:"

// SlotCacheTTL keeps open-slot answers only briefly; availability changes
// with every acceptance and blackout toggle.
const SlotCacheTTL = 30 * time.Second
