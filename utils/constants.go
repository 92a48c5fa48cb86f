// File: utils/constants.go
package utils

import "time"

// SearchCachePrefix is the prefix used for Redis search-response cache keys.
const SearchCachePrefix = "search:"

// SearchCacheTTL is the time-to-live for cached search responses. Kept short
// so an entry that escapes invalidation still ages out quickly.
const SearchCacheTTL = 30 * time.Second
