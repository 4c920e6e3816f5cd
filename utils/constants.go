// File: utils/constants.go
package utils

import "time"

// SessionMirrorPrefix is the prefix used for Redis session role mirror keys.
const SessionMirrorPrefix = "sessionRole:"

// LawyerListCacheKey caches the public lawyer listing.
const LawyerListCacheKey = "lawyers:listing"

// LawyerListCacheTTL is the time-to-live for the lawyer listing cache entry.
const LawyerListCacheTTL = 5 * time.Minute
