// File: utils/constants.go
package utils

import "time"

// HistoryCachePrefix is the prefix used for customer history cache keys.
const HistoryCachePrefix = "history:"

// HistoryCacheTTL is the time-to-live for customer history cache entries.
const HistoryCacheTTL = 5 * time.Minute
