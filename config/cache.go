package config

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

// ChartCache holds shaped chart/map responses keyed by endpoint and filter
// parameters. Reruns with the same selection hit the cache instead of
// reshaping the filtered view.
var ChartCache *cache.Cache

const (
	chartCacheDuration   = 5 * time.Minute
	chartCleanupInterval = 10 * time.Minute
)

func InitCache() {
	ChartCache = cache.New(chartCacheDuration, chartCleanupInterval)
}

func ClearAllCaches() {
	if ChartCache != nil {
		ChartCache.Flush()
	}
}

// CacheKey joins an endpoint prefix with its filter parameters.
func CacheKey(prefix string, params ...interface{}) string {
	key := prefix
	for _, param := range params {
		key += ":" + fmt.Sprintf("%v", param)
	}
	return key
}
