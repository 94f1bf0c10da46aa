package cache

import "strings"

const (
	GlobalKeyPrefix = "healthscreen"
)

// Service and object names used in cache keys.
const (
	ServiceAnalysis  = "analysis"
	ServiceDashboard = "dashboard"

	ObjectResult = "result"
	ObjectStats  = "stats"
	ObjectIssues = "issues"
	ObjectAges   = "age_groups"
	ObjectTrend  = "trend"
	ObjectSBP    = "sitting_backpain"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// ServicePrefix returns the prefix shared by every key of a service.
func ServicePrefix(serviceName string) string {
	return GlobalKeyPrefix + ":" + serviceName + ":"
}
