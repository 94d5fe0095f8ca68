package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
)

const (
	GlobalKeyPrefix = "leembo"

	ServiceSearch     = "search"
	ObjectTypeResults = "results"
)

// GenerateCacheKey builds "leembo:{service}:{type}:{id}" and appends the
// params joined by "_" as a final segment when any are given.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return baseKey + ":" + strings.Join(paramsKey, "_")
	}
	return baseKey
}

// SearchResultsKey identifies a search by query, depth and domain filter.
// The query is hashed so arbitrary user text never leaks into key names;
// domain order does not matter.
func SearchResultsKey(query, depth string, includeDomains []string, maxResults int) string {
	domains := append([]string(nil), includeDomains...)
	sort.Strings(domains)

	h := sha256.New()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(query))))
	h.Write([]byte{0})
	h.Write([]byte(strings.Join(domains, ",")))
	id := hex.EncodeToString(h.Sum(nil))[:32]

	params := []string{depth}
	if maxResults > 0 {
		params = append(params, "n"+strconv.Itoa(maxResults))
	}
	return GenerateCacheKey(ServiceSearch, ObjectTypeResults, id, params...)
}
