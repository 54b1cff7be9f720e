package handlers

import (
	"net/url"
	"strconv"
)

// queryInt64 reads an integer query parameter, falling back to def when the
// parameter is absent. A malformed value is reported in fields so listing
// endpoints reject it with per-field detail instead of silently defaulting.
func queryInt64(values url.Values, key string, def int64, fields map[string][]string) int64 {
	raw := values.Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fields[key] = append(fields[key], "Must be an integer")
		return def
	}
	return n
}

func queryString(values url.Values, key, def string) string {
	if v := values.Get(key); v != "" {
		return v
	}
	return def
}
