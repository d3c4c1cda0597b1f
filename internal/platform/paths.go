package platform

import (
	"net/url"
	"strings"
)

const (
	customersBase = "/api/v1/customers"
	tasksBase     = "/api/v1/tasks"
)

// joinPath appends identifier segments to a fixed base path, escaping each
// segment so identifiers with reserved characters cannot malform the URL.
func joinPath(base string, segs ...string) string {
	var b strings.Builder
	b.WriteString(base)
	for _, s := range segs {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

// resourceOf extracts the resource segment from an API path, for metrics.
func resourceOf(path string) string {
	segs := strings.Split(strings.TrimPrefix(path, "/"), "/")
	if len(segs) < 3 {
		return "unknown"
	}
	return segs[2]
}
