package access

import (
	"path"
	"strings"
)

var bypassPrefixes = []string{"/_next/", "/swagger/", "/static/"}

var bypassPaths = map[string]struct{}{
	"/health":      {},
	"/favicon.ico": {},
}

// IsStaticAsset reports whether path is served without authorization:
// bundler output, files with an extension and infrastructure endpoints.
func IsStaticAsset(p string) bool {
	if _, ok := bypassPaths[p]; ok {
		return true
	}
	for _, prefix := range bypassPrefixes {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return path.Ext(path.Base(p)) != ""
}
