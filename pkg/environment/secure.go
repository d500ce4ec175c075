package environment

import (
	"net/url"
	"strings"
)

// IsSecure reports whether an application served from rawURL in env may
// handle credentials. It holds when the page is served over https, when it
// runs on a loopback host, or when env is not production.
// An unparsable URL is treated as insecure in production.
func IsSecure(rawURL string, env Environment) bool {
	if !env.IsProduction() {
		return true
	}

	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return false
	}
	if strings.EqualFold(u.Scheme, "https") {
		return true
	}

	switch strings.ToLower(u.Hostname()) {
	case "localhost", "127.0.0.1":
		return true
	}
	return false
}
