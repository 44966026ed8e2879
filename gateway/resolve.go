package gateway

import "strings"

const (
	// DefaultLocalBaseURL is used when no hostname is available or the
	// host is local.
	DefaultLocalBaseURL = "http://localhost:8000"

	// BackendPort is where the API listens next to any other frontend
	// host.
	BackendPort = "8000"
)

// Hosted-preview domains where the API runs as a sibling deployment.
var previewDomains = []string{".replit.app", ".repl.co"}

// ResolveBaseURL maps the frontend hostname to the backend base
// address. Pure and deterministic: the same hostname always yields the
// same address.
//
//   - empty or local host -> the fixed local default
//   - hosted-preview host -> the "-backend" sibling on the same domain
//   - anything else       -> the same host on the backend port
func ResolveBaseURL(hostname string) string {
	host := strings.ToLower(strings.TrimSpace(hostname))

	if host == "" || host == "localhost" || host == "127.0.0.1" {
		return DefaultLocalBaseURL
	}

	for _, domain := range previewDomains {
		if strings.HasSuffix(host, domain) {
			return "https://" + strings.Replace(host, "-frontend", "-backend", 1)
		}
	}

	return "http://" + host + ":" + BackendPort
}
