// Package requestmeta resolves request scheme and origin facts for cookie and
// form handling.
package requestmeta

import (
	"net/http"
	"net/url"
	"strings"
)

// SchemePolicy controls how the request scheme is resolved.
//
// X-Forwarded-Proto is only honoured when TrustForwardedProto is set.
type SchemePolicy struct {
	TrustForwardedProto bool
}

// IsHTTPS reports whether r should be treated as HTTPS under policy.
func IsHTTPS(r *http.Request, policy SchemePolicy) bool {
	return scheme(r, policy) == "https"
}

// OriginVerdict is the result of comparing a request's declared origin with
// the host it was sent to.
type OriginVerdict int

const (
	// OriginAbsent means neither Origin nor Referer was sent.
	OriginAbsent OriginVerdict = iota
	// OriginSame means the declared origin matches the request host.
	OriginSame
	// OriginCross means the declared origin names another site.
	OriginCross
)

// CheckOrigin compares Origin, falling back to Referer, with the request host.
func CheckOrigin(r *http.Request, policy SchemePolicy) OriginVerdict {
	if r == nil {
		return OriginAbsent
	}
	declared := strings.TrimSpace(r.Header.Get("Origin"))
	if declared == "" {
		declared = strings.TrimSpace(r.Header.Get("Referer"))
	}
	if declared == "" {
		return OriginAbsent
	}
	if sameOrigin(r, declared, policy) {
		return OriginSame
	}
	return OriginCross
}

func sameOrigin(r *http.Request, declared string, policy SchemePolicy) bool {
	parsed, err := url.Parse(declared)
	if err != nil {
		return false
	}
	originScheme := strings.ToLower(parsed.Scheme)
	requestScheme := scheme(r, policy)
	if originScheme == "" || originScheme != requestScheme {
		return false
	}
	host, port := hostParts(r.Host)
	if host == "" && r.URL != nil {
		host, port = hostParts(r.URL.Host)
	}
	if host == "" || strings.ToLower(parsed.Hostname()) != host {
		return false
	}
	originPort := parsed.Port()
	if originPort == "" {
		originPort = defaultPort(originScheme)
	}
	if port == "" {
		port = defaultPort(requestScheme)
	}
	return originPort != "" && originPort == port
}

func scheme(r *http.Request, policy SchemePolicy) string {
	if r == nil {
		return ""
	}
	if policy.TrustForwardedProto {
		if forwarded := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto"))); forwarded == "http" || forwarded == "https" {
			return forwarded
		}
	}
	if r.URL != nil {
		if s := strings.ToLower(r.URL.Scheme); s == "http" || s == "https" {
			return s
		}
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

func defaultPort(scheme string) string {
	switch scheme {
	case "https":
		return "443"
	case "http":
		return "80"
	default:
		return ""
	}
}

func hostParts(raw string) (string, string) {
	parsed, err := url.Parse("//" + strings.TrimSpace(raw))
	if err != nil {
		return "", ""
	}
	return strings.ToLower(parsed.Hostname()), parsed.Port()
}
