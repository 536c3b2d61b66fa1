package http

import (
	"net"
	"net/http"
	"strings"
)

// unknownAddr is the sentinel identity for requests whose address cannot be
// determined. All such callers collide into one voter.
const unknownAddr = "unknown"

// ClientIP resolves the caller's address for vote identity: the first entry
// of X-Forwarded-For, then X-Real-IP, then the host part of RemoteAddr.
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}

	if real := strings.TrimSpace(r.Header.Get("X-Real-Ip")); real != "" {
		return real
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}
	if ip == "" {
		return unknownAddr
	}
	return ip
}
