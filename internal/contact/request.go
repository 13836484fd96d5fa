package contact

import (
	"net"
	"net/http"
	"strings"

	"github.com/mileusna/useragent"
)

// ClientIP picks the first entry of the X-Forwarded-For chain, falling
// back to the connection's remote address. The header is taken at face
// value with no validation; a client can spoof it. Kept that way on
// purpose to preserve the existing contract.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// DeviceDescription renders a raw User-Agent as "Browser version (OS
// version)". When the parser recognizes nothing, the raw string is better
// than an empty one.
func DeviceDescription(rawUA string) string {
	ua := useragent.Parse(rawUA)
	if ua.Name == "" {
		return rawUA
	}

	desc := ua.Name
	if ua.Version != "" {
		desc += " " + ua.Version
	}
	if ua.OS != "" {
		os := ua.OS
		if ua.OSVersion != "" {
			os += " " + ua.OSVersion
		}
		desc += " (" + os + ")"
	}
	return desc
}
