package pkg

import (
	"fmt"
	"net"
	"net/http"
	"regexp"
	"strings"
)

const LocalhostIP = "localhost"

var localDockerIpRegex = regexp.MustCompile(`^172\.\d{1,3}\.0\.1$`)

// IPIsLocal reports whether the address comes from local development or a docker bridge.
func IPIsLocal(ipAddr string) bool {
	if host, _, err := net.SplitHostPort(ipAddr); err == nil {
		ipAddr = host
	}
	if ipAddr == "127.0.0.1" || ipAddr == "::1" {
		return true
	}
	return localDockerIpRegex.MatchString(ipAddr)
}

// ReadUserIP returns the caller IP, honouring reverse proxy headers.
// Local addresses resolve to LocalhostIP.
func ReadUserIP(r *http.Request) (string, error) {
	ipAddr := r.Header.Get("X-Real-Ip")
	if ipAddr == "" {
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			ipAddr = strings.TrimSpace(strings.Split(forwarded, ",")[0])
		}
	}
	if ipAddr == "" {
		ipAddr = r.RemoteAddr
	}

	if IPIsLocal(ipAddr) {
		return LocalhostIP, nil
	}

	if host, _, err := net.SplitHostPort(ipAddr); err == nil {
		ipAddr = host
	}

	if ip := net.ParseIP(ipAddr); ip == nil {
		return "", fmt.Errorf("ip addr %s is invalid", ipAddr)
	}

	return ipAddr, nil
}
