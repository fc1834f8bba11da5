package ratelimit

import (
	"fmt"
	"net"
	"net/http"
	"strings"
)

// ClientIP derives the rate limit key from the caller's address. Forwarding
// headers are honoured only when the connection comes from a trusted proxy;
// anyone else could put an arbitrary address in them.
type ClientIP struct {
	trusted []*net.IPNet
}

// ParseTrustedProxies parses a comma separated list of CIDRs or plain
// addresses
func ParseTrustedProxies(list string) ([]*net.IPNet, error) {
	var nets []*net.IPNet
	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if !strings.Contains(item, "/") {
			ip := net.ParseIP(item)
			if ip == nil {
				return nil, fmt.Errorf("invalid proxy address %q", item)
			}
			bits := 128
			if ip.To4() != nil {
				ip, bits = ip.To4(), 32
			}
			nets = append(nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			continue
		}
		_, n, err := net.ParseCIDR(item)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy range %q: %w", item, err)
		}
		nets = append(nets, n)
	}
	return nets, nil
}

// NewClientIP creates a key function trusting the given proxy list
func NewClientIP(trustedProxies string) (*ClientIP, error) {
	nets, err := ParseTrustedProxies(trustedProxies)
	if err != nil {
		return nil, err
	}
	return &ClientIP{trusted: nets}, nil
}

// Key returns the client address for r. Behind a trusted proxy it is the
// nearest X-Forwarded-For hop that is not itself a trusted proxy.
func (c *ClientIP) Key(r *http.Request) string {
	peer := IPKey(r)
	if !c.isTrusted(peer) {
		return peer
	}

	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		hops := strings.Split(fwd, ",")
		for i := len(hops) - 1; i >= 0; i-- {
			hop := strings.TrimSpace(hops[i])
			if hop == "" {
				continue
			}
			if !c.isTrusted(hop) || i == 0 {
				return hop
			}
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	return peer
}

func (c *ClientIP) isTrusted(addr string) bool {
	ip := net.ParseIP(addr)
	if ip == nil {
		return false
	}
	for _, n := range c.trusted {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}
