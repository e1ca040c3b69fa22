package nets

import (
	"context"
	"net"
	"net/netip"
)

// IsLocalAddr reports whether addr resolves to a loopback or private address.
type IsLocalAddr func(ctx context.Context, addr string) (bool, error)

func (Module) IsLocalAddr() IsLocalAddr {
	return func(ctx context.Context, addr string) (bool, error) {
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			// no port
			host = addr
		}
		if host == "localhost" {
			return true, nil
		}
		if ip, err := netip.ParseAddr(host); err == nil {
			return isLocalIP(ip), nil
		}

		addrs, err := net.DefaultResolver.LookupNetIP(ctx, "ip", host)
		if err != nil {
			// unresolvable hosts go through the proxy
			return false, nil
		}
		for _, ip := range addrs {
			if isLocalIP(ip) {
				return true, nil
			}
		}
		return false, nil
	}
}

func isLocalIP(ip netip.Addr) bool {
	ip = ip.Unmap()
	return ip.IsLoopback() || ip.IsPrivate()
}
