// Package scanner tags clients that belong to known internet-wide scanning
// projects. Matching is by subnet only, so it never blocks on DNS.
package scanner

import (
	"net"
)

var scannerSubnet = map[string][]string{
	"censys": {
		"162.142.125.0/24",
		"167.94.138.0/24",
		"167.94.145.0/24",
		"167.94.146.0/24",
		"167.248.133.0/24",
	},
	"shadowserver": {
		"64.62.202.96/27",
		"66.220.23.112/29",
		"74.82.47.0/26",
		"184.105.139.64/26",
		"184.105.143.128/26",
		"184.105.247.192/26",
		"216.218.206.64/26",
		"141.212.0.0/16",
	},
	"PAN Expanse": {
		"144.86.173.0/24",
	},
	"rwth": {
		"137.226.113.56/26",
	},
}

type subnet struct {
	name string
	net  *net.IPNet
}

var subnets = func() []subnet {
	out := []subnet{}
	for name, cidrs := range scannerSubnet {
		for _, cidr := range cidrs {
			_, n, err := net.ParseCIDR(cidr)
			if err != nil {
				panic(err)
			}
			out = append(out, subnet{name: name, net: n})
		}
	}
	return out
}()

// Lookup returns the scanner name for ip, or false when it is not a known
// scanner address.
func Lookup(ip net.IP) (string, bool) {
	for _, s := range subnets {
		if s.net.Contains(ip) {
			return s.name, true
		}
	}
	return "", false
}
