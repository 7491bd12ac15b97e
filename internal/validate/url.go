// Package validate holds syntactic input checks used before any work is done.
package validate

import (
	"net"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/idna"
)

var (
	schemeRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*$`)
	labelRe  = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9-]{0,61}[A-Za-z0-9])?$`)
	tldRe    = regexp.MustCompile(`^(?:[A-Za-z]{2,63}|xn--[A-Za-z0-9-]{1,59})$`)
)

// IsURL reports whether s is a syntactically valid absolute URL.
//
// A valid URL has a scheme and an authority whose host is an IP literal,
// "localhost", or a dotted domain name ending in an alphabetic TLD.
// Internationalized host names are checked in their punycode form. A port,
// when present, must be numeric. No network access is performed.
//
//	IsURL("https://example.com/a?b=c") // true
//	IsURL("https://münchen.de")        // true, as xn--mnchen-3ya.de
//	IsURL("ftp:/broken")               // false, no authority
//	IsURL("/just/a/path")              // false, no scheme
func IsURL(s string) bool {
	if s == "" || strings.ContainsAny(s, " \t\r\n") {
		return false
	}

	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if !schemeRe.MatchString(u.Scheme) || u.Opaque != "" {
		return false
	}
	if u.Host == "" {
		return false
	}
	if port := u.Port(); port == "" && strings.HasSuffix(u.Host, ":") {
		return false
	}

	return isHost(u.Hostname())
}

func isHost(host string) bool {
	if host == "" {
		return false
	}
	if net.ParseIP(host) != nil {
		return true
	}
	if strings.EqualFold(host, "localhost") {
		return true
	}

	host, err := idna.Lookup.ToASCII(strings.TrimSuffix(host, "."))
	if err != nil {
		return false
	}
	if len(host) > 253 {
		return false
	}
	labels := strings.Split(host, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if !labelRe.MatchString(label) {
			return false
		}
	}
	return tldRe.MatchString(labels[len(labels)-1])
}
