// Package utils holds small helpers shared by the fetch pipeline.
package utils

import (
	"net"
	"net/url"
	"path"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/idna"
)

var (
	ErrEmptyURL    = errors.New("canonicalize: empty url")
	ErrMissingHost = errors.New("canonicalize: missing host")
)

// CanonicalizeOptions controls optional canonicalization policies.
type CanonicalizeOptions struct {
	DropTrackingParams bool // remove utm_*, gclid, fbclid, ...
	StripTrailingSlash bool // treat /a and /a/ alike (root "/" is kept)
}

// HistoryOptions is the policy used for fetch history keys.
var HistoryOptions = CanonicalizeOptions{DropTrackingParams: true}

var trackingParams = map[string]struct{}{
	"utm_source": {}, "utm_medium": {}, "utm_campaign": {}, "utm_term": {}, "utm_content": {},
	"gclid": {}, "fbclid": {}, "mc_cid": {}, "mc_eid": {},
}

// Canonicalize returns a deterministic form of raw: lower-case scheme and
// punycode host, default port dropped, credentials and fragment removed,
// cleaned path and sorted query.
func Canonicalize(raw string, opts CanonicalizeOptions) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyURL
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", errors.Wrap(err, "canonicalize")
	}
	if u.Host == "" {
		return "", errors.Wrapf(ErrMissingHost, "%q", raw)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	host := strings.ToLower(u.Hostname())
	if puny, err := idna.Lookup.ToASCII(host); err == nil {
		host = puny
	}
	switch port := u.Port(); {
	case port == "", u.Scheme == "http" && port == "80", u.Scheme == "https" && port == "443":
		u.Host = host
		if strings.Contains(host, ":") {
			u.Host = "[" + host + "]"
		}
	default:
		u.Host = net.JoinHostPort(host, port)
	}
	u.User = nil
	u.Fragment = ""
	u.RawFragment = ""

	p := path.Clean("/" + u.Path)
	if opts.StripTrailingSlash {
		p = strings.TrimRight(p, "/")
		if p == "" {
			p = "/"
		}
	} else if strings.HasSuffix(u.Path, "/") && p != "/" {
		p += "/"
	}
	u.Path = p
	u.RawPath = ""

	q := u.Query()
	if opts.DropTrackingParams {
		for k := range q {
			if _, ok := trackingParams[strings.ToLower(k)]; ok {
				q.Del(k)
			}
		}
	}
	for _, values := range q {
		sort.Strings(values)
	}
	// Encode sorts by key.
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// HistoryKey is the URL under which a fetch of raw is recorded. URLs that
// cannot be canonicalized are recorded as given.
func HistoryKey(raw string) string {
	key, err := Canonicalize(raw, HistoryOptions)
	if err != nil {
		return raw
	}
	return key
}
