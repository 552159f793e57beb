package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/spiffe/go-spiffe/v2/bundle/x509bundle"
	"github.com/spiffe/go-spiffe/v2/spiffeid"

	"github.com/sufield/sessionify/internal/domain"
)

const (
	// DefaultSessionsPort is the port of the session API when the endpoint names none.
	DefaultSessionsPort = "8081"

	// SessionsPath is the versioned path of the session submission API.
	SessionsPath = "/v1/sessions"
)

// anchorTrustDomain labels every parsed anchor bundle. Anchor names are free-form
// cas_db keys and are not valid trust domain names in general.
var anchorTrustDomain = spiffeid.RequireTrustDomainFromString("trust-anchor")

// ResolveTrustAnchor looks up DefaultCAS in CASDB and parses its chain.
//
// Returns error if:
//   - DefaultCAS is not a key of CASDB (domain.ErrConfiguration)
//   - the endpoint is empty, not a valid URL or not https (domain.ErrConfiguration)
//   - the chain is not valid PEM or holds no certificate (domain.ErrParse)
func (c *TrustConfig) ResolveTrustAnchor() (*TrustAnchor, error) {
	entry, ok := c.CASDB[c.DefaultCAS]
	if !ok {
		return nil, fmt.Errorf("%w: default_cas %q is not in cas_db", domain.ErrConfiguration, c.DefaultCAS)
	}

	sessionsURL, err := buildSessionsURL(entry.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: trust anchor %q: %w", domain.ErrConfiguration, c.DefaultCAS, err)
	}

	bundle, err := x509bundle.Parse(anchorTrustDomain, []byte(entry.Chain))
	if err != nil {
		return nil, fmt.Errorf("%w: trust anchor %q: %w", domain.ErrParse, c.DefaultCAS, err)
	}
	if bundle.Empty() {
		return nil, fmt.Errorf("%w: trust anchor %q: chain contains no certificates", domain.ErrParse, c.DefaultCAS)
	}

	return &TrustAnchor{
		Name:        c.DefaultCAS,
		Endpoint:    entry.URL,
		SessionsURL: sessionsURL,
		Bundle:      bundle,
	}, nil
}

// buildSessionsURL builds https://{host}:8081/v1/sessions from a bare host, keeps an
// explicit port, and uses https endpoints with a scheme as the base URL. Any other
// scheme is rejected: the session API is only reached over mutual TLS.
func buildSessionsURL(endpoint string) (string, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return "", errors.New("url must be set")
	}

	if strings.Contains(endpoint, "://") {
		u, err := url.Parse(endpoint)
		if err != nil {
			return "", fmt.Errorf("invalid url %q: %w", endpoint, err)
		}
		if !strings.EqualFold(u.Scheme, "https") {
			return "", fmt.Errorf("invalid url %q: scheme must be https", endpoint)
		}
		if u.Host == "" {
			return "", fmt.Errorf("invalid url %q: missing host", endpoint)
		}
		u.Path = strings.TrimRight(u.Path, "/") + SessionsPath
		return u.String(), nil
	}

	host := endpoint
	if _, _, err := net.SplitHostPort(endpoint); err != nil {
		host = net.JoinHostPort(endpoint, DefaultSessionsPort)
	}
	return "https://" + host + SessionsPath, nil
}
