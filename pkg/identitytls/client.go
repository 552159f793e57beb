package identitytls

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"

	"github.com/spiffe/go-spiffe/v2/bundle/x509bundle"

	"github.com/sufield/sessionify/internal/domain"
)

// NewClientTLSConfig creates a TLS configuration for an mTLS client.
//
// The returned *tls.Config is safe to use directly in net/http Transport.
//
// The returned *tls.Config:
//   - Presents the certificate/key pair as the client identity
//   - Trusts ONLY the authorities of bundle (the system roots are never consulted)
//   - Verifies the server hostname against its certificate
//   - Enforces TLS 1.2 minimum
//
// The remote service is not a SPIFFE workload, so server verification is plain
// X.509 path validation against the trust anchor chain rather than a SPIFFE ID
// authorizer.
//
// Example:
//
//	anchor, _ := cfg.ResolveTrustAnchor()
//	certPEM, keyPEM, _ := cfg.IdentityKeyPair()
//	tlsCfg, _ := identitytls.NewClientTLSConfig(anchor.Bundle, certPEM, keyPEM)
//
//	transport := &http.Transport{TLSClientConfig: tlsCfg}
//	client := &http.Client{Transport: transport}
//
// Returns an error wrapping domain.ErrTransportSetup if:
//   - bundle is nil or holds no authorities
//   - certPEM/keyPEM do not form a valid key pair
func NewClientTLSConfig(bundle *x509bundle.Bundle, certPEM, keyPEM []byte) (*tls.Config, error) {
	if bundle == nil {
		return nil, fmt.Errorf("%w: trust bundle cannot be nil", domain.ErrTransportSetup)
	}

	authorities := bundle.X509Authorities()
	if len(authorities) == 0 {
		return nil, fmt.Errorf("%w: trust bundle for %q has no authorities", domain.ErrTransportSetup, bundle.TrustDomain())
	}

	roots := x509.NewCertPool()
	for _, authority := range authorities {
		roots.AddCert(authority)
	}

	cert, err := tls.X509KeyPair(certPEM, keyPEM)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load client identity: %w", domain.ErrTransportSetup, err)
	}

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		RootCAs:      roots,
		MinVersion:   tls.VersionTLS12,
	}, nil
}
