package config

import (
	"fmt"
	"strings"

	"github.com/sufield/sessionify/internal/domain"
)

// PrivateKeyEndMarker terminates the private key part of an identity blob.
const PrivateKeyEndMarker = "-----END PRIVATE KEY-----\n"

// SplitIdentity splits an identity blob into its private key and certificate.
//
// The key must precede the certificate: everything up to and including the
// first PrivateKeyEndMarker is the key, the remainder is the certificate.
// A missing marker or an empty remainder yields domain.ErrInvalidIdentity.
func SplitIdentity(identity string) (keyPEM, certPEM string, err error) {
	idx := strings.Index(identity, PrivateKeyEndMarker)
	if idx < 0 {
		return "", "", fmt.Errorf("%w: no private key found (expected a PKCS#8 key followed by a certificate)", domain.ErrInvalidIdentity)
	}

	end := idx + len(PrivateKeyEndMarker)
	keyPEM, certPEM = identity[:end], identity[end:]
	if strings.TrimSpace(certPEM) == "" {
		return "", "", fmt.Errorf("%w: no certificate after the private key", domain.ErrInvalidIdentity)
	}

	return keyPEM, certPEM, nil
}

// IdentityCertificatePEM returns the certificate part of the identity. It is
// used as the creator attribution of generated sessions.
func (c *TrustConfig) IdentityCertificatePEM() (string, error) {
	_, cert, err := SplitIdentity(c.Identity)
	if err != nil {
		return "", err
	}
	return cert, nil
}

// IdentityKeyPair returns the certificate and key parts of the identity.
func (c *TrustConfig) IdentityKeyPair() (certPEM, keyPEM []byte, err error) {
	key, cert, err := SplitIdentity(c.Identity)
	if err != nil {
		return nil, nil, err
	}
	return []byte(cert), []byte(key), nil
}
