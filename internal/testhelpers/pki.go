// Package testhelpers provides test utilities for exercising the mTLS channel
// and the session API without a real configuration service.
//
// NewPKI creates a throw-away certificate authority with one server and one
// client certificate, and NewMTLSServer starts an httptest server that only
// accepts clients presenting a certificate issued by that authority.
package testhelpers

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// PKI is a minimal certificate hierarchy for tests. All keys are ECDSA P-256,
// private keys are PKCS#8 PEM ("PRIVATE KEY").
type PKI struct {
	CA    *x509.Certificate
	CAKey *ecdsa.PrivateKey
	CAPEM string

	ServerCertPEM string
	ServerKeyPEM  string

	ClientCertPEM string
	ClientKeyPEM  string
}

// NewPKI creates a CA plus a server certificate valid for localhost/127.0.0.1/::1
// and a client certificate, failing the test on any error.
func NewPKI(t testing.TB) *PKI {
	t.Helper()

	caKey := newKey(t)
	caTemplate := &x509.Certificate{
		SerialNumber:          serial(t),
		Subject:               pkix.Name{CommonName: "sessionify test CA"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(24 * time.Hour),
		IsCA:                  true,
		BasicConstraintsValid: true,
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageDigitalSignature,
	}
	caDER, err := x509.CreateCertificate(rand.Reader, caTemplate, caTemplate, &caKey.PublicKey, caKey)
	if err != nil {
		t.Fatalf("create CA certificate: %v", err)
	}
	ca, err := x509.ParseCertificate(caDER)
	if err != nil {
		t.Fatalf("parse CA certificate: %v", err)
	}

	p := &PKI{
		CA:    ca,
		CAKey: caKey,
		CAPEM: encodeCert(caDER),
	}

	p.ServerCertPEM, p.ServerKeyPEM = p.issue(t, &x509.Certificate{
		Subject:     pkix.Name{CommonName: "localhost"},
		DNSNames:    []string{"localhost"},
		IPAddresses: []net.IP{net.IPv4(127, 0, 0, 1), net.IPv6loopback},
		ExtKeyUsage: []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
	})
	p.ClientCertPEM, p.ClientKeyPEM = p.issue(t, &x509.Certificate{
		Subject:     pkix.Name{CommonName: "sessionify test client"},
		ExtKeyUsage: []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth},
	})

	return p
}

// Identity returns the client credential in the layout of a trust config:
// private key first, then the certificate.
func (p *PKI) Identity() string {
	return p.ClientKeyPEM + p.ClientCertPEM
}

// ServerTLSConfig requires and verifies client certificates issued by the CA.
func (p *PKI) ServerTLSConfig(t testing.TB) *tls.Config {
	t.Helper()

	cert, err := tls.X509KeyPair([]byte(p.ServerCertPEM), []byte(p.ServerKeyPEM))
	if err != nil {
		t.Fatalf("load server key pair: %v", err)
	}
	pool := x509.NewCertPool()
	pool.AddCert(p.CA)

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		ClientAuth:   tls.RequireAndVerifyClientCert,
		ClientCAs:    pool,
		MinVersion:   tls.VersionTLS12,
	}
}

// NewMTLSServer starts an HTTPS server that demands client certificates from
// this PKI. The server is closed when the test ends.
func (p *PKI) NewMTLSServer(t testing.TB, handler http.Handler) *httptest.Server {
	t.Helper()

	srv := httptest.NewUnstartedServer(handler)
	srv.TLS = p.ServerTLSConfig(t)
	srv.StartTLS()
	t.Cleanup(srv.Close)
	return srv
}

func (p *PKI) issue(t testing.TB, template *x509.Certificate) (certPEM, keyPEM string) {
	t.Helper()

	key := newKey(t)
	template.SerialNumber = serial(t)
	template.NotBefore = time.Now().Add(-time.Hour)
	template.NotAfter = time.Now().Add(24 * time.Hour)
	template.KeyUsage = x509.KeyUsageDigitalSignature

	der, err := x509.CreateCertificate(rand.Reader, template, p.CA, &key.PublicKey, p.CAKey)
	if err != nil {
		t.Fatalf("issue certificate %q: %v", template.Subject.CommonName, err)
	}
	return encodeCert(der), encodeKey(t, key)
}

func newKey(t testing.TB) *ecdsa.PrivateKey {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	return key
}

func serial(t testing.TB) *big.Int {
	t.Helper()

	n, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 62))
	if err != nil {
		t.Fatalf("generate serial: %v", err)
	}
	return n
}

func encodeCert(der []byte) string {
	return string(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}))
}

func encodeKey(t testing.TB, key *ecdsa.PrivateKey) string {
	t.Helper()

	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		t.Fatalf("marshal private key: %v", err)
	}
	return string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}))
}
