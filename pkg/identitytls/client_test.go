package identitytls_test

import (
	"crypto/tls"
	"io"
	"net/http"
	"testing"

	"github.com/spiffe/go-spiffe/v2/bundle/x509bundle"
	"github.com/spiffe/go-spiffe/v2/spiffeid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sufield/sessionify/internal/domain"
	"github.com/sufield/sessionify/internal/testhelpers"
	"github.com/sufield/sessionify/pkg/identitytls"
)

func bundleFor(t *testing.T, pki ...*testhelpers.PKI) *x509bundle.Bundle {
	t.Helper()

	bundle := x509bundle.New(spiffeid.RequireTrustDomainFromString("cas"))
	for _, p := range pki {
		bundle.AddX509Authority(p.CA)
	}
	return bundle
}

func TestNewClientTLSConfig(t *testing.T) {
	t.Parallel()

	pki := testhelpers.NewPKI(t)

	cfg, err := identitytls.NewClientTLSConfig(bundleFor(t, pki), []byte(pki.ClientCertPEM), []byte(pki.ClientKeyPEM))

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Len(t, cfg.Certificates, 1)
	assert.NotNil(t, cfg.RootCAs)
	assert.Equal(t, uint16(tls.VersionTLS12), cfg.MinVersion)
	assert.False(t, cfg.InsecureSkipVerify)
}

func TestNewClientTLSConfig_Errors(t *testing.T) {
	t.Parallel()

	pki := testhelpers.NewPKI(t)
	other := testhelpers.NewPKI(t)

	tests := []struct {
		name    string
		bundle  *x509bundle.Bundle
		certPEM string
		keyPEM  string
	}{
		{name: "nil bundle", bundle: nil, certPEM: pki.ClientCertPEM, keyPEM: pki.ClientKeyPEM},
		{name: "empty bundle", bundle: bundleFor(t), certPEM: pki.ClientCertPEM, keyPEM: pki.ClientKeyPEM},
		{name: "mismatched key", bundle: bundleFor(t, pki), certPEM: pki.ClientCertPEM, keyPEM: other.ClientKeyPEM},
		{name: "garbage certificate", bundle: bundleFor(t, pki), certPEM: "not a cert", keyPEM: pki.ClientKeyPEM},
		{name: "missing key", bundle: bundleFor(t, pki), certPEM: pki.ClientCertPEM, keyPEM: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := identitytls.NewClientTLSConfig(tt.bundle, []byte(tt.certPEM), []byte(tt.keyPEM))

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, domain.ErrTransportSetup)
		})
	}
}

func TestNewClientTLSConfig_Handshake(t *testing.T) {
	t.Parallel()

	pki := testhelpers.NewPKI(t)
	srv := pki.NewMTLSServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(r.TLS.PeerCertificates) == 0 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(r.TLS.PeerCertificates[0].Subject.CommonName))
	}))

	cfg, err := identitytls.NewClientTLSConfig(bundleFor(t, pki), []byte(pki.ClientCertPEM), []byte(pki.ClientKeyPEM))
	require.NoError(t, err)

	client := &http.Client{Transport: &http.Transport{TLSClientConfig: cfg}}
	defer client.CloseIdleConnections()

	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "sessionify test client", string(body))
}

func TestNewClientTLSConfig_RejectsUnknownServer(t *testing.T) {
	t.Parallel()

	server := testhelpers.NewPKI(t)
	client := testhelpers.NewPKI(t)
	srv := server.NewMTLSServer(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Trusts only the client's own CA, which did not issue the server certificate.
	cfg, err := identitytls.NewClientTLSConfig(bundleFor(t, client), []byte(client.ClientCertPEM), []byte(client.ClientKeyPEM))
	require.NoError(t, err)

	httpClient := &http.Client{Transport: &http.Transport{TLSClientConfig: cfg}}
	defer httpClient.CloseIdleConnections()

	resp, err := httpClient.Get(srv.URL)
	if resp != nil {
		_ = resp.Body.Close()
	}
	require.Error(t, err)
	assert.Contains(t, err.Error(), "certificate")
}
