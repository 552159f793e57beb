package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sufield/sessionify/internal/domain"
)

func TestDefaultAccessPolicy(t *testing.T) {
	t.Parallel()

	policy := domain.DefaultAccessPolicy()

	assert.Equal(t, []string{"CREATOR"}, policy.Read)
	assert.Equal(t, []string{"CREATOR"}, policy.Update)
}

func TestDefaultAccessPolicy_Independent(t *testing.T) {
	t.Parallel()

	first := domain.DefaultAccessPolicy()
	first.Read[0] = "someone-else"

	second := domain.DefaultAccessPolicy()
	assert.Equal(t, []string{"CREATOR"}, second.Read, "mutating one policy must not leak into the next")
}

func TestNewNamespaceSession(t *testing.T) {
	t.Parallel()

	ns := domain.NewNamespaceSession("str--sessionify-0000abcd")

	assert.Equal(t, "0.3", ns.Version)
	assert.Equal(t, "str--sessionify-0000abcd", ns.Name)
	assert.Equal(t, domain.DefaultAccessPolicy(), ns.AccessPolicy)
}

func TestNewSession(t *testing.T) {
	t.Parallel()

	session := domain.NewSession(domain.SessionParams{
		Namespace:   "str--sessionify-00000001",
		Name:        "session-00000002",
		Command:     []string{"/bin/echo", "hi there"},
		Environment: map[string]string{"FOO": "bar"},
		CreatorPEM:  "-----BEGIN CERTIFICATE-----\n...\n-----END CERTIFICATE-----\n",
		Attestation: domain.AttestationNone,
	})

	assert.Equal(t, "0.3", session.Version)
	assert.Equal(t, "str--sessionify-00000001/session-00000002", session.Name)
	assert.Nil(t, session.Predecessor)
	assert.Empty(t, session.Images)
	assert.NotNil(t, session.Images)
	assert.Equal(t, domain.DefaultAccessPolicy(), session.AccessPolicy)
	assert.Equal(t, "none", session.Security.Attestation.Mode)
	assert.Contains(t, session.Creator, "BEGIN CERTIFICATE")

	require.Len(t, session.Services, 1)
	svc := session.Services[0]
	assert.Equal(t, "generated", svc.Name)
	assert.Nil(t, svc.ImageName)
	assert.Empty(t, svc.MREnclaves)
	assert.Equal(t, map[string]string{"FOO": "bar"}, svc.Environment)
	assert.Equal(t, "/bin/echo 'hi there'", svc.Command)
	assert.Equal(t, "/", svc.Pwd)
	assert.Nil(t, svc.FSPFPath)
	assert.Nil(t, svc.FSPFKey)
	assert.Nil(t, svc.FSPFTag)
	assert.Equal(t, "None", svc.Persistency)
}

func TestNewSession_WithImageAndMeasurements(t *testing.T) {
	t.Parallel()

	image := "registry.example.org/app:1.0"
	session := domain.NewSession(domain.SessionParams{
		Namespace:   "ns",
		Name:        "s",
		ImageName:   &image,
		Command:     []string{"app"},
		MREnclaves:  []string{"aa11", "bb22"},
		Attestation: domain.AttestationHardwareInsecure,
	})

	require.Len(t, session.Images, 1)
	assert.Equal(t, image, session.Images[0].Name)
	require.NotNil(t, session.Services[0].ImageName)
	assert.Equal(t, image, *session.Services[0].ImageName)
	assert.Equal(t, []string{"aa11", "bb22"}, session.Services[0].MREnclaves)
	assert.Equal(t, "hardware", session.Security.Attestation.Mode)
}

func TestNewSession_CopiesInputs(t *testing.T) {
	t.Parallel()

	env := map[string]string{"A": "1"}
	hashes := []string{"aa"}
	session := domain.NewSession(domain.SessionParams{
		Namespace:   "ns",
		Name:        "s",
		Environment: env,
		MREnclaves:  hashes,
	})

	env["B"] = "2"
	hashes[0] = "changed"

	assert.Equal(t, map[string]string{"A": "1"}, session.Services[0].Environment)
	assert.Equal(t, []string{"aa"}, session.Services[0].MREnclaves)
}

func TestNewSession_EmptyInputs(t *testing.T) {
	t.Parallel()

	session := domain.NewSession(domain.SessionParams{Namespace: "ns", Name: "s"})

	svc := session.Services[0]
	assert.Equal(t, "", svc.Command, "empty command vector yields an empty command string")
	assert.NotNil(t, svc.Environment)
	assert.Empty(t, svc.Environment)
}

func TestSession_ConfigID(t *testing.T) {
	t.Parallel()

	session := domain.NewSession(domain.SessionParams{Namespace: "str--x-00000001", Name: "session-00000002"})
	assert.Equal(t, "str--x-00000001/session-00000002/generated", session.ConfigID())

	session.Services = nil
	assert.Equal(t, "str--x-00000001/session-00000002", session.ConfigID())
}
