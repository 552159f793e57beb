package app_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sufield/sessionify/internal/app"
	"github.com/sufield/sessionify/internal/domain"
)

func TestMarshal_NamespaceSession(t *testing.T) {
	t.Parallel()

	out, err := app.Marshal(domain.NewNamespaceSession("str--x-00000001"))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(out, &doc))
	assert.Equal(t, "0.3", doc["version"], "version must stay a string")
	assert.Equal(t, "str--x-00000001", doc["name"])
	assert.Equal(t, map[string]any{
		"read":   []any{"CREATOR"},
		"update": []any{"CREATOR"},
	}, doc["access_policy"])
	assert.Len(t, doc, 3)
}

func TestMarshal_Session_OmitsUnsetOptionals(t *testing.T) {
	t.Parallel()

	session := domain.NewSession(domain.SessionParams{
		Namespace:   "ns",
		Name:        "s",
		Command:     []string{"/bin/true"},
		CreatorPEM:  "-----BEGIN CERTIFICATE-----\nMIIB\n-----END CERTIFICATE-----\n",
		Attestation: domain.AttestationNone,
	})

	out, err := app.Marshal(session)
	require.NoError(t, err)
	text := string(out)

	assert.NotContains(t, text, "predecessor")
	assert.NotContains(t, text, "image_name")
	assert.NotContains(t, text, "fspf_")
	assert.NotContains(t, text, "tolerate")
	assert.NotContains(t, text, "ignore_advisories")
	assert.NotContains(t, text, "null")
	assert.Contains(t, text, "environment: {}")
	assert.Contains(t, text, "images: []")
	assert.Contains(t, text, "mrenclaves: []")

	var doc struct {
		Version  string `yaml:"version"`
		Name     string `yaml:"name"`
		Creator  string `yaml:"creator"`
		Services []struct {
			Name        string `yaml:"name"`
			Command     string `yaml:"command"`
			Pwd         string `yaml:"pwd"`
			Persistency string `yaml:"persistency"`
		} `yaml:"services"`
		Security struct {
			Attestation map[string]any `yaml:"attestation"`
		} `yaml:"security"`
	}
	require.NoError(t, yaml.Unmarshal(out, &doc))
	assert.Equal(t, "0.3", doc.Version)
	assert.Equal(t, "ns/s", doc.Name)
	assert.Equal(t, session.Creator, doc.Creator, "multi-line certificate survives encoding")
	require.Len(t, doc.Services, 1)
	assert.Equal(t, "generated", doc.Services[0].Name)
	assert.Equal(t, "/bin/true", doc.Services[0].Command)
	assert.Equal(t, "/", doc.Services[0].Pwd)
	assert.Equal(t, "None", doc.Services[0].Persistency)
	assert.Equal(t, map[string]any{"mode": "none"}, doc.Security.Attestation)
}

func TestMarshal_Session_HardwareAttestation(t *testing.T) {
	t.Parallel()

	image := "registry.example.org/app:1"
	session := domain.NewSession(domain.SessionParams{
		Namespace:   "ns",
		Name:        "s",
		ImageName:   &image,
		Environment: map[string]string{"B": "2", "A": "1"},
		MREnclaves:  []string{"aa"},
		Attestation: domain.AttestationHardwareInsecure,
	})

	out, err := app.Marshal(session)
	require.NoError(t, err)

	var doc struct {
		Images []struct {
			Name string `yaml:"name"`
		} `yaml:"images"`
		Services []struct {
			ImageName   string            `yaml:"image_name"`
			MREnclaves  []string          `yaml:"mrenclaves"`
			Environment map[string]string `yaml:"environment"`
		} `yaml:"services"`
		Security struct {
			Attestation struct {
				Mode             string   `yaml:"mode"`
				Tolerate         []string `yaml:"tolerate"`
				IgnoreAdvisories string   `yaml:"ignore_advisories"`
			} `yaml:"attestation"`
		} `yaml:"security"`
	}
	require.NoError(t, yaml.Unmarshal(out, &doc))

	require.Len(t, doc.Images, 1)
	assert.Equal(t, image, doc.Images[0].Name)
	assert.Equal(t, image, doc.Services[0].ImageName)
	assert.Equal(t, []string{"aa"}, doc.Services[0].MREnclaves)
	assert.Equal(t, map[string]string{"A": "1", "B": "2"}, doc.Services[0].Environment)
	assert.Equal(t, "hardware", doc.Security.Attestation.Mode)
	assert.Equal(t, []string{
		"hyperthreading",
		"insecure-igpu",
		"outdated-tcb",
		"software-hardening-needed",
		"insecure-configuration",
		"debug-mode",
	}, doc.Security.Attestation.Tolerate)
	assert.Equal(t, "*", doc.Security.Attestation.IgnoreAdvisories)

	text := string(out)
	a, b := strings.Index(text, "A: \"1\""), strings.Index(text, "B: \"2\"")
	require.GreaterOrEqual(t, a, 0)
	require.GreaterOrEqual(t, b, 0)
	assert.Less(t, a, b, "environment keys are sorted")
}
