package domain

import (
	"fmt"

	"github.com/sufield/sessionify/internal/assert"
)

const (
	// SchemaVersion is the policy document schema understood by the remote service.
	SchemaVersion = "0.3"

	// GeneratedServiceName names the single service of a generated session.
	GeneratedServiceName = "generated"

	// CreatorPrincipal is the role granted by DefaultAccessPolicy.
	CreatorPrincipal = "CREATOR"

	defaultWorkingDir  = "/"
	defaultPersistency = "None"
)

// NamespaceSession is the top-level policy that session policies are created under.
// It has no predecessor and is never updated after submission.
type NamespaceSession struct {
	Version      string       `yaml:"version"`
	Name         string       `yaml:"name"`
	AccessPolicy AccessPolicy `yaml:"access_policy"`
}

// Session describes a single execution: who may read or update it, the attestation
// it demands and how its service is launched.
//
// Optional values are pointers tagged omitempty: the remote service treats the
// presence of a key as meaningful, so an unset value must not be emitted as null.
type Session struct {
	Version      string       `yaml:"version"`
	Name         string       `yaml:"name"`
	Predecessor  *string      `yaml:"predecessor,omitempty"`
	Images       []Image      `yaml:"images"`
	Services     []Service    `yaml:"services"`
	AccessPolicy AccessPolicy `yaml:"access_policy"`
	Security     Security     `yaml:"security"`
	Creator      string       `yaml:"creator"`
}

// Image references a container image by name.
type Image struct {
	Name string `yaml:"name"`
}

// Service is one launchable program inside a session.
type Service struct {
	Name       string   `yaml:"name"`
	ImageName  *string  `yaml:"image_name,omitempty"`
	MREnclaves []string `yaml:"mrenclaves"`
	// Environment is always emitted (an empty mapping when unset); the YAML
	// encoder writes keys in sorted order.
	Environment map[string]string `yaml:"environment"`
	Command     string            `yaml:"command"`
	Pwd         string            `yaml:"pwd"`
	FSPFPath    *string           `yaml:"fspf_path,omitempty"`
	FSPFKey     *string           `yaml:"fspf_key,omitempty"`
	FSPFTag     *string           `yaml:"fspf_tag,omitempty"`
	Persistency string            `yaml:"persistency"`
}

// AccessPolicy lists the principals allowed to read and to update a policy.
type AccessPolicy struct {
	Read   []string `yaml:"read"`
	Update []string `yaml:"update"`
}

// DefaultAccessPolicy grants reading and updating rights to the creator only.
func DefaultAccessPolicy() AccessPolicy {
	return AccessPolicy{
		Read:   []string{CreatorPrincipal},
		Update: []string{CreatorPrincipal},
	}
}

// Security holds the attestation requirements of a session.
type Security struct {
	Attestation Attestation `yaml:"attestation"`
}

// Attestation is the wire shape of an AttestationMode.
type Attestation struct {
	Mode             string   `yaml:"mode"`
	Tolerate         []string `yaml:"tolerate,omitempty"`
	IgnoreAdvisories string   `yaml:"ignore_advisories,omitempty"`
}

// SessionParams are the inputs of NewSession.
type SessionParams struct {
	Namespace string
	Name      string
	// ImageName is optional; when set the session also lists the image.
	ImageName   *string
	Command     []string
	Environment map[string]string
	// MREnclaves are the expected measurement hashes of the service.
	MREnclaves  []string
	CreatorPEM  string
	Attestation AttestationMode
}

// NewNamespaceSession builds the namespace policy with the default access policy.
func NewNamespaceSession(name string) NamespaceSession {
	return NamespaceSession{
		Version:      SchemaVersion,
		Name:         name,
		AccessPolicy: DefaultAccessPolicy(),
	}
}

// NewSession builds a single-service session policy named "<namespace>/<name>".
// It has no side effects and never fails.
func NewSession(p SessionParams) Session {
	images := []Image{}
	if p.ImageName != nil {
		images = append(images, Image{Name: *p.ImageName})
	}

	env := make(map[string]string, len(p.Environment))
	for k, v := range p.Environment {
		env[k] = v
	}

	mrenclaves := make([]string, len(p.MREnclaves))
	copy(mrenclaves, p.MREnclaves)

	session := Session{
		Version:     SchemaVersion,
		Name:        fmt.Sprintf("%s/%s", p.Namespace, p.Name),
		Predecessor: nil,
		Images:      images,
		Services: []Service{{
			Name:        GeneratedServiceName,
			ImageName:   p.ImageName,
			MREnclaves:  mrenclaves,
			Environment: env,
			Command:     BuildCommand(p.Command),
			Pwd:         defaultWorkingDir,
			Persistency: defaultPersistency,
		}},
		AccessPolicy: DefaultAccessPolicy(),
		Security: Security{
			Attestation: p.Attestation.Attestation(),
		},
		Creator: p.CreatorPEM,
	}

	assert.Invariant(len(session.Services) == 1 && session.Services[0].Name == GeneratedServiceName,
		"generated session must have exactly one service named "+GeneratedServiceName)
	assert.Invariant(session.Predecessor == nil, "generated session must not have a predecessor")
	return session
}

// ConfigID returns "<session name>/<first service name>", the reference handed to
// the launched process. It returns the bare session name for a session without services.
func (s Session) ConfigID() string {
	if len(s.Services) == 0 {
		return s.Name
	}
	return fmt.Sprintf("%s/%s", s.Name, s.Services[0].Name)
}
