package config

import (
	"fmt"

	"github.com/sufield/sessionify/internal/domain"
)

// Validate validates a trust configuration.
//
// Ensures:
//   - default_cas is non-empty and present in cas_db
//   - the identity splits into a private key followed by a certificate
//   - the default anchor's endpoint and chain resolve (see ResolveTrustAnchor)
func Validate(cfg *TrustConfig) error {
	if cfg == nil {
		return fmt.Errorf("%w: config is nil", domain.ErrConfiguration)
	}
	if cfg.DefaultCAS == "" {
		return fmt.Errorf("%w: default_cas must be set", domain.ErrConfiguration)
	}
	if len(cfg.CASDB) == 0 {
		return fmt.Errorf("%w: cas_db must contain at least one entry", domain.ErrConfiguration)
	}
	if _, _, err := SplitIdentity(cfg.Identity); err != nil {
		return err
	}
	if _, err := cfg.ResolveTrustAnchor(); err != nil {
		return err
	}
	return nil
}
