package domain

import (
	"fmt"
	"strings"
)

// AttestationMode selects one of the fixed attestation presets a session can demand.
// The set is closed: every mode maps to exactly one wire representation via Attestation.
type AttestationMode int

const (
	// AttestationNone demands no hardware attestation.
	AttestationNone AttestationMode = iota
	// AttestationHardwareInsecure demands hardware attestation but tolerates the
	// platform weaknesses listed in hardwareInsecureTolerations.
	AttestationHardwareInsecure
)

const (
	attestationModeNone     = "none"
	attestationModeHardware = "hardware"
)

// hardwareInsecureTolerations is the versioned preset for AttestationHardwareInsecure.
var hardwareInsecureTolerations = []string{
	"hyperthreading",
	"insecure-igpu",
	"outdated-tcb",
	"software-hardening-needed",
	"insecure-configuration",
	"debug-mode",
}

// Attestation returns the wire representation of the mode.
// Unknown values fall back to the "none" preset.
func (m AttestationMode) Attestation() Attestation {
	switch m {
	case AttestationHardwareInsecure:
		tolerate := make([]string, len(hardwareInsecureTolerations))
		copy(tolerate, hardwareInsecureTolerations)
		return Attestation{
			Mode:             attestationModeHardware,
			Tolerate:         tolerate,
			IgnoreAdvisories: "*",
		}
	default:
		return Attestation{Mode: attestationModeNone}
	}
}

// String returns the name accepted by ParseAttestationMode.
func (m AttestationMode) String() string {
	switch m {
	case AttestationNone:
		return "none"
	case AttestationHardwareInsecure:
		return "hardware-insecure"
	default:
		return fmt.Sprintf("AttestationMode(%d)", int(m))
	}
}

// ParseAttestationMode parses "none" or "hardware-insecure" (case-insensitive).
func ParseAttestationMode(s string) (AttestationMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return AttestationNone, nil
	case "hardware-insecure":
		return AttestationHardwareInsecure, nil
	default:
		return AttestationNone, fmt.Errorf("unknown attestation mode %q (use 'none' or 'hardware-insecure')", s)
	}
}
