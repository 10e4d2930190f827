// =============================================================================
// XML Report Generator - Configuration Module
// =============================================================================
//
// This module loads and manages the generation profile: a YAML file that
// fixes the repeat counts per group family, the cross-reference policy, the
// optional seed, output naming, and header overrides. CLI flags override
// profile values; the profile overrides the built-in defaults.
//
// ARCHITECTURE:
//   The profile is loaded once per invocation, defaulted, and validated
//   before any generation starts. A missing profile file is not an error —
//   every setting has a usable default.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ginjaninja78/xml-report-generator/internal/generator"
)

// =============================================================================
// PROFILE STRUCTURE
// =============================================================================

// Counts holds the repeat count per group family.
type Counts struct {
	// Business is the number of business-contact groups.
	// Default: 1
	Business int `yaml:"business"`

	// Service is the number of service-provider groups.
	// Default: 1
	Service int `yaml:"service"`

	// ScheduleTwo is the number of Schedule 2 groups (cross-reference
	// source family).
	// Default: 1
	ScheduleTwo int `yaml:"schedule2"`

	// ScheduleThree is the number of Schedule 3 groups.
	// Default: 1
	ScheduleThree int `yaml:"schedule3"`
}

// Profile holds one generation profile.
type Profile struct {
	// =========================================================================
	// OUTPUT SETTINGS
	// =========================================================================

	// OutputDir is the directory where generated documents are placed.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// FileNameFormat defines generated file names.
	// Placeholders:
	//   {uuid}      - A random UUID
	//   {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
	//   {policy}    - The cross-reference policy name
	// Default: "{timestamp}_{uuid}.xml"
	FileNameFormat string `yaml:"file_name_format"`

	// =========================================================================
	// VALIDATION SETTINGS
	// =========================================================================

	// SchemaPath is the XSD used for the post-write element coverage
	// check. Empty skips the schema part of validation.
	SchemaPath string `yaml:"schema_path"`

	// SkipValidation disables post-write validation entirely.
	// Default: false
	SkipValidation bool `yaml:"skip_validation"`

	// =========================================================================
	// GENERATION SETTINGS
	// =========================================================================

	// CrossRefPolicy selects cross-reference token production:
	// "alternating" or "unique".
	// Default: "alternating"
	CrossRefPolicy string `yaml:"crossref_policy"`

	// Seed fixes all randomness for reproducible documents. Absent means
	// a fresh seed per invocation.
	Seed *int64 `yaml:"seed,omitempty"`

	// Counts holds the repeat count per group family. A nil block means
	// one of each; an explicit zero inside the block means "emit none".
	Counts *Counts `yaml:"counts"`

	// Header overrides the fixed fileDescription values.
	Header generator.Header `yaml:"header"`
}

// =============================================================================
// PROFILE LOADING
// =============================================================================

// Default returns a profile with every setting at its built-in default.
func Default() *Profile {
	profile := &Profile{}
	applyProfileDefaults(profile)
	return profile
}

// Load reads a generation profile from a YAML file.
//
// PARAMETERS:
//   - path: The profile file. A nonexistent path yields the defaults so the
//     tool works out of the box without any configuration.
//
// RETURNS:
//   - The defaulted, validated profile.
//   - An error if the file exists but cannot be parsed or is invalid.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}

	applyProfileDefaults(&profile)

	if err := validateProfile(&profile); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}

	return &profile, nil
}

// applyProfileDefaults sets default values for any unset profile options.
// Counts default to 1 each only when the counts block is entirely absent; an
// explicit zero inside the block is a legitimate "emit none" request, which
// is why the block is a pointer rather than a value.
func applyProfileDefaults(profile *Profile) {
	if profile.OutputDir == "" {
		profile.OutputDir = "./output"
	}
	if profile.FileNameFormat == "" {
		profile.FileNameFormat = "{timestamp}_{uuid}.xml"
	}
	if profile.CrossRefPolicy == "" {
		profile.CrossRefPolicy = generator.PolicyAlternating
	}
	if profile.Counts == nil {
		profile.Counts = &Counts{Business: 1, Service: 1, ScheduleTwo: 1, ScheduleThree: 1}
	}
}

// validateProfile validates the profile after defaulting.
func validateProfile(profile *Profile) error {
	if profile.CrossRefPolicy != generator.PolicyAlternating &&
		profile.CrossRefPolicy != generator.PolicyUnique {
		return fmt.Errorf("crossref_policy must be %q or %q, got %q",
			generator.PolicyAlternating, generator.PolicyUnique, profile.CrossRefPolicy)
	}

	for name, count := range map[string]int{
		"business":  profile.Counts.Business,
		"service":   profile.Counts.Service,
		"schedule2": profile.Counts.ScheduleTwo,
		"schedule3": profile.Counts.ScheduleThree,
	} {
		if count < 0 {
			return fmt.Errorf("counts.%s must be non-negative, got %d", name, count)
		}
	}

	return nil
}
