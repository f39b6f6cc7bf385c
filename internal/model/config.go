package model

// DefaultPatchMarker is recorded on injected objects when
// patch_injected_objects is true.
const DefaultPatchMarker = "__COMPAT_PATCHED__"

// Configuration keys understood by the configuration provider.
const (
	KeyLoggingLevel         = "logging_level"
	KeyEnableWarnings       = "enable_warnings"
	KeyPatchInjectedObjects = "patch_injected_objects"
	KeyIncludeFixerIDs      = "include_fixer_ids"
	KeyIncludeFixerFamilies = "include_fixer_families"
	KeyExcludeFixerIDs      = "exclude_fixer_ids"
	KeyExcludeFixerFamilies = "exclude_fixer_families"
)

// Config is the typed view of the configuration provider mapping.
type Config struct {
	// LoggingLevel is one of DEBUG, INFO, WARNING, ERROR, CRITICAL.
	// Empty disables logging.
	LoggingLevel string
	// EnableWarnings toggles EmitWarning.
	EnableWarnings bool
	// PatchInjectedObjects is the marker recorded on injected objects.
	// Empty disables marking.
	PatchInjectedObjects string
	// Policy holds the four selection fields.
	Policy Policy
	// Extra keeps keys the core does not know about.
	Extra map[string]any
}

// DefaultConfig is the example configuration to copy and adapt.
func DefaultConfig() Config {
	return Config{
		LoggingLevel:         "INFO",
		EnableWarnings:       true,
		PatchInjectedObjects: DefaultPatchMarker,
		Policy: Policy{
			IncludeIDs: WildcardRule(),
		},
	}
}
