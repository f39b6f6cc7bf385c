// Package compatfix applies version-gated compatibility fixers to a host
// application.
//
// A fixer patches a Namespace when the installed version of a dependency
// lies in its window. Fixers are registered in a Registry, several registries
// can be combined with NewMultiRegistry, and PatchSoftware selects and applies
// the relevant ones under the process-wide PatchingLock:
//
//	target := compatfix.NewNamespace("mypkg")
//	reg := compatfix.NewRegistry("mypkg",
//		compatfix.WithFamilyPrefix("mypkg"),
//		compatfix.WithPopulator(func(_ context.Context, r compatfix.Registrar) error {
//			return r.Register(compatfix.Fixer{...})
//		}),
//	)
//	report, err := compatfix.PatchSoftware(ctx, compatfix.DefaultConfig(), reg,
//		compatfix.WithSoftwareVersion("5.0"))
package compatfix

import (
	"github.com/mouse-blink/compatfix/internal/adapter"
	"github.com/mouse-blink/compatfix/internal/domain"
	"github.com/mouse-blink/compatfix/internal/domain/versions"
	m "github.com/mouse-blink/compatfix/internal/model"
)

// Data model.
type (
	Fixer           = m.Fixer
	PatchFunc       = m.PatchFunc
	Outcome         = m.Outcome
	OutcomeStatus   = m.OutcomeStatus
	Utilities       = m.Utilities
	Namespace       = m.Namespace
	WarningCategory = m.WarningCategory
	Config          = m.Config
	Policy          = m.Policy
	Rule            = m.Rule
	Report          = m.Report
	RunReport       = m.RunReport
	RunState        = m.RunState
)

// Registries, selection and execution.
type (
	Catalog          = domain.Catalog
	Registrar        = domain.Registrar
	Registry         = domain.Registry
	RegistryOption   = domain.RegistryOption
	Populator        = domain.Populator
	MultiRegistry    = domain.MultiRegistry
	Runner           = domain.Runner
	RunObserver      = domain.RunObserver
	ReentrantLock    = domain.ReentrantLock
	PatchOption      = domain.PatchOption
	VersionProvider  = domain.VersionProvider
	UtilitiesFactory = domain.UtilitiesFactory
	WarningsProxy    = adapter.WarningsProxy

	RegistrationError = domain.RegistrationError
	NotFoundError     = domain.NotFoundError
	FixerError        = domain.FixerError
)

// Outcome statuses.
const (
	StatusApplied = m.StatusApplied
	StatusSkipped = m.StatusSkipped
	StatusFailed  = m.StatusFailed
)

// Warning categories.
const (
	DeprecationWarning        = m.DeprecationWarning
	PendingDeprecationWarning = m.PendingDeprecationWarning
	RuntimeWarning            = m.RuntimeWarning
	UserWarning               = m.UserWarning
)

// Errors.
var (
	ErrSkipFixer               = m.ErrSkipFixer
	ErrInvalidVersion          = versions.ErrInvalidVersion
	ErrEmptyFixerID            = domain.ErrEmptyFixerID
	ErrMissingDescription      = domain.ErrMissingDescription
	ErrMissingPatch            = domain.ErrMissingPatch
	ErrMissingReferenceVersion = domain.ErrMissingReferenceVersion
	ErrDuplicateFixer          = domain.ErrDuplicateFixer
	ErrFixerNotFound           = domain.ErrFixerNotFound
	ErrNotPopulated            = domain.ErrNotPopulated
)

// PatchingLock serializes patching across the process.
var PatchingLock = domain.PatchingLock

var (
	NewNamespace  = m.NewNamespace
	DefaultConfig = m.DefaultConfig
	Applied       = m.Applied
	Skipped       = m.Skipped
	Skippedf      = m.Skippedf
	Failed        = m.Failed
	Patch         = m.Patch
	NoneRule      = m.NoneRule
	WildcardRule  = m.WildcardRule
	RuleOf        = m.RuleOf
	ParseRule     = m.ParseRule

	NewRegistry        = domain.NewRegistry
	WithFamilyPrefix   = domain.WithFamilyPrefix
	WithPopulator      = domain.WithPopulator
	WithRegistryLogger = domain.WithRegistryLogger
	NewMultiRegistry   = domain.NewMultiRegistry
	NewRunner          = domain.NewRunner
	Select             = domain.Select
	IsRelevant         = domain.IsRelevant

	NewReentrantLock = domain.NewReentrantLock
	MakeSafePatcher  = domain.MakeSafePatcher
	PatchSoftware    = domain.PatchSoftware

	WithUtilitiesFactory = domain.WithUtilitiesFactory
	WithWarningsProxy    = domain.WithWarningsProxy
	WithSoftwareVersion  = domain.WithSoftwareVersion
	WithVersionProvider  = domain.WithVersionProvider
	WithRunObserver      = domain.WithRunObserver
	WithLock             = domain.WithLock

	NewPatchingUtilities = adapter.NewPatchingUtilities
	NewWarningsProxy     = adapter.NewWarningsProxy
	WithOutput           = adapter.WithOutput
	WithLogFormat        = adapter.WithLogFormat
	LoadConfig           = adapter.LoadConfig
	ParseConfig          = adapter.ParseConfig

	CompareVersions = versions.Compare
)
