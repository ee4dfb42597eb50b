package privacy

import "errors"

// Sentinel errors for the privacy package.
var (
	// ErrBudgetExceeded indicates a composed PrivacyUsage exceeds the
	// PrivacyDefinition's configured budget.
	ErrBudgetExceeded = errors.New("privacy: composed usage exceeds budget")

	// ErrInvalidUsage indicates a PrivacyUsage carries a non-positive
	// epsilon or a delta outside [0, 1).
	ErrInvalidUsage = errors.New("privacy: invalid epsilon/delta")

	// ErrInvalidAlpha indicates an accuracy query used an alpha outside
	// (0, 1).
	ErrInvalidAlpha = errors.New("privacy: alpha must be in (0, 1)")

	// ErrInvalidAccuracy indicates a requested accuracy was non-positive.
	ErrInvalidAccuracy = errors.New("privacy: accuracy must be positive")

	// ErrUnsupportedMechanism indicates an accuracy<->privacy conversion
	// was requested for a mechanism this package does not calibrate.
	ErrUnsupportedMechanism = errors.New("privacy: unsupported mechanism for accuracy conversion")
)
