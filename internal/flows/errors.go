package flows

import "errors"

// Validation errors are safe to show to the caller as-is.
var (
	ErrEmptyDescription = errors.New("please enter a description for the diagram")
	ErrEmptyPrompt      = errors.New("please enter an enhancement prompt")
)

// Upstream failures are reported with these generic errors only; the
// provider's own error is logged server-side and never returned.
var (
	ErrGenerationFailed  = errors.New("Diagram generation failed: upstream language model error.")
	ErrEnhancementFailed = errors.New("Diagram enhancement failed: upstream language model error.")
)

// IsValidation reports whether err is a caller input error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyDescription) || errors.Is(err, ErrEmptyPrompt)
}
