package gemini

import "errors"

var (
	// ErrMissingAPIKey indicates no credential was configured. Checked
	// before any network attempt.
	ErrMissingAPIKey = errors.New("missing Gemini API key: set GEMINI_API_KEY (or API_KEY)")

	// ErrUnreachable indicates the generation service could not be
	// reached. Try again later.
	ErrUnreachable = errors.New("generation service unreachable, try again later")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("generation request timed out")

	// ErrGeneration indicates the service accepted the request but
	// reported a failure. The provider message is preserved in the wrap.
	ErrGeneration = errors.New("generation failed")
)

// EmptyResultSentinel is returned, with a nil error, when the service
// responds successfully but produces no text.
const EmptyResultSentinel = "The model returned no content. Adjust your selections or input and try again."
