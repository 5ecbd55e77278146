package scheduling

import "fmt"

// InvalidArgumentError reports missing or malformed caller input.
// Never retried internally.
type InvalidArgumentError struct {
	Field   string
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// ProfileDataError reports stored provider data the engine cannot use
// (invalid timezone, non-positive duration). It indicates corrupt data
// rather than caller misuse and is logged as such.
type ProfileDataError struct {
	ProviderID string
	Message    string
}

func (e *ProfileDataError) Error() string {
	return fmt.Sprintf("provider %s has unusable scheduling data: %s", e.ProviderID, e.Message)
}

// NotFoundError reports that no provider exists for the given ID.
type NotFoundError struct {
	ProviderID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("provider %s not found", e.ProviderID)
}

// UpstreamError wraps a failed external data fetch. Retryable by the
// caller; the engine itself never retries.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s failed: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
