package sgserr

// RuleResult is the coded, non-throwing return value for every rule-service
// query (spec.md §4.3, §7). Rule services are read-only and never panic on
// a disallowed action; they report it.
type RuleResult struct {
	IsAllowed  bool
	Code       Code
	MessageKey string
	Details    map[string]any
}

// Allowed returns an allowing RuleResult.
func Allowed() RuleResult {
	return RuleResult{IsAllowed: true, Code: CodeNone}
}

// Disallowed returns a disallowing RuleResult carrying the reason code.
func Disallowed(code Code, messageKey string) RuleResult {
	return RuleResult{IsAllowed: false, Code: code, MessageKey: messageKey}
}

// WithDetail attaches a detail key/value and returns the result for
// chaining.
func (r RuleResult) WithDetail(key string, value any) RuleResult {
	if r.Details == nil {
		r.Details = make(map[string]any)
	}
	r.Details[key] = value
	return r
}

// Err converts a disallowed RuleResult into a coded *Error, or nil if the
// result allows the action.
func (r RuleResult) Err() *Error {
	if r.IsAllowed {
		return nil
	}
	return New(r.Code, r.MessageKey)
}

// ResolutionResult is the coded, non-throwing return value for resolver
// invocations (spec.md §4.4, §7).
type ResolutionResult struct {
	Success    bool
	Code       Code
	MessageKey string
	Details    map[string]any
}

// ResolutionSuccess returns a successful ResolutionResult.
func ResolutionSuccess() ResolutionResult {
	return ResolutionResult{Success: true, Code: CodeNone}
}

// ResolutionFailure returns a failed ResolutionResult carrying the reason
// code.
func ResolutionFailure(code Code, messageKey string) ResolutionResult {
	return ResolutionResult{Success: false, Code: code, MessageKey: messageKey}
}

// Err converts a failed ResolutionResult into a coded *Error, or nil if the
// result succeeded.
func (r ResolutionResult) Err() *Error {
	if r.Success {
		return nil
	}
	return New(r.Code, r.MessageKey)
}
