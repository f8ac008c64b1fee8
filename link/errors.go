package link

import "errors"

// Kind is a stable category for programmatic error handling.
//
// Callers should branch on Kind/RuleID rather than matching error strings.
// Error() strings are human-readable and may evolve.
type Kind string

const (
	KindParse  Kind = "Parse"
	KindCrypto Kind = "Crypto"
)

// Error is the codec's structured error type.
//
// RuleID is a stable identifier (e.g., WOT-PARSE-001, WOT-CRYPTO-401) that
// names the violated format or verification rule.
type Error struct {
	Kind    Kind
	RuleID  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newError(kind Kind, ruleID, msg string) error {
	return &Error{Kind: kind, RuleID: ruleID, Message: msg}
}

func wrapError(kind Kind, ruleID, msg string, cause error) error {
	if cause == nil {
		return newError(kind, ruleID, msg)
	}
	return &Error{Kind: kind, RuleID: ruleID, Message: msg, Cause: cause}
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// IsMalformed reports whether err is any codec error, i.e. the raw bytes do
// not decode as a link. Storage and resolution errors are never codec errors.
func IsMalformed(err error) bool {
	var e *Error
	return errors.As(err, &e)
}

// RuleID returns the stable RuleID for a structured error, or "" if unknown.
func RuleID(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.RuleID
}
