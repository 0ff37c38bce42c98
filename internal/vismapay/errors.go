package vismapay

import (
	"fmt"
	"strings"
)

// CommunicationError means the gateway could not be reached or answered with
// something that is not a valid pbwapi body. Callers show a generic
// "payment provider unreachable" message and never the wrapped detail.
type CommunicationError struct {
	Op  string
	Err error
}

func (e *CommunicationError) Error() string {
	return fmt.Sprintf("vismapay: %s: %v", e.Op, e.Err)
}

func (e *CommunicationError) Unwrap() error { return e.Err }

// RejectedError is a business rejection reported by the gateway itself
// (non-zero result code on an otherwise well-formed response).
type RejectedError struct {
	Result int
	Errors []string
	URL    string
}

func (e *RejectedError) Error() string {
	msg := fmt.Sprintf("vismapay: request rejected with result %d", e.Result)
	if len(e.Errors) > 0 {
		msg += ": " + strings.Join(e.Errors, "; ")
	}
	if e.URL != "" {
		msg += " (" + e.URL + ")"
	}
	return msg
}

// ProtocolError is a success response that violates the pbwapi contract,
// such as result 0 without a token.
type ProtocolError struct {
	Reason string
}

func (e *ProtocolError) Error() string {
	return "vismapay: protocol error: " + e.Reason
}
