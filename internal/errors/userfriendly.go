package errors

// User-facing error presentation for the CLI boundary. Library packages
// return plain wrapped errors; these helpers dress them up with likely
// causes and a next step before they reach the terminal.

import (
	"fmt"
	"strings"
)

// UserFriendlyError carries a message plus optional context and hints.
type UserFriendlyError struct {
	Message string
	Reason  string
	Hint    string
	Try     string
	Err     error
}

func (e UserFriendlyError) Error() string {
	var buf strings.Builder
	buf.WriteString(e.Message)
	if e.Reason != "" {
		buf.WriteString("\n  Reason: " + e.Reason)
	}
	if e.Hint != "" {
		buf.WriteString("\n  Hint: " + e.Hint)
	}
	if e.Try != "" {
		buf.WriteString("\n  Try: " + e.Try)
	}
	if e.Err != nil {
		buf.WriteString("\n  Details: " + e.Err.Error())
	}
	return buf.String()
}

func (e UserFriendlyError) Unwrap() error {
	return e.Err
}

// WrapConnectionError wraps a transport failure against a controller with
// user-friendly context.
func WrapConnectionError(err error, host string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Failed to communicate with controller at %s", host),
		Reason:  extractConnectionReason(err),
		Hint:    "The FX5 accepts one client per SLMP port; another tool may hold the connection",
		Try:     fmt.Sprintf("fx5ctl ping --host %s", host),
		Err:     err,
	}
}

// WrapProtocolError wraps a nonzero end code returned by the controller.
func WrapProtocolError(err error, operation string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Controller rejected the request: %s", operation),
		Reason:  "The controller returned a nonzero end code",
		Hint:    "Check the device address and value against the controller's device ranges",
		Err:     err,
	}
}

// WrapConfigError wraps configuration errors with user-friendly context.
func WrapConfigError(err error, configPath string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Configuration error in %s", configPath),
		Reason:  err.Error(),
		Try:     "Generate a starting point: fx5ctl config init",
		Err:     err,
	}
}

func extractConnectionReason(err error) string {
	errStr := err.Error()

	if strings.Contains(errStr, "timeout") || strings.Contains(errStr, "deadline exceeded") {
		return "Connection timeout - controller may be offline or unreachable"
	}
	if strings.Contains(errStr, "connection refused") {
		return "Connection refused - controller may not be listening on this port"
	}
	if strings.Contains(errStr, "no route to host") {
		return "No route to host - network routing issue or controller unreachable"
	}
	if strings.Contains(errStr, "connection reset") {
		return "Connection reset - controller closed the connection unexpectedly"
	}
	if strings.Contains(errStr, "response too short") {
		return "Truncated response - the SLMP port may already be in use by another device"
	}

	return "Network communication failed"
}
