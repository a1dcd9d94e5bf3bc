// Package apperr maps technical errors to user-facing messages with codes
// for support reference.
//
// # Error Codes Reference
//
// # Import Errors (IMP001-IMP099)
//
//	IMP001 - Workbook missing: The source workbook was not found
//	         Action: Place the workbook at OBRAS_WORKBOOK or pass --workbook
//	         Patterns: "workbook not found"
//
//	IMP002 - No records: The workbook has no rows with a work description
//	         Action: Check that the "Obra" column is filled in
//	         Patterns: "no records found"
//
//	IMP003 - Sheet missing: The selected sheet does not exist
//	         Action: Check OBRAS_SHEET or --sheet against the workbook's tabs
//	         Patterns: "sheet not found"
//
// # File Errors (FILE001-FILE099)
//
//	FILE003 - Encoding error: File contains invalid characters
//	          Action: Save file as UTF-8 encoding
//	          Patterns: "encoding error"
//
//	FILE006 - Source tree missing: The workspace root could not be read
//	          Action: Check WORKSPACE_ROOT or --root
//	          Patterns: "workspace root"
//
// # Configuration Errors (CFG001-CFG099)
//
//	CFG001 - Invalid configuration: One or more settings are invalid
//	         Action: Fix the listed environment variables or flags
//	         Patterns: "validation failed", "env:"
//
// # Run Errors (RUN001-RUN099)
//
//	RUN001 - Cancelled: The run was interrupted
//	         Action: Run the command again
//	         Patterns: "operation cancelled", "context canceled"
//
// # Default Error (ERR000)
//
//	ERR000 - Unknown error: An unexpected error occurred
//	         Action: Run with --log-level debug and check the output
//
// Patterns are matched case-insensitively with strings.Contains; the first
// match wins.
package apperr

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened
	Action  string // What to do about it
	Code    string // Error code for support reference
}

type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	// Import
	{
		pattern: "workbook not found",
		msg: UserMessage{
			Message: "The source workbook was not found",
			Action:  "Place the workbook at OBRAS_WORKBOOK or pass --workbook",
			Code:    "IMP001",
		},
	},
	{
		pattern: "no records found",
		msg: UserMessage{
			Message: "The workbook has no rows with a work description",
			Action:  `Check that the "Obra" column is filled in`,
			Code:    "IMP002",
		},
	},
	{
		pattern: "sheet not found",
		msg: UserMessage{
			Message: "The selected sheet does not exist",
			Action:  "Check OBRAS_SHEET or --sheet against the workbook's tabs",
			Code:    "IMP003",
		},
	},

	// Files
	{
		pattern: "encoding error",
		msg: UserMessage{
			Message: "File contains invalid characters",
			Action:  "Save file as UTF-8 encoding",
			Code:    "FILE003",
		},
	},
	{
		pattern: "workspace root",
		msg: UserMessage{
			Message: "The workspace root could not be read",
			Action:  "Check WORKSPACE_ROOT or --root",
			Code:    "FILE006",
		},
	},

	// Configuration
	{
		pattern: "validation failed",
		msg: UserMessage{
			Message: "One or more settings are invalid",
			Action:  "Fix the listed environment variables or flags",
			Code:    "CFG001",
		},
	},
	{
		pattern: "env:",
		msg: UserMessage{
			Message: "One or more settings are invalid",
			Action:  "Fix the listed environment variables or flags",
			Code:    "CFG001",
		},
	},

	// Run
	{
		pattern: "operation cancelled",
		msg: UserMessage{
			Message: "The run was interrupted",
			Action:  "Run the command again",
			Code:    "RUN001",
		},
	},
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "The run was interrupted",
			Action:  "Run the command again",
			Code:    "RUN001",
		},
	},
}

var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Run with --log-level debug and check the output",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// If no pattern matches, the ERR000 fallback is returned.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// UserError pairs a technical error with its user-facing message.
type UserError struct {
	Technical error       // Original technical error for logging
	User      UserMessage // User-friendly message for display
}

func (e *UserError) Error() string {
	return e.User.Message
}

func (e *UserError) Unwrap() error {
	return e.Technical
}

// Describe renders the user message with its code and action, followed by the
// technical error on its own line. The technical text carries the details the
// mapped message leaves out, such as file paths, sheet names and settings.
func (e *UserError) Describe() string {
	return FormatUserError(e.Technical) + "\n  " + e.Technical.Error()
}

// NewUserError maps err to a UserError. Returns nil if err is nil.
func NewUserError(err error) *UserError {
	if err == nil {
		return nil
	}
	return &UserError{
		Technical: err,
		User:      MapError(err),
	}
}
