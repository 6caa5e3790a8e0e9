package tftcmd

import "fmt"

// CommandError classifies why a Command or Sequence failed validation or
// execution.
//
// CommandError implements error so that codes can be matched with errors.Is
// against the error returned by ValidationResult.Err.
type CommandError uint8

const (
	ErrNone CommandError = iota
	ErrEmptySequence
	ErrNoEndMarker
	ErrInvalidDataSize
	ErrEmptyDataList
	ErrZeroDelay
	ErrInvalidCommandType
	ErrSequenceTooLong
	ErrInvalidCommandValue
	ErrInvalidDataValue
)

var commandErrorNames = [...]string{
	ErrNone:                "NONE",
	ErrEmptySequence:       "EMPTY_SEQUENCE",
	ErrNoEndMarker:         "NO_END_MARKER",
	ErrInvalidDataSize:     "INVALID_DATA_SIZE",
	ErrEmptyDataList:       "EMPTY_DATA_LIST",
	ErrZeroDelay:           "ZERO_DELAY",
	ErrInvalidCommandType:  "INVALID_COMMAND_TYPE",
	ErrSequenceTooLong:     "SEQUENCE_TOO_LONG",
	ErrInvalidCommandValue: "INVALID_COMMAND_VALUE",
	ErrInvalidDataValue:    "INVALID_DATA_VALUE",
}

func (e CommandError) String() string {
	if int(e) < len(commandErrorNames) {
		return commandErrorNames[e]
	}
	return fmt.Sprintf("CommandError(%d)", uint8(e))
}

// Error implements error.
func (e CommandError) Error() string {
	return "tftcmd: " + e.String()
}

// ValidationResult is the outcome of validating a Command or a Sequence, or of
// executing a Sequence.
type ValidationResult struct {
	IsValid    bool
	Error      CommandError
	ErrorIndex int    // Index of the offending element; 0 for a lone Command
	Message    string // Human readable detail

	cause error // Transport error behind an ErrInvalidCommandValue, if any
}

func valid() ValidationResult {
	return ValidationResult{IsValid: true, Error: ErrNone}
}

func invalid(code CommandError, index int, msg string) ValidationResult {
	return ValidationResult{Error: code, ErrorIndex: index, Message: msg}
}

// Err returns nil for a valid result and a *ValidationError otherwise.
func (r ValidationResult) Err() error {
	if r.IsValid {
		return nil
	}
	return &ValidationError{Result: r}
}

func (r ValidationResult) String() string {
	if r.IsValid {
		return "valid"
	}
	return fmt.Sprintf("%s at %d: %s", r.Error, r.ErrorIndex, r.Message)
}

// ValidationError is the error form of a failing ValidationResult.
type ValidationError struct {
	Result ValidationResult
}

func (e *ValidationError) Error() string {
	msg := "tftcmd: " + e.Result.Error.String()
	if e.Result.Message != "" {
		msg += ": " + e.Result.Message
	}
	if e.Result.cause != nil {
		msg += ": " + e.Result.cause.Error()
	}
	return msg
}

// Unwrap exposes both the CommandError code and the transport cause.
func (e *ValidationError) Unwrap() []error {
	errs := []error{e.Result.Error}
	if e.Result.cause != nil {
		errs = append(errs, e.Result.cause)
	}
	return errs
}
