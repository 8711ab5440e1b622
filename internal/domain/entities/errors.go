package entities

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a dump loading failure
type ErrorKind string

// Dump loading failure kinds
const (
	KindInitialization       ErrorKind = "initialization"
	KindUnsupportedOperation ErrorKind = "unsupported operation"
	KindRead                 ErrorKind = "read"
	KindParse                ErrorKind = "parse"
)

// Operation names reported in DumpError.Op
const (
	OpOpen               = "open build scan dump reader"
	OpReadBuildToolType  = "read build tool type"
	OpReadGradleScanDump = "read gradle build scan dump"
	OpReadMavenScanDump  = "read maven build scan dump"
)

// Sentinels matched by errors.Is against any DumpError of the same kind
var (
	ErrInitialization       = errors.New("initialization error")
	ErrUnsupportedOperation = errors.New("unsupported operation")
	ErrRead                 = errors.New("read error")
	ErrParse                = errors.New("parse error")
)

var kindSentinels = map[ErrorKind]error{
	KindInitialization:       ErrInitialization,
	KindUnsupportedOperation: ErrUnsupportedOperation,
	KindRead:                 ErrRead,
	KindParse:                ErrParse,
}

// DumpError is the single terminal error surfaced by every dump loading operation
type DumpError struct {
	Kind ErrorKind
	Op   string
	Path string
	Err  error
}

// NewDumpError creates a DumpError of the given kind
func NewDumpError(kind ErrorKind, op, path string, err error) *DumpError {
	return &DumpError{Kind: kind, Op: op, Path: path, Err: err}
}

func (e *DumpError) Error() string {
	msg := fmt.Sprintf("%s error", e.Kind)
	if e.Kind == KindUnsupportedOperation {
		msg = string(e.Kind)
	}
	if e.Op != "" {
		msg += " in " + e.Op
	}
	if e.Path != "" {
		msg += " (" + e.Path + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause
func (e *DumpError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the error kind
func (e *DumpError) Is(target error) bool {
	sentinel, ok := kindSentinels[e.Kind]
	return ok && target == sentinel
}

// KindOf returns the kind of the first DumpError in the chain, or "" when there is none
func KindOf(err error) ErrorKind {
	var dumpErr *DumpError
	if errors.As(err, &dumpErr) {
		return dumpErr.Kind
	}
	return ""
}

// AsDumpError passes an existing DumpError through unchanged and maps any other error
// onto the given kind. A nil error stays nil.
func AsDumpError(kind ErrorKind, op, path string, err error) error {
	if err == nil {
		return nil
	}
	var dumpErr *DumpError
	if errors.As(err, &dumpErr) {
		return err
	}
	return NewDumpError(kind, op, path, err)
}
