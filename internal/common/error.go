package common

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCode identifies the class of a translator error.
type ErrCode uint32

const (
	OK ErrCode = iota
	ErrFail
	ErrMalformedBitSpec
	ErrMalformedNumber
	ErrRegFile
	ErrBadConfig
	ErrIO
)

// ErrSeverity is the severity attached to an Error.
type ErrSeverity uint32

const (
	ErrSevNone ErrSeverity = iota
	ErrSevError
	ErrSevWarn
	ErrSevInfo
)

// NoLine marks an Error that is not tied to an input line.
const NoLine = 0

// Error is the structured error returned by the catalog builder, the register
// file loaders and the line translator.
type Error struct {
	Code    ErrCode
	Sev     ErrSeverity
	Line    int // 1-based input line, NoLine if unknown
	Message string
}

func NewError(sev ErrSeverity, code ErrCode) *Error {
	return &Error{Code: code, Sev: sev}
}

func NewErrorMsg(sev ErrSeverity, code ErrCode, msg string) *Error {
	return &Error{Code: code, Sev: sev, Message: msg}
}

// Errorf builds an error-severity Error with a formatted message.
func Errorf(code ErrCode, format string, args ...any) *Error {
	return &Error{Code: code, Sev: ErrSevError, Message: fmt.Sprintf(format, args...)}
}

// Error implements the standard error interface.
func (e *Error) Error() string {
	var sb strings.Builder

	switch e.Sev {
	case ErrSevError:
		sb.WriteString("ERROR:")
	case ErrSevWarn:
		sb.WriteString("WARN :")
	case ErrSevInfo:
		sb.WriteString("INFO :")
	default:
		return "INTERNAL ERROR: Invalid Error Object"
	}

	sb.WriteString(fmt.Sprintf("0x%04x ", uint32(e.Code)))

	if desc, ok := errorCodeDesc[e.Code]; ok {
		sb.WriteString(fmt.Sprintf("(%s) [%s]; ", desc.name, desc.msg))
	} else {
		sb.WriteString("(unknown); ")
	}

	if e.Line != NoLine {
		sb.WriteString(fmt.Sprintf("Line=%d; ", e.Line))
	}

	sb.WriteString(e.Message)
	return sb.String()
}

// AtLine returns a copy of e stamped with the given input line number.
func (e *Error) AtLine(line int) *Error {
	c := *e
	c.Line = line
	return &c
}

// HasCode reports whether err is, or wraps, an *Error carrying code.
func HasCode(err error, code ErrCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

type errDesc struct {
	name string
	msg  string
}

var errorCodeDesc = map[ErrCode]errDesc{
	OK:                  {"MEMALIAS_OK", "No Error."},
	ErrFail:             {"MEMALIAS_ERR_FAIL", "General failure."},
	ErrMalformedBitSpec: {"MEMALIAS_ERR_BIT_SPEC", "Register bit field description cannot be parsed."},
	ErrMalformedNumber:  {"MEMALIAS_ERR_NUMBER", "Numeric field in trace line cannot be parsed."},
	ErrRegFile:          {"MEMALIAS_ERR_REG_FILE", "Register definition file error."},
	ErrBadConfig:        {"MEMALIAS_ERR_BAD_CONFIG", "Invalid translator configuration."},
	ErrIO:               {"MEMALIAS_ERR_IO", "Input/output error."},
}
