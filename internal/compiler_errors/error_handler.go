package compiler_errors

import (
	"fmt"
	"io"
)

type CompilerError interface {
	GetMessage() string
}

// Message is the plain CompilerError used for warnings and for
// diagnostics that carry no structured position.
type Message string

func (m Message) GetMessage() string { return string(m) }

type ErrorHandler interface {
	AddError(err CompilerError)
	AddWarning(warning CompilerError)

	Errors() []CompilerError
	Warnings() []CompilerError
	HasErrors() bool

	Report(w io.Writer)
}

type CompilerErrorHandler struct {
	errors   []CompilerError
	warnings []CompilerError
}

func NewErrorHandler() *CompilerErrorHandler {
	return &CompilerErrorHandler{
		errors:   make([]CompilerError, 0),
		warnings: make([]CompilerError, 0),
	}
}

func (eh *CompilerErrorHandler) AddError(err CompilerError) {
	eh.errors = append(eh.errors, err)
}

func (eh *CompilerErrorHandler) AddWarning(warning CompilerError) {
	eh.warnings = append(eh.warnings, warning)
}

func (eh *CompilerErrorHandler) Errors() []CompilerError   { return eh.errors }
func (eh *CompilerErrorHandler) Warnings() []CompilerError { return eh.warnings }
func (eh *CompilerErrorHandler) HasErrors() bool           { return len(eh.errors) != 0 }

func (eh *CompilerErrorHandler) Report(w io.Writer) {
	report(w, eh.errors, eh.warnings)
}

// LatchedErrorHandler records only the first error it is given; later
// errors are dropped. Warnings still accumulate.
type LatchedErrorHandler struct {
	first    CompilerError
	warnings []CompilerError
}

func NewLatchedErrorHandler() *LatchedErrorHandler {
	return &LatchedErrorHandler{}
}

func (eh *LatchedErrorHandler) AddError(err CompilerError) {
	if eh.first != nil {
		return
	}
	eh.first = err
}

func (eh *LatchedErrorHandler) AddWarning(warning CompilerError) {
	eh.warnings = append(eh.warnings, warning)
}

func (eh *LatchedErrorHandler) Errors() []CompilerError {
	if eh.first == nil {
		return nil
	}
	return []CompilerError{eh.first}
}

func (eh *LatchedErrorHandler) Warnings() []CompilerError { return eh.warnings }
func (eh *LatchedErrorHandler) HasErrors() bool           { return eh.first != nil }

func (eh *LatchedErrorHandler) Report(w io.Writer) {
	report(w, eh.Errors(), eh.warnings)
}

// Messages flattens diagnostics to their message strings.
func Messages(errs []CompilerError) []string {
	messages := make([]string, 0, len(errs))
	for _, err := range errs {
		messages = append(messages, err.GetMessage())
	}
	return messages
}

func report(w io.Writer, errs, warnings []CompilerError) {
	for _, warning := range warnings {
		fmt.Fprintf(w, "WARNING: %s\n", warning.GetMessage())
	}

	if len(errs) == 0 {
		return
	}

	fmt.Fprintln(w, "Build failed with errors:")
	for _, err := range errs {
		fmt.Fprintf(w, "ERROR: %s\n", err.GetMessage())
	}
}
