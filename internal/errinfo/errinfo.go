// Package errinfo tracks structured error information across batch font
// processing. Each error carries the processing phase it happened in,
// which decides its default severity and whether the batch can continue
// with other files.
package errinfo

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Context identifies the processing phase an error occurred in.
type Context uint8

const (
	ContextUnknown Context = iota
	ContextFileIO
	ContextLoading
	ContextSaving
	ContextParsing
	ContextValidation
	ContextNameTable
	ContextSTATTable
	ContextFvarTable
	ContextCFFTable
	ContextOS2Table
	ContextConstruction
	ContextPolicy
)

var contextNames = map[Context]string{
	ContextUnknown:      "unknown",
	ContextFileIO:       "file_io",
	ContextLoading:      "loading",
	ContextSaving:       "saving",
	ContextParsing:      "parsing",
	ContextValidation:   "validation",
	ContextNameTable:    "name_table",
	ContextSTATTable:    "stat_table",
	ContextFvarTable:    "fvar_table",
	ContextCFFTable:     "cff_table",
	ContextOS2Table:     "os2_table",
	ContextConstruction: "construction",
	ContextPolicy:       "policy",
}

func (c Context) String() string {
	if name, ok := contextNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Context(%d)", uint8(c))
}

// Recoverable reports whether errors in this phase typically allow the
// batch to continue with other files.
func (c Context) Recoverable() bool {
	switch c {
	case ContextFileIO, ContextUnknown:
		return false
	}
	return true
}

// Severity levels, ordered from least to most serious.
type Severity uint8

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	}
	return fmt.Sprintf("Severity(%d)", uint8(s))
}

// DefaultSeverity is the severity errors in this phase carry unless
// overridden.
func (c Context) DefaultSeverity() Severity {
	switch c {
	case ContextFileIO, ContextLoading, ContextSaving:
		return SeverityCritical
	case ContextValidation, ContextPolicy:
		return SeverityWarning
	}
	return SeverityError
}

// Info is one recorded error with its processing context.
type Info struct {
	Context     Context
	Message     string
	Path        string
	Err         error
	Recoverable bool
	Severity    Severity
	Time        time.Time
}

// FromError builds an Info from an underlying error, taking
// recoverability and severity from the context defaults. The message
// falls back to the error text.
func FromError(ctx Context, err error, path, message string) Info {
	if message == "" && err != nil {
		message = err.Error()
	}
	return Info{
		Context:     ctx,
		Message:     message,
		Path:        path,
		Err:         err,
		Recoverable: ctx.Recoverable(),
		Severity:    ctx.DefaultSeverity(),
		Time:        time.Now(),
	}
}

// Filename returns the base name of the affected file, or "".
func (i Info) Filename() string {
	if i.Path == "" {
		return ""
	}
	return filepath.Base(i.Path)
}

// UserMessage renders a brief single-line message for the console.
func (i Info) UserMessage() string {
	parts := []string{"[" + strings.ToUpper(i.Context.String()) + "]"}
	if name := i.Filename(); name != "" {
		parts = append(parts, name)
	}
	parts = append(parts, i.Message)
	if i.Err != nil && i.Err.Error() != i.Message {
		parts = append(parts, "("+i.Err.Error()+")")
	}
	return strings.Join(parts, " ")
}

// LogMessage renders the detailed form written to log files.
func (i Info) LogMessage() string {
	parts := []string{
		"Context: " + i.Context.String(),
		"Severity: " + i.Severity.String(),
		"Message: " + i.Message,
	}
	if i.Path != "" {
		parts = append(parts, "File: "+i.Path)
	}
	if i.Err != nil {
		parts = append(parts, "Error: "+i.Err.Error())
	}
	if !i.Recoverable {
		parts = append(parts, "Recoverable: NO")
	}
	return strings.Join(parts, " | ")
}
