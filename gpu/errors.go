// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/glwrap/glwrap/internal/gl"
)

var (
	// ErrAllocation matches every *AllocationError.
	ErrAllocation = errors.New("gpu: object allocation failed")
	// ErrInvalidArgument matches every *ArgumentError.
	ErrInvalidArgument = errors.New("gpu: invalid argument")
	// ErrInvalidUTF8 is wrapped by an *IOError for shader sources that
	// are not UTF-8 text.
	ErrInvalidUTF8 = errors.New("gpu: source is not valid UTF-8")
)

// AllocationError reports that the driver returned the zero handle.
type AllocationError struct {
	Object ObjectKind
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("gpu: driver returned no %s object", e.Object)
}

func (e *AllocationError) Is(target error) bool {
	return target == ErrAllocation
}

// CompileError carries the driver log of a failed shader compilation.
type CompileError struct {
	Stage ShaderStage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("gpu: %s shader compilation failed: %s", e.Stage, firstLine(e.Log))
}

// LinkError carries the driver log of a failed program link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("gpu: program link failed: %s", firstLine(e.Log))
}

// ArgumentError reports a caller contract violation.
type ArgumentError struct {
	Op  string
	Msg string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("gpu: %s: %s", e.Op, e.Msg)
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func argErr(op, format string, args ...any) error {
	return &ArgumentError{Op: op, Msg: fmt.Sprintf(format, args...)}
}

// IOError reports a failure to read shader source.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("gpu: read %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// LoadError reports a failure to read or decode an image file.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("gpu: load image %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// TranslateError reports a WGSL source that could not be converted to
// GLSL. The driver never saw it.
type TranslateError struct {
	Stage ShaderStage
	Err   error
}

func (e *TranslateError) Error() string {
	return fmt.Sprintf("gpu: translate %s shader: %v", e.Stage, e.Err)
}

func (e *TranslateError) Unwrap() error {
	return e.Err
}

// DriverError is a glGetError code observed after an operation.
type DriverError struct {
	Op   string
	Code uint
}

func (e *DriverError) Error() string {
	return fmt.Sprintf("gpu: %s: %s", e.Op, gl.ErrorString(gl.Enum(e.Code)))
}

func firstLine(log string) string {
	if i := strings.IndexByte(log, '\n'); i >= 0 {
		return log[:i] + " (...)"
	}
	return log
}
