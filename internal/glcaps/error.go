package glcaps

import (
	"errors"
	"fmt"
)

// Error is a glGetError code other than GL_NO_ERROR.
type Error uint32

const (
	InvalidEnum                 Error = 0x0500
	InvalidValue                Error = 0x0501
	InvalidOperation            Error = 0x0502
	StackOverflow               Error = 0x0503
	StackUnderflow              Error = 0x0504
	OutOfMemory                 Error = 0x0505
	InvalidFramebufferOperation Error = 0x0506
)

func (e Error) Error() string {
	switch e {
	case InvalidEnum:
		return "GL_INVALID_ENUM"
	case InvalidValue:
		return "GL_INVALID_VALUE"
	case InvalidOperation:
		return "GL_INVALID_OPERATION"
	case StackOverflow:
		return "GL_STACK_OVERFLOW"
	case StackUnderflow:
		return "GL_STACK_UNDERFLOW"
	case OutOfMemory:
		return "GL_OUT_OF_MEMORY"
	case InvalidFramebufferOperation:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	}
	return fmt.Sprintf("GL error 0x%04X", uint32(e))
}

// maxErrors bounds DrainErrors; GL records one flag per error kind.
const maxErrors = 16

// DrainErrors calls getError until it returns 0 (GL_NO_ERROR) and joins
// every code it read.
func DrainErrors(getError func() uint32) error {
	var errs []error
	for i := 0; i < maxErrors; i++ {
		code := getError()
		if code == 0 {
			break
		}
		errs = append(errs, Error(code))
	}
	return errors.Join(errs...)
}
