package service

import "errors"

// 错误类别，handler 层据此映射 HTTP 状态码
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("validation failed")
)

type apiError struct {
	kind error
	msg  string
}

func (e *apiError) Error() string { return e.msg }
func (e *apiError) Unwrap() error { return e.kind }

func notFound(msg string) error     { return &apiError{kind: ErrNotFound, msg: msg} }
func forbidden(msg string) error    { return &apiError{kind: ErrForbidden, msg: msg} }
func unauthorized(msg string) error { return &apiError{kind: ErrUnauthorized, msg: msg} }
func conflict(msg string) error     { return &apiError{kind: ErrConflict, msg: msg} }
func invalid(msg string) error      { return &apiError{kind: ErrValidation, msg: msg} }
