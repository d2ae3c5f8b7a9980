package adapter

import "errors"

// Transport errors, one per HTTP status class the user service produces.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	ErrEmptyAddress   = errors.New("empty address")
	ErrDecodingReply  = errors.New("error decoding server reply")
	ErrSendingRequest = errors.New("error sending request")
)
