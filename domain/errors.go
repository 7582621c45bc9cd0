package domain

import "errors"

// Kind classifies an Error for the transport layer.
type Kind int

const (
	KindUnknown Kind = iota
	KindBadRequest
	KindConflict
	KindNotFound
	KindForbidden
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrInvalidID       = &Error{Kind: KindBadRequest, Message: "invalid id"}
	ErrInvalidTenant   = &Error{Kind: KindBadRequest, Message: "invalid tenant"}
	ErrSubdomainExists = &Error{Kind: KindConflict, Message: "subdomain already exists"}
	ErrTenantNotFound  = &Error{Kind: KindNotFound, Message: "tenant not found"}
	ErrProductNotFound = &Error{Kind: KindNotFound, Message: "product not found"}
	ErrOrderNotFound   = &Error{Kind: KindNotFound, Message: "order not found"}
	ErrTenantMismatch  = &Error{Kind: KindForbidden, Message: "tenant mismatch"}
)

// KindOf reports the Kind of the first *Error in err's chain, or
// KindUnknown when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsNotFound reports whether err is any not-found error.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}
