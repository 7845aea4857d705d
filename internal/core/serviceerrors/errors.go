package serviceerrors

import "errors"

type ErrorKind int

const (
	KindInvalidArgument ErrorKind = iota
	KindTypeMismatch
	KindMissingAttribute
	KindZeroQuantity
	KindNotFound
)

func IsOfKind(err error, kind ErrorKind) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Kind == kind
	}
	return false
}

type ServiceError struct {
	Kind    ErrorKind
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

func NewInvalidArgumentError(message string) *ServiceError {
	return &ServiceError{Kind: KindInvalidArgument, Message: message}
}

func NewTypeMismatchError(message string) *ServiceError {
	return &ServiceError{Kind: KindTypeMismatch, Message: message}
}

func NewMissingAttributeError(message string) *ServiceError {
	return &ServiceError{Kind: KindMissingAttribute, Message: message}
}

func NewZeroQuantityError(message string) *ServiceError {
	return &ServiceError{Kind: KindZeroQuantity, Message: message}
}

func NewNotFoundError(message string) *ServiceError {
	return &ServiceError{Kind: KindNotFound, Message: message}
}
