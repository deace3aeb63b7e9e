package domain

import "github.com/google/uuid"

//region InvalidArgumentsError

type InvalidArgumentsError struct {
	Msg string
}

func (e *InvalidArgumentsError) Error() string {
	return e.Msg
}

func (e *InvalidArgumentsError) Is(target error) bool {
	_, ok := target.(*InvalidArgumentsError)
	return ok
}

//endregion

//region ProductNotFoundError

// ProductNotFoundError reports requested ids that do not resolve to any
// catalog product.
type ProductNotFoundError struct {
	Msg        string
	ProductIDs []uuid.UUID
}

func (e *ProductNotFoundError) Error() string {
	return e.Msg
}

func (e *ProductNotFoundError) Is(target error) bool {
	_, ok := target.(*ProductNotFoundError)
	return ok
}

//endregion

//region AlreadyOwnedError

// AlreadyOwnedError reports products from a checkout the user already owns.
// The whole request is rejected, never partially fulfilled.
type AlreadyOwnedError struct {
	Msg        string
	ProductIDs []uuid.UUID
}

func (e *AlreadyOwnedError) Error() string {
	return e.Msg
}

func (e *AlreadyOwnedError) Is(target error) bool {
	_, ok := target.(*AlreadyOwnedError)
	return ok
}

//endregion

//region InsufficientBalanceError

type InsufficientBalanceError struct {
	Msg string
}

func (e *InsufficientBalanceError) Error() string {
	return e.Msg
}

func (e *InsufficientBalanceError) Is(target error) bool {
	_, ok := target.(*InsufficientBalanceError)
	return ok
}

//endregion

//region PurchaseConflictError

// PurchaseConflictError signals a lost race at commit time. Nothing was
// changed; resubmitting the same request is safe.
type PurchaseConflictError struct {
	Msg string
}

func (e *PurchaseConflictError) Error() string {
	return e.Msg
}

func (e *PurchaseConflictError) Is(target error) bool {
	_, ok := target.(*PurchaseConflictError)
	return ok
}

//endregion

//region UserNotFoundError

type UserNotFoundError struct {
	Msg string
}

func (e *UserNotFoundError) Error() string {
	return e.Msg
}

func (e *UserNotFoundError) Is(target error) bool {
	_, ok := target.(*UserNotFoundError)
	return ok
}

//endregion
