package core

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
)

// Domain errors carrying the messages the API reports verbatim.
var (
	ErrNoSuchInsurance = fmt.Errorf("%w: there is no insurance with this id", ErrNotFound)

	ErrInvalidSearchCriteria = fmt.Errorf("%w: at least one of firstName or familyName must be provided", ErrValidation)

	ErrInvalidInsuranceType = fmt.Errorf("%w: invalid insurance type", ErrValidation)
)
