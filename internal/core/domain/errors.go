package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidOperation is the root of every business-rule violation raised by an aggregate.
var ErrInvalidOperation = errors.New("invalid operation")

// ErrInvalidArgument is the root of errors raised for out-of-range constructor or setter input.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	ErrCurrencyMismatch     = fmt.Errorf("%w: currency mismatch", ErrInvalidOperation)
	ErrInsufficientFunds    = fmt.Errorf("%w: insufficient funds", ErrInvalidOperation)
	ErrCreditLimitExceeded  = fmt.Errorf("%w: credit limit exceeded", ErrInvalidOperation)
	ErrNotCreditCard        = fmt.Errorf("%w: credit limit can only be set on credit card accounts", ErrInvalidOperation)
	ErrDefaultCategory      = fmt.Errorf("%w: default categories cannot be modified", ErrInvalidOperation)
	ErrTransferToSelf       = fmt.Errorf("%w: cannot transfer to the same account", ErrInvalidOperation)
	ErrGoalNotActive        = fmt.Errorf("%w: only active goals accept contributions", ErrInvalidOperation)
	ErrGoalTransition       = fmt.Errorf("%w: goal status transition not allowed", ErrInvalidOperation)
	ErrTransferNotSupported = fmt.Errorf("%w: transfers must be created through the transfer endpoint", ErrInvalidOperation)
	ErrCategoryTypeMismatch = fmt.Errorf("%w: category does not match transaction type", ErrInvalidOperation)
	ErrInactiveAccount      = fmt.Errorf("%w: account is inactive", ErrInvalidOperation)

	ErrInvalidDateRange  = fmt.Errorf("%w: end date must not be before start date", ErrInvalidArgument)
	ErrInvalidThreshold  = fmt.Errorf("%w: alert threshold must be between 0 and 100", ErrInvalidArgument)
	ErrNonPositiveAmount = fmt.Errorf("%w: amount must be positive", ErrInvalidArgument)
	ErrInvalidInterval   = fmt.Errorf("%w: recurrence interval must be at least 1", ErrInvalidArgument)
	ErrUnknownCurrency   = fmt.Errorf("%w: unknown currency", ErrInvalidArgument)
)

// IsRuleViolation reports whether err was raised by a domain invariant check.
func IsRuleViolation(err error) bool {
	return errors.Is(err, ErrInvalidOperation) || errors.Is(err, ErrInvalidArgument)
}
