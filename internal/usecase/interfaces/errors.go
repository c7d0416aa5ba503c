package interfaces

import "errors"

var (
	// ErrCustomerExists signals that the conditional create lost the race to a
	// concurrent submission for the same email. Callers recover by re-reading.
	ErrCustomerExists = errors.New("customer already exists")

	// ErrDepositExists signals that a deposit payment with the same provider id
	// was already recorded.
	ErrDepositExists = errors.New("deposit payment already recorded")

	// ErrStorageUnavailable marks transient store failures (timeouts, throttling,
	// connectivity). The operation is retryable; the atomic write guarantees no
	// partial state was left behind.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
