package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"error"`
	HTTPStatus int    `json:"-"`
	Details    any    `json:"details,omitempty"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetails returns a copy of the error carrying client-visible details.
func (e *AppError) WithDetails(details any) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// AmountMismatch is the client-visible detail of a rejected transfer.
type AmountMismatch struct {
	Leg                 string `json:"leg"`
	ExpectedLamports    uint64 `json:"expectedLamports"`
	ActualLamports      uint64 `json:"actualLamports"`
	ExpectedDestination string `json:"expectedDestination"`
	ActualDestination   string `json:"actualDestination,omitempty"`
}

// ---- Validation (VAL) ----

// Validation returns a VAL_001 error for malformed client input.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

// ErrRouteNotFound is returned for unknown paths.
func ErrRouteNotFound() *AppError {
	return New("VAL_002", "Route not found", http.StatusNotFound)
}

// ---- Security (SEC) ----

func ErrForbiddenCSRF() *AppError {
	return New("SEC_001", "Invalid or expired CSRF token", http.StatusForbidden)
}

func ErrInvalidOrExpiredToken() *AppError {
	return New("SEC_002", "Invalid or expired nonce", http.StatusBadRequest)
}

// ---- Chain verification (CHAIN) ----

func ErrTransactionNotFound() *AppError {
	return New("CHAIN_001", "Transaction not found or not yet confirmed, try again shortly", http.StatusBadRequest)
}

func ErrNoTransferFound() *AppError {
	return New("CHAIN_002", "No transfer instruction found in transaction", http.StatusBadRequest)
}

func ErrTransactionFailed() *AppError {
	return New("CHAIN_003", "Transaction failed on chain", http.StatusBadRequest)
}

// ---- Deposits (PAY) ----

func ErrAmountOrDestinationMismatch(detail AmountMismatch) *AppError {
	return New("PAY_001", "Invalid transaction amount or destination", http.StatusBadRequest).WithDetails(detail)
}

func ErrDuplicateDeposit() *AppError {
	return New("PAY_002", "Transaction already submitted", http.StatusConflict)
}

func ErrDepositLimitReached(limit int64) *AppError {
	return New("PAY_003", fmt.Sprintf("Daily deposit limit of %d reached, activate VIP to deposit more", limit), http.StatusTooManyRequests)
}

func ErrInsufficientFunds(message string) *AppError {
	return New("PAY_004", message, http.StatusBadRequest)
}

// ---- Draw (DRAW) ----

func ErrInsufficientCustodialBalance(err error) *AppError {
	return Wrap("DRAW_001", "Custodial wallet balance too low for payout", http.StatusServiceUnavailable, err)
}

func ErrPartialDrawFailure(err error) *AppError {
	return Wrap("DRAW_002", "Payout submitted but ledger not cleared, manual reconciliation required", http.StatusInternalServerError, err)
}

func ErrDrawInProgress() *AppError {
	return New("DRAW_003", "A draw is already in progress", http.StatusConflict)
}

func ErrInvalidWinnerAddress(err error) *AppError {
	return Wrap("DRAW_004", "Selected winner address is invalid, draw aborted", http.StatusInternalServerError, err)
}

func ErrPayoutFailed(err error) *AppError {
	return Wrap("DRAW_005", "Payout transaction failed", http.StatusBadGateway, err)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Too many requests, please try again later", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrChainUnavailable(err error) *AppError {
	return Wrap("SYS_002", "Blockchain network unavailable, please retry", http.StatusServiceUnavailable, err)
}

func ErrChainTimeout(err error) *AppError {
	return Wrap("SYS_003", "Blockchain request timed out, please retry", http.StatusGatewayTimeout, err)
}
