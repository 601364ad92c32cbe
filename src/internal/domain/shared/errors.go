package shared

import "fmt"

// ErrorCode identifies a category of domain error. Codes are stable and
// intended for programmatic checks (errors.Is) and for mapping to
// user-visible feedback at the portal boundary.
type ErrorCode string

// Store-level error codes shared by every bounded context.
const (
	ErrCodeTransactionConflict ErrorCode = "TRANSACTION_CONFLICT"
	ErrCodeTransactionRequired ErrorCode = "TRANSACTION_REQUIRED"
	ErrCodeStoreUnavailable    ErrorCode = "STORE_UNAVAILABLE"
)

// DomainError is a structured domain error: a stable code, a human-readable
// message, and optional context for logs. Instances are immutable;
// WithContext returns a copy.
type DomainError struct {
	Code    ErrorCode
	Message string
	Context map[string]interface{}
}

func (e *DomainError) Error() string {
	if len(e.Context) == 0 {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s (context: %+v)", e.Code, e.Message, e.Context)
}

// WithContext returns a new error carrying additional key/value pairs.
// Keys must be strings; an odd argument count is a programming error.
func (e *DomainError) WithContext(keyValues ...interface{}) error {
	if len(keyValues)%2 != 0 {
		panic("WithContext requires an even number of arguments (key-value pairs)")
	}

	ctx := make(map[string]interface{}, len(e.Context)+len(keyValues)/2)
	for k, v := range e.Context {
		ctx[k] = v
	}
	for i := 0; i < len(keyValues); i += 2 {
		key, ok := keyValues[i].(string)
		if !ok {
			panic(fmt.Sprintf("context key must be string, got %T", keyValues[i]))
		}
		ctx[key] = keyValues[i+1]
	}

	return &DomainError{Code: e.Code, Message: e.Message, Context: ctx}
}

// Is matches by error code, so errors.Is works across WithContext copies.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

var (
	// ErrTransactionConflict is surfaced after the store adapter has
	// exhausted its bounded retries for a conflicting concurrent write.
	ErrTransactionConflict = &DomainError{
		Code:    ErrCodeTransactionConflict,
		Message: "transação abortada por conflito concorrente",
	}

	// ErrTransactionRequired guards operations that are only legal inside
	// TransactionManager.InTransaction, such as point increments.
	ErrTransactionRequired = &DomainError{
		Code:    ErrCodeTransactionRequired,
		Message: "operação exige um contexto transacional",
	}

	// ErrStoreUnavailable wraps network or backend failures of the store.
	ErrStoreUnavailable = &DomainError{
		Code:    ErrCodeStoreUnavailable,
		Message: "banco de dados indisponível",
	}
)
