package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// OperationError ties a failure to the submission it belongs to.
// Seq is the submission's sequence number (or the selection gesture for
// "select"); zero means none.
type OperationError struct {
	Operation string
	Seq       int64
	RequestID string
	Err       error
}

func (e *OperationError) Error() string {
	if e == nil || e.Err == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(e.Operation)
	if e.Seq > 0 {
		fmt.Fprintf(&b, " #%d", e.Seq)
	}
	if e.RequestID != "" {
		fmt.Fprintf(&b, " (request_id=%s)", e.RequestID)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Fields returns the error's context as log fields
func (e *OperationError) Fields() []zap.Field {
	if e == nil {
		return nil
	}
	fields := []zap.Field{zap.String("operation", e.Operation), zap.Error(e.Err)}
	if e.Seq > 0 {
		fields = append(fields, zap.Int64("seq", e.Seq))
	}
	if e.RequestID != "" {
		fields = append(fields, zap.String("request_id", e.RequestID))
	}
	return fields
}

// NewOperationError wraps err with the operation and submission it occurred in.
func NewOperationError(operation string, seq int64, requestID string, err error) error {
	if err == nil {
		return nil
	}
	return &OperationError{Operation: operation, Seq: seq, RequestID: requestID, Err: err}
}
