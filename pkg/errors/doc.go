// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Callers classify failures by ErrorCode rather than by inspecting message text:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeRateLimitExceeded,
//	    "language model rejected the request",
//	    cause,
//	    map[string]any{
//	        "status": 429,
//	        "model":  model,
//	    },
//	)
//
//	if errors.CodeOf(err) == errors.ErrCodeRateLimitExceeded {
//	    // map to 429
//	}
package errors
