// Package errors provides the structured error type shared by every rules
// package in darkforge.
//
// Rule violations in this library are expected outcomes, never crashes:
// a clamped stress value, a full harm track or a duplicate trauma are all
// reported as *Error values that callers branch on.
//
// # Codes and Reasons
//
// Code is the broad category (OUT_OF_RANGE, RESOURCE_EXHAUSTED, ...) and maps
// directly onto gRPC and HTTP status codes for callers that expose the rules
// over a network. Reason identifies the specific rule that fired, so sibling
// errors sharing a code stay distinguishable:
//
//	_, err := stress.Set(12)
//	if errors.Is(err, value.ErrClampedHigh) {
//	    // stored at max, tell the player they overflowed
//	}
//
// A sentinel without a Reason matches every error with the same Code:
//
//	if errors.Is(err, errors.New(errors.CodeOutOfRange, "")) {
//	    // any clamp
//	}
//
// # Metadata
//
// Values involved in the failure are attached as metadata:
//
//	err := errors.ResourceExhaustedf("capacity is %d", n).
//	    WithReason(ReasonTooManyItems).
//	    WithMeta("capacity", n)
//
//	capacity := errors.GetMeta(err)["capacity"]
//
// # Wrapping
//
// Wrap keeps the Code, Reason and Meta of the wrapped error:
//
//	if _, err := tracker.Apply(h); err != nil {
//	    return errors.Wrap(err, "failed to apply harm")
//	}
//
// # Validation
//
// Config validation uses the builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("Name", cfg.Name, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # gRPC Integration
//
// ToGRPCError converts an *Error to a status error, carrying the Reason and
// Meta in a google.rpc.ErrorInfo detail. resolution.WithStatusErrors applies
// it to every error a resolution Service returns.
package errors
