// Package errors provides structured domain errors with machine-readable codes.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Effect errors
	CodeEffectMissingBase     Code = "EFFECT_MISSING_BASE"
	CodeEffectMissingModifier Code = "EFFECT_MISSING_MODIFIER"
	CodeEffectUnknown         Code = "EFFECT_UNKNOWN"

	// Content errors
	CodeContentInvalid   Code = "CONTENT_INVALID"
	CodeContentEmptyName Code = "CONTENT_EMPTY_NAME"

	// Session errors
	CodeSessionGameOver      Code = "SESSION_GAME_OVER"
	CodeSessionMissingHero   Code = "SESSION_MISSING_HERO"
	CodeSessionMissingObject Code = "SESSION_MISSING_OBJECT"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeEffectMissingBase,
		CodeEffectMissingModifier,
		CodeEffectUnknown,
		CodeContentInvalid,
		CodeContentEmptyName,
		CodeSessionMissingHero,
		CodeSessionMissingObject:
		return codes.InvalidArgument

	// FailedPrecondition - state doesn't allow operation
	case CodeSessionGameOver:
		return codes.FailedPrecondition

	// NotFound - resource doesn't exist
	case CodeNotFound:
		return codes.NotFound

	default:
		return codes.Internal
	}
}
