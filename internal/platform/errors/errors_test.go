package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	sentinel := New(CodeEffectMissingBase, "base hero is required")
	wrapped := fmt.Errorf("wrap berserk: %w", New(CodeEffectMissingBase, "other message"))
	if !stderrors.Is(wrapped, sentinel) {
		t.Fatal("expected errors.Is to match by code")
	}
	if stderrors.Is(wrapped, New(CodeEffectUnknown, "x")) {
		t.Fatal("expected different codes not to match")
	}
}

func TestWrapIncludesCause(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(CodeContentInvalid, "load content", cause)
	if err.Error() != "load content: boom" {
		t.Fatalf("Error() = %q, want %q", err.Error(), "load content: boom")
	}
	if !stderrors.Is(err, cause) {
		t.Fatal("expected cause to be reachable through Unwrap")
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"nil", nil, CodeUnknown},
		{"plain", stderrors.New("x"), CodeUnknown},
		{"domain", New(CodeSessionGameOver, "over"), CodeSessionGameOver},
		{"wrapped", fmt.Errorf("visit: %w", New(CodeNotFound, "missing")), CodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Fatalf("CodeOf = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGRPCCode(t *testing.T) {
	tests := []struct {
		code Code
		want codes.Code
	}{
		{CodeEffectMissingBase, codes.InvalidArgument},
		{CodeContentInvalid, codes.InvalidArgument},
		{CodeSessionMissingObject, codes.InvalidArgument},
		{CodeSessionGameOver, codes.FailedPrecondition},
		{CodeNotFound, codes.NotFound},
		{CodeUnknown, codes.Internal},
	}
	for _, tt := range tests {
		if got := tt.code.GRPCCode(); got != tt.want {
			t.Fatalf("%s GRPCCode = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestToGRPCStatusAttachesDetails(t *testing.T) {
	err := WithMetadata(CodeEffectUnknown, "unknown effect", map[string]string{"Effect": "haste"})
	st, ok := status.FromError(err.ToGRPCStatus("en-US", "Unknown effect haste"))
	if !ok {
		t.Fatal("expected grpc status")
	}
	if st.Code() != codes.InvalidArgument {
		t.Fatalf("code = %v, want %v", st.Code(), codes.InvalidArgument)
	}
	var info *errdetails.ErrorInfo
	for _, detail := range st.Details() {
		if v, ok := detail.(*errdetails.ErrorInfo); ok {
			info = v
		}
	}
	if info == nil {
		t.Fatal("expected ErrorInfo detail")
	}
	if info.Reason != string(CodeEffectUnknown) {
		t.Fatalf("reason = %q, want %q", info.Reason, CodeEffectUnknown)
	}
	if info.Metadata["Effect"] != "haste" {
		t.Fatalf("metadata = %v", info.Metadata)
	}
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   codes.Code
		wantReason Code
	}{
		{"nil", nil, codes.OK, CodeUnknown},
		{"plain", fmt.Errorf("disk full"), codes.Unknown, CodeUnknown},
		{"domain", New(CodeSessionGameOver, "game over"), codes.FailedPrecondition, CodeSessionGameOver},
		{"wrapped", fmt.Errorf("load: %w", Wrap(CodeNotFound, "missing", fmt.Errorf("no file"))), codes.NotFound, CodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := StatusOf(tt.err, "en-US")
			if st.Code() != tt.wantCode {
				t.Fatalf("code = %v, want %v", st.Code(), tt.wantCode)
			}
			if got := ReasonOf(st); got != tt.wantReason {
				t.Fatalf("reason = %v, want %v", got, tt.wantReason)
			}
		})
	}
}
