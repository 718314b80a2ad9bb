package providers

import (
	"errors"
	"fmt"
	"testing"
)

func TestProviderError_Error(t *testing.T) {
	cause := errors.New("connection reset")

	tests := []struct {
		name string
		err  *ProviderError
		want string
	}{
		{
			name: "message only",
			err:  NewProviderError("elevenlabs", KindStatus, "unauthorized", 401, nil),
			want: "unauthorized",
		},
		{
			name: "message with cause",
			err:  NewProviderError("elevenlabs", KindTransport, "request failed", 0, cause),
			want: "request failed: connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProviderError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewProviderError("elevenlabs", KindUnexpected, "wrapped", 0, cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is did not find the cause")
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{
			name: "provider error reports its kind",
			err:  NewProviderError("elevenlabs", KindTransport, "refused", 0, nil),
			want: KindTransport,
		},
		{
			name: "wrapped provider error",
			err:  fmt.Errorf("outer: %w", NewProviderError("elevenlabs", KindStatus, "nope", 500, nil)),
			want: KindStatus,
		},
		{
			name: "plain error defaults to unexpected",
			err:  errors.New("who knows"),
			want: KindUnexpected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %s, want %s", got, tt.want)
			}
		})
	}
}
