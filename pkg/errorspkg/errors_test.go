package errorspkg

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	notFound := New(KindNotFound, "thing not found")

	testCases := []struct {
		name string
		err  error
		want Kind
	}{
		{
			name: "Direct",
			err:  notFound,
			want: KindNotFound,
		},
		{
			name: "Wrapped",
			err:  fmt.Errorf("lookup: %w", notFound),
			want: KindNotFound,
		},
		{
			name: "Connectivity",
			err:  ErrConnectivity,
			want: KindConnectivity,
		},
		{
			name: "Plain",
			err:  errors.New("boom"),
			want: KindIntegrity,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			if got := KindOf(tc.err); got != tc.want {
				t.Errorf("KindOf(%v) = %q, want %q", tc.err, got, tc.want)
			}
		})
	}
}
