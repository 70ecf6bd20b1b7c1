package lox_test

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/KimNorgaard/go-lox"
	"github.com/KimNorgaard/go-lox/errors"
	"github.com/KimNorgaard/go-lox/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestCases(t *testing.T) {
	cases, err := testutil.LoadCases("cases.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			var out bytes.Buffer
			r, err := lox.New(&out)
			require.NoError(t, err)

			err = r.Run(tc.Source)
			require.Equal(t, tc.Output, out.String())

			var diags errors.List
			if len(tc.Diagnostics) > 0 {
				require.True(t, stderrors.As(err, &diags), "expected diagnostics, got %v", err)
				actual := make([]string, len(diags))
				for i, d := range diags {
					actual[i] = d.Error()
				}
				require.Equal(t, tc.Diagnostics, actual)
			} else {
				require.False(t, stderrors.As(err, &diags), "unexpected diagnostics: %v", diags)
			}

			var rtErr *errors.RuntimeError
			if tc.RuntimeError != "" {
				require.True(t, stderrors.As(err, &rtErr), "expected a runtime error, got %v", err)
				require.Equal(t, tc.RuntimeError, rtErr.Error())
			} else {
				require.False(t, stderrors.As(err, &rtErr), "unexpected runtime error: %v", rtErr)
			}
		})
	}
}
