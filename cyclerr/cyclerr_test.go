// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cyclerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "without cause",
			err:  New(CodeMalformedInput, "bad problem line"),
			want: "[MALFORMED_INPUT] bad problem line",
		},
		{
			name: "with cause",
			err:  Wrap(CodeInfeasible, "zero-transit cycle", errors.New("node 3")),
			want: "[INFEASIBLE_INSTANCE] zero-transit cycle: node 3",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorIs(t *testing.T) {
	err := Wrap(CodeInfeasible, "zero-transit cycle", errors.New("cause"))
	assert.True(t, errors.Is(err, New(CodeInfeasible, "")))
	assert.False(t, errors.Is(err, New(CodeMalformedInput, "")))
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := Wrap(CodeNumericalGuard, "lambda decreased", cause)
	assert.Equal(t, cause, errors.Unwrap(err))
}
