// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplicationString(t *testing.T) {
	tests := []struct {
		app      *Application
		expected string
	}{
		{
			app: &Application{
				Name:  Client,
				Major: 0,
				Minor: 0,
				Patch: 1,
			},
			expected: "ratemeter/0.0.1",
		},
		{
			app: &Application{
				Name:  "myClient",
				Major: 10,
				Minor: 20,
				Patch: 30,
			},
			expected: "myClient/10.20.30",
		},
	}
	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			require.Equal(t, test.expected, test.app.String())
		})
	}
}

func TestString(t *testing.T) {
	require := require.New(t)

	goVersion := strings.TrimPrefix(runtime.Version(), "go")
	require.Equal("ratemeter/1.0.0 [go="+goVersion+"]", String(Current, ""))
	require.Equal("ratemeter/1.0.0 [go="+goVersion+", commit=abc]", String(Current, "abc"))
}
