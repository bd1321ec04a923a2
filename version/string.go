// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import (
	"fmt"
	"runtime"
	"strings"
)

// String describes [app], the Go runtime and, if known, the commit it was
// built from.
func String(app *Application, commit string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s [go=%s", app, strings.TrimPrefix(runtime.Version(), "go"))
	if commit != "" {
		fmt.Fprintf(&sb, ", commit=%s", commit)
	}
	sb.WriteString("]")
	return sb.String()
}
