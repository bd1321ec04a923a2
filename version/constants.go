// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

const Client = "ratemeter"

// Current is the version of this build.
var Current = &Application{
	Name:  Client,
	Major: 1,
	Minor: 0,
	Patch: 0,
}

// GitCommit is set at build time with
//
//	-ldflags "-X github.com/ava-labs/ratemeter/version.GitCommit=$(git rev-parse HEAD)"
var GitCommit string
