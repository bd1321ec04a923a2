// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wrappers

import "errors"

// Errs collects the errors returned by a sequence of calls so they can be
// checked once at the end.
type Errs struct {
	// Err is the first non-nil error that was added.
	Err error

	all []error
}

// Errored returns true if any non-nil error was added.
func (errs *Errs) Errored() bool { return errs.Err != nil }

// Add records every non-nil error in [errors].
func (errs *Errs) Add(errors ...error) {
	for _, err := range errors {
		if err == nil {
			continue
		}
		if errs.Err == nil {
			errs.Err = err
		}
		errs.all = append(errs.all, err)
	}
}

// Joined returns every added error joined together, or nil if none were added.
func (errs *Errs) Joined() error {
	return errors.Join(errs.all...)
}
