// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package stitch

import "github.com/gogpu/stitch/internal/assert"

// AssertionError is the panic value raised when a caller violates the
// protocol: disposing twice, mutating a disposed drawable, passing a
// typed-nil backbone, cleaning with live list links, and similar bugs.
// These are not recoverable conditions.
//
// Assertions are removed entirely when built with the stitch_noassert tag.
type AssertionError = assert.Error

// AssertionsEnabled reports whether protocol assertions are compiled in.
const AssertionsEnabled = assert.Enabled
