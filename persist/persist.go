// Copyright 2026 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package persist stores trained glyph models as checksummed JSON
// documents and restores them into ready-to-use networks.
package persist

import (
	"github.com/born-ml/glyph/internal/mlp"
	"github.com/born-ml/glyph/internal/persist"
)

// Format constants.
const (
	FormatMagic   = persist.FormatMagic
	FormatVersion = persist.FormatVersion
)

// File is the on-disk JSON document.
type File = persist.File

// Persistence errors, matchable with errors.Is.
var (
	ErrInvalidFormat      = persist.ErrInvalidFormat
	ErrUnsupportedVersion = persist.ErrUnsupportedVersion
	ErrChecksumMismatch   = persist.ErrChecksumMismatch
)

// Save writes snap and the caller's metadata to path with a SHA-256
// checksum over the tensor payload.
func Save(path string, snap mlp.Snapshot, meta map[string]string) error {
	return persist.Save(path, snap, meta)
}

// Load reads the model document at path, verifying magic, version, tensor
// shapes and checksum.
func Load(path string) (mlp.Snapshot, map[string]string, error) {
	return persist.Load(path)
}

// Restore loads the model at path into a freshly constructed network.
func Restore(path string) (*mlp.Network, error) {
	return persist.Restore(path)
}
