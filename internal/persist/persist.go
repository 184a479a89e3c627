// Package persist stores trained network parameters as a checksummed JSON
// document and restores them through the engine's snapshot seam.
package persist

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/born-ml/glyph/internal/mlp"
)

// Save writes snap and the caller's metadata to path. The document carries
// a SHA-256 checksum over the tensor payload so corruption is caught on
// load.
func Save(path string, snap mlp.Snapshot, meta map[string]string) error {
	doc := File{
		Format:        FormatMagic,
		FormatVersion: FormatVersion,
		CreatedAt:     time.Now().UTC(),
		Metadata:      meta,
		InputSize:     snap.InputSize,
		HiddenSize:    snap.HiddenSize,
		OutputSize:    snap.OutputSize,
		W1:            snap.W1,
		B1:            snap.B1,
		W2:            snap.W2,
		B2:            snap.B2,
		Checksum:      checksum(snap.W1, snap.B1, snap.W2, snap.B2),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode model: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write model: %w", err)
	}
	return nil
}

// Load reads the model document at path, verifying magic, version, tensor
// shapes and checksum before handing the snapshot back.
func Load(path string) (mlp.Snapshot, map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return mlp.Snapshot{}, nil, fmt.Errorf("read model: %w", err)
	}
	var doc File
	if err := json.Unmarshal(data, &doc); err != nil {
		return mlp.Snapshot{}, nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if doc.Format != FormatMagic {
		return mlp.Snapshot{}, nil, fmt.Errorf("%w: magic %q", ErrInvalidFormat, doc.Format)
	}
	if doc.FormatVersion != FormatVersion {
		return mlp.Snapshot{}, nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, doc.FormatVersion)
	}
	if err := validate(&doc); err != nil {
		return mlp.Snapshot{}, nil, err
	}
	if sum := checksum(doc.W1, doc.B1, doc.W2, doc.B2); sum != doc.Checksum {
		return mlp.Snapshot{}, nil, fmt.Errorf("%w: stored %s, computed %s", ErrChecksumMismatch, doc.Checksum, sum)
	}
	snap := mlp.Snapshot{
		InputSize:  doc.InputSize,
		HiddenSize: doc.HiddenSize,
		OutputSize: doc.OutputSize,
		W1:         doc.W1,
		B1:         doc.B1,
		W2:         doc.W2,
		B2:         doc.B2,
	}
	return snap, doc.Metadata, nil
}

// Restore loads the model at path into a freshly constructed network.
func Restore(path string) (*mlp.Network, error) {
	snap, _, err := Load(path)
	if err != nil {
		return nil, err
	}
	net, err := mlp.New(snap.InputSize, snap.HiddenSize, snap.OutputSize, 0)
	if err != nil {
		return nil, err
	}
	if err := net.SetParameters(snap); err != nil {
		return nil, err
	}
	return net, nil
}

func validate(doc *File) error {
	if doc.InputSize <= 0 || doc.HiddenSize <= 0 || doc.OutputSize <= 1 {
		return fmt.Errorf("%w: dimensions %dx%dx%d", ErrInvalidFormat,
			doc.InputSize, doc.HiddenSize, doc.OutputSize)
	}
	if len(doc.W1) != doc.HiddenSize*doc.InputSize || len(doc.B1) != doc.HiddenSize ||
		len(doc.W2) != doc.OutputSize*doc.HiddenSize || len(doc.B2) != doc.OutputSize {
		return fmt.Errorf("%w: tensor sizes do not match dimensions", ErrInvalidFormat)
	}
	return nil
}
