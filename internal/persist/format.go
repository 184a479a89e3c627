package persist

import "time"

// Format constants.
const (
	FormatMagic   = "glyph-model"
	FormatVersion = 1
)

// File is the JSON document stored on disk. Tensors are kept as plain
// float64 arrays so a saved model stays inspectable with standard tools;
// Go's round-trip float encoding preserves every bit.
type File struct {
	Format        string            `json:"format"`         // magic, always "glyph-model"
	FormatVersion int               `json:"format_version"` // document layout version
	CreatedAt     time.Time         `json:"created_at"`     // when the file was written
	Metadata      map[string]string `json:"metadata"`       // caller-supplied annotations
	InputSize     int               `json:"input_size"`
	HiddenSize    int               `json:"hidden_size"`
	OutputSize    int               `json:"output_size"`
	W1            []float64         `json:"w1"`       // hidden x input, row-major
	B1            []float64         `json:"b1"`       // hidden
	W2            []float64         `json:"w2"`       // output x hidden, row-major
	B2            []float64         `json:"b2"`       // output
	Checksum      string            `json:"checksum"` // hex SHA-256 of the tensor payload
}
