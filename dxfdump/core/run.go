package core

import (
	"fmt"
	"io"
	"os"

	"github.com/synadia-labs/dxf.go/hatch"
	dxf "github.com/synadia-labs/dxf.go/runtime"
)

// Options configures how a dump runs.
type Options struct {
	// Format is one of json, yaml, cbor, msgpack or pairs.
	Format string
	Decode hatch.Options
}

// Run decodes every hatch in the DXF file at inputPath and writes them to
// w in the selected format.
func Run(inputPath string, w io.Writer, opts Options) error {
	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	return Dump(f, w, opts)
}

// Dump is Run over an already opened stream.
func Dump(r io.Reader, w io.Writer, opts Options) error {
	enc, err := encoderFor(opts.Format)
	if err != nil {
		return err
	}
	rd, err := dxf.NewReader(r)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	res, err := hatch.ReadAll(rd, opts.Decode)
	if err != nil {
		return fmt.Errorf("decode (line %d): %w", rd.Line(), err)
	}
	for _, skipped := range res.Skipped {
		dxf.Logger().Info("hatch skipped", "error", skipped)
	}
	dxf.Logger().Debug("decoded hatches", "count", len(res.Hatches), "skipped", len(res.Skipped))
	return enc(w, res.Hatches)
}
