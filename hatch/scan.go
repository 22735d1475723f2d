package hatch

import (
	"errors"
	"io"

	dxf "github.com/synadia-labs/dxf.go/runtime"
)

// Result is the outcome of ReadAll.
type Result struct {
	Hatches []*Hatch
	// Skipped holds the errors of entities that failed to decode when
	// Options.SkipMalformed is set.
	Skipped []error
}

// ReadAll decodes every HATCH entity in the ENTITIES and BLOCKS sections
// of a DXF stream, in file order.
func ReadAll(src dxf.Source, opts Options) (*Result, error) {
	d := NewDecoder(src, opts)
	res := &Result{}
	section := ""
	for {
		p, err := d.src.Next()
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		if err != nil {
			return res, err
		}
		if p.Code != dxf.CodeEntityType {
			continue
		}
		name, _ := p.Str()
		switch name {
		case "SECTION":
			np, ok, err := d.src.Optional(dxf.CodeName)
			if err != nil {
				return res, err
			}
			if ok {
				section, _ = np.Str()
			}
		case "ENDSEC":
			section = ""
		case "EOF":
			return res, nil
		case "HATCH":
			if section != "ENTITIES" && section != "BLOCKS" {
				continue
			}
			h, err := d.ReadHatch()
			if err == nil {
				res.Hatches = append(res.Hatches, h)
				continue
			}
			if !opts.SkipMalformed || !dxf.Resumable(err) {
				return res, err
			}
			dxf.Logger().Warn("skipping malformed HATCH", "error", err)
			res.Skipped = append(res.Skipped, err)
			if err := d.skipEntity(); err != nil {
				return res, err
			}
		}
	}
}

// skipEntity discards pairs up to the next code 0 pair, which is left in
// the source.
func (d *Decoder) skipEntity() error {
	for {
		p, err := d.src.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if p.Code == dxf.CodeEntityType {
			return d.unread(p)
		}
	}
}
