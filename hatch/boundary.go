package hatch

import (
	dxf "github.com/synadia-labs/dxf.go/runtime"
)

// ReadBoundaryPaths decodes n boundary paths, the count having been read
// by the caller from code 91, and appends them to h.BoundaryPaths in
// source order.
//
// A polyline path that declares no vertices appends nothing.
func (d *Decoder) ReadBoundaryPaths(h *Hatch, n int) error {
	for i := 0; i < n; i++ {
		if err := d.readBoundaryPath(h); err != nil {
			return dxf.WrapError(err, idx("boundary", i))
		}
	}
	return nil
}

func (d *Decoder) readBoundaryPath(h *Hatch) error {
	raw, err := d.src.ExpectInt32(codePathType)
	if err != nil {
		return err
	}
	pathType := ParsePathType(raw)

	var path BoundaryPath
	if pathType.IsPolyline() {
		poly, err := d.readPolylineBoundary()
		if err != nil {
			return dxf.WrapError(err, "polyline")
		}
		if poly != nil {
			path = poly
		}
	} else {
		edges, err := d.readEdgeBoundary()
		if err != nil {
			return dxf.WrapError(err, "edges")
		}
		path = edges
	}

	sources, err := d.readSourceObjects()
	if err != nil {
		return dxf.WrapError(err, "sources")
	}
	if path == nil {
		return nil
	}
	h.BoundaryPaths = append(h.BoundaryPaths, BoundaryData{
		PathType:      pathType,
		Path:          path,
		SourceObjects: sources,
	})
	return nil
}

// readSourceObjects reads the optional 97 count and that many 330 handles.
func (d *Decoder) readSourceObjects() ([]string, error) {
	p, ok, err := d.src.Optional(codeSourceCount)
	if err != nil || !ok {
		return nil, err
	}
	n, err := countOf(p)
	if err != nil {
		return nil, err
	}
	var handles []string
	if n > 0 {
		handles = make([]string, 0, capHint(n))
	}
	for i := 0; i < n; i++ {
		p, err := d.src.Expect(codeSourceHandle)
		if err != nil {
			return nil, dxf.WrapError(err, idx("handle", i))
		}
		s, err := p.Str()
		if err != nil {
			return nil, dxf.WrapError(err, idx("handle", i))
		}
		handles = append(handles, s)
	}
	return handles, nil
}
