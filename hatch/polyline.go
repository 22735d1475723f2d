package hatch

import (
	dxf "github.com/synadia-labs/dxf.go/runtime"
)

// readPolylineBoundary decodes a polyline boundary. It returns nil, and no
// error, when the boundary declares zero vertices.
//
// The has-bulge flag (72) is only a hint and is discarded; each vertex
// carries a bulge exactly when a 42 pair follows its coordinates.
func (d *Decoder) readPolylineBoundary() (*PolylineBoundary, error) {
	poly := &PolylineBoundary{}
	n := -1
	for n < 0 {
		p, err := d.src.Need()
		if err != nil {
			return nil, err
		}
		switch p.Code {
		case codeHasBulge:
			if _, err := p.Bool(); err != nil {
				return nil, err
			}
		case codeIsClosed:
			if poly.IsClosed, err = p.Bool(); err != nil {
				return nil, err
			}
		case codeEdgeCount:
			if n, err = countOf(p); err != nil {
				return nil, err
			}
		default:
			if err := d.unread(p); err != nil {
				return nil, err
			}
			if p.Code == dxf.CodeEntityType {
				return nil, dxf.ErrEntityClosed
			}
			return nil, dxf.UnexpectedCodeError{Code: p.Code, Want: []int{codeHasBulge, codeIsClosed, codeEdgeCount}}
		}
	}
	if n == 0 {
		return nil, nil
	}

	poly.Vertices = make([]Vertex, 0, capHint(n))
	for i := 0; i < n; i++ {
		v, err := d.readVertex()
		if err != nil {
			return nil, dxf.WrapError(err, idx("vertex", i))
		}
		poly.Vertices = append(poly.Vertices, v)
	}
	return poly, nil
}

func (d *Decoder) readVertex() (Vertex, error) {
	var v Vertex
	var err error
	if v.X, v.Y, err = d.point(codeX, codeY); err != nil {
		return Vertex{}, err
	}
	p, ok, err := d.src.Optional(codeBulge)
	if err != nil {
		return Vertex{}, err
	}
	if ok {
		if v.Bulge, err = p.Float64(); err != nil {
			return Vertex{}, err
		}
	}
	return v, nil
}
