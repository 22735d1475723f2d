package hatch

import (
	"seehuhn.de/go/geom/vec"

	dxf "github.com/synadia-labs/dxf.go/runtime"
)

// readSplineEdge decodes a spline edge. The fields come in a fixed order;
// only the per-control-point weights are optional.
func (d *Decoder) readSplineEdge() (*SplineEdge, error) {
	e := &SplineEdge{}
	var err error
	if e.Degree, err = d.src.ExpectInt16(codeDegree); err != nil {
		return nil, err
	}
	if e.Rational, err = d.src.ExpectBool(codeRational); err != nil {
		return nil, err
	}
	if e.Periodic, err = d.src.ExpectBool(codePeriodic); err != nil {
		return nil, err
	}
	nKnots, err := d.count(codeKnotCount)
	if err != nil {
		return nil, err
	}
	nControl, err := d.count(codeControlCount)
	if err != nil {
		return nil, err
	}

	e.Knots = make([]float64, 0, capHint(nKnots))
	for i := 0; i < nKnots; i++ {
		k, err := d.src.ExpectFloat64(codeRadius)
		if err != nil {
			return nil, dxf.WrapError(err, idx("knot", i))
		}
		e.Knots = append(e.Knots, k)
	}

	var cx, cy []float64
	e.Weights = make([]*float64, 0, capHint(nControl))
	for i := 0; i < nControl; i++ {
		x, y, w, err := d.readControlPoint()
		if err != nil {
			return nil, dxf.WrapError(err, idx("control", i))
		}
		cx, cy = append(cx, x), append(cy, y)
		e.Weights = append(e.Weights, w)
	}

	nFit, err := d.count(codeFitCount)
	if err != nil {
		return nil, err
	}
	var fx, fy []float64
	for i := 0; i < nFit; i++ {
		x, y, err := d.point(codeX2, codeY2)
		if err != nil {
			return nil, dxf.WrapError(err, idx("fit", i))
		}
		fx, fy = append(fx, x), append(fy, y)
	}

	sx, sy, err := d.point(codeStartTanX, codeStartTanY)
	if err != nil {
		return nil, dxf.WrapError(err, "start-tangent")
	}
	ex, ey, err := d.point(codeEndTanX, codeEndTanY)
	if err != nil {
		return nil, dxf.WrapError(err, "end-tangent")
	}
	e.StartTangent = vec.Vec2{X: sx, Y: sy}
	e.EndTangent = vec.Vec2{X: ex, Y: ey}

	if e.ControlPoints, err = zipPoints(cx, cy); err != nil {
		return nil, dxf.WrapError(err, "control")
	}
	if e.FitPoints, err = zipPoints(fx, fy); err != nil {
		return nil, dxf.WrapError(err, "fit")
	}
	return e, nil
}

func (d *Decoder) readControlPoint() (x, y float64, w *float64, err error) {
	if x, y, err = d.point(codeX, codeY); err != nil {
		return 0, 0, nil, err
	}
	p, ok, err := d.src.Optional(codeBulge)
	if err != nil || !ok {
		return x, y, nil, err
	}
	v, err := p.Float64()
	if err != nil {
		return 0, 0, nil, err
	}
	return x, y, &v, nil
}
