//go:build plot
// +build plot

package skel

import (
	"math"
	"path/filepath"
	"strconv"
	"testing"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"dasa.cc/skin/geom"
)

type plttr struct {
	*plot.Plot
	nlines int
}

func newplttr(title string) *plttr {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "t"
	p.Add(plotter.NewGrid())
	return &plttr{Plot: p}
}

func (p *plttr) addLine(lbl string, xys plotter.XYs) {
	ln, err := plotter.NewLine(xys)
	if err != nil {
		panic(err)
	}
	ln.LineStyle.Width = vg.Points(2)
	ln.LineStyle.Color = plotutil.Color(p.nlines)
	p.nlines++
	p.Add(ln)
	p.Legend.Add(lbl, ln)
}

func (p *plttr) save(t *testing.T, fname string) {
	fname = filepath.Join(t.TempDir(), fname)
	if err := p.Save(8*vg.Inch, 6*vg.Inch, fname); err != nil {
		t.Fatal(err)
	}
	t.Logf("wrote %s", fname)
}

// TestPlotBlend draws the angle reached by a two-stance blend against t for
// growing angular differences; a screw interpolation would be a straight
// line, the normalized linear blend bows away from it.
func TestPlotBlend(t *testing.T) {
	p := newplttr("blend angle / target angle")
	const n = 50
	for _, deg := range []float64{30, 90, 150, 179} {
		target := deg * math.Pi / 180
		a, b := geom.DualQuatIdent(), geom.FromAxisAngle(geom.K, target)
		xys := make(plotter.XYs, n+1)
		for j := range xys {
			x := float64(j) / n
			q := a.Lerp(b, x).Real()
			xys[j].X = x
			xys[j].Y = 2 * math.Atan2(q.V.Norm(), q.S) / target
		}
		t.Logf("%v° at t=0.25 reaches %.3f", deg, xys[n/4].Y)
		p.addLine(fmtDeg(deg), xys)
	}
	p.save(t, "blend.png")
}

// TestPlotShrink draws the norm of the unnormalized blend, which Unit
// corrects.
func TestPlotShrink(t *testing.T) {
	p := newplttr("|a(1-t) + bt|")
	const n = 50
	for _, deg := range []float64{30, 90, 150, 179} {
		a, b := geom.DualQuatIdent(), geom.FromAxisAngle(geom.K, deg*math.Pi/180)
		xys := make(plotter.XYs, n+1)
		for j := range xys {
			x := float64(j) / n
			m := a.Scale(geom.Dual{Re: 1 - x}).Add(b.Scale(geom.Dual{Re: x}))
			xys[j].X = x
			xys[j].Y = m.Norm().Re
		}
		p.addLine(fmtDeg(deg), xys)
	}
	p.save(t, "shrink.png")
}

func fmtDeg(deg float64) string { return strconv.FormatFloat(deg, 'f', -1, 64) + "°" }
