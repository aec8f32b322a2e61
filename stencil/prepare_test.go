package stencil

import (
	"reflect"
	"testing"

	"github.com/gogpu/pathfill"
)

func squarePath() *pathfill.Path {
	p := pathfill.NewPath()
	p.MoveTo(10, 10)
	p.LineTo(90, 10)
	p.LineTo(90, 90)
	p.LineTo(10, 90)
	p.Close()
	return p
}

func TestPrepareSquare(t *testing.T) {
	result := Prepare(squarePath(), DefaultConfig())

	sp := result.StencilPass
	if !sp.ColorWriteDisabled {
		t.Error("stencil pass must disable color writes")
	}
	if got := sp.Mesh.TriangleCount(); got != 3 {
		t.Errorf("stencil triangles = %d, want 3", got)
	}
	if got := len(sp.Mesh.Vertices); got != 5 {
		t.Errorf("stencil vertices = %d, want 5", got)
	}
	if sp.State.FrontOps.Pass != OpIncrWrap || sp.State.BackOps.Pass != OpDecrWrap {
		t.Errorf("stencil ops = %v/%v, want IncrWrap/DecrWrap",
			sp.State.FrontOps.Pass, sp.State.BackOps.Pass)
	}

	cp := result.CoverPass
	if got := cp.Mesh.TriangleCount(); got != 2 {
		t.Errorf("cover triangles = %d, want 2", got)
	}
	if got, want := cp.Bounds, pathfill.NewRect(pathfill.Pt(10, 10), pathfill.Pt(90, 90)); got != want {
		t.Errorf("cover bounds = %v, want %v", got, want)
	}
	if cp.State.FrontFunc != FuncNotEqual || cp.State.Reference != 0 {
		t.Error("cover pass should test NotEqual against reference 0")
	}
}

func TestPrepareCoverPadding(t *testing.T) {
	result := Prepare(squarePath(), DefaultConfig())

	// The cover quad is the path bounds outset by one unit on each side.
	got := result.CoverPass.Mesh.Bounds()
	want := pathfill.NewRect(pathfill.Pt(9, 9), pathfill.Pt(91, 91))
	if got != want {
		t.Errorf("cover mesh bounds = %v, want %v", got, want)
	}
}

func TestPrepareEvenOdd(t *testing.T) {
	config := Config{FillRule: FillRuleEvenOdd}
	result := Prepare(squarePath(), config)

	sp := result.StencilPass.State
	if sp.FrontOps.Pass != OpInvert || sp.BackOps.Pass != OpInvert {
		t.Error("even-odd stencil pass should Invert on both faces")
	}
	if sp.WriteMask != 0x01 {
		t.Errorf("even-odd write mask = %#x, want 0x01", sp.WriteMask)
	}
	if got := result.CoverPass.State.ReadMask; got != 0x01 {
		t.Errorf("even-odd cover read mask = %#x, want 0x01", got)
	}
}

func TestPrepareOneSided(t *testing.T) {
	config := Config{FillRule: FillRuleNonZero, TwoSided: false}
	result := Prepare(squarePath(), config)

	sp := result.StencilPass.State
	if sp.FrontOps.Pass != OpIncrWrap || sp.BackOps.Pass != OpIncrWrap {
		t.Error("one-sided stencil pass should IncrWrap on both faces")
	}
}

func TestPrepareEmptyPath(t *testing.T) {
	result := Prepare(pathfill.NewPath(), DefaultConfig())

	if got := result.StencilPass.Mesh.TriangleCount(); got != 0 {
		t.Errorf("empty path stencil triangles = %d, want 0", got)
	}
	// The cover quad still exists; submission is the caller's call.
	if got := result.CoverPass.Mesh.TriangleCount(); got != 2 {
		t.Errorf("empty path cover triangles = %d, want 2", got)
	}
}

func TestPrepareDeterministic(t *testing.T) {
	a := Prepare(squarePath(), DefaultConfig())
	b := Prepare(squarePath(), DefaultConfig())
	if !reflect.DeepEqual(a, b) {
		t.Error("Prepare should be deterministic for equal inputs")
	}
}

func TestPrepareIgnoresPathFillType(t *testing.T) {
	p := squarePath()
	p.SetFillType(pathfill.FillTypeEvenOdd)
	result := Prepare(p, Config{FillRule: FillRuleNonZero, TwoSided: true})

	// The config decides the rule, not the path tag.
	if got := result.StencilPass.State.FrontOps.Pass; got != OpIncrWrap {
		t.Errorf("front pass op = %v, want IncrWrap", got)
	}
}
