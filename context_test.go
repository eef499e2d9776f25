package vgr

import (
	"errors"
	"testing"
)

// captureBackend records the frames handed to it.
type captureBackend struct {
	frames []*Frame
	err    error
}

func (b *captureBackend) Render(f *Frame) error {
	b.frames = append(b.frames, f)
	return b.err
}

func TestContextSaveRestore(t *testing.T) {
	ctx := New(testOptions(), nil, nil)
	ctx.Translate(10, 20)
	before := ctx.CurrentTransform()

	ctx.Save()
	ctx.Scale(2, 2)
	ctx.Rotate(0.5)
	ctx.Restore()

	if got := ctx.CurrentTransform(); !matrixApprox(got, before) {
		t.Errorf("transform after Save/Restore = %+v, want %+v", got, before)
	}
}

func TestContextRestoreUnderflow(t *testing.T) {
	ctx := New(testOptions(), nil, nil)
	ctx.Save()
	ctx.Restore()
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrStackUnderflow) {
			t.Errorf("recover() = %v, want ErrStackUnderflow", r)
		}
	}()
	ctx.Restore()
}

func TestContextBufferRotation(t *testing.T) {
	ctx := New(testOptions(), nil, nil)

	ctx.BeginFrame(P(800, 600), 1)
	first := ctx.Scene()
	ctx.FillRect(P(0, 0), P(10, 10), 0, 0)
	if first.PrimCount != 1 {
		t.Fatalf("PrimCount = %d, want 1", first.PrimCount)
	}

	for i := 1; i < BufferCount; i++ {
		ctx.BeginFrame(P(800, 600), 1)
		if ctx.Scene() == first {
			t.Fatalf("scene reused after %d rotations, want %d distinct buffers", i, BufferCount)
		}
	}

	// Wrapping around reuses the first buffer, reset.
	ctx.BeginFrame(P(800, 600), 1)
	if ctx.Scene() != first {
		t.Fatal("scene after full rotation is not the first buffer")
	}
	if first.PrimCount != 0 {
		t.Errorf("PrimCount after rotation = %d, want 0", first.PrimCount)
	}
}

func TestContextBeginFrameResetsStack(t *testing.T) {
	ctx := New(testOptions(), nil, nil)
	ctx.BeginFrame(P(800, 600), 1)
	ctx.Save()
	ctx.Translate(5, 5)
	ctx.BeginFrame(P(800, 600), 1)
	if got := ctx.CurrentTransform(); !got.IsIdentity() {
		t.Errorf("transform after BeginFrame = %+v, want identity", got)
	}
}

func TestContextFlush(t *testing.T) {
	ctx := New(testOptions(), nil, nil)
	backend := &captureBackend{}

	if ctx.FrameNumber() != 1 {
		t.Fatalf("initial FrameNumber = %d, want 1", ctx.FrameNumber())
	}

	ctx.BeginFrame(P(640, 480), 2)
	ctx.FillCircle(P(100, 100), 20, 0)
	ctx.Flush(backend)

	if ctx.FrameNumber() != 2 {
		t.Errorf("FrameNumber after flush = %d, want 2", ctx.FrameNumber())
	}
	if len(backend.frames) != 1 {
		t.Fatalf("backend received %d frames, want 1", len(backend.frames))
	}
	f := backend.frames[0]
	if len(f.Prims) != 1 {
		t.Errorf("frame has %d prims, want 1", len(f.Prims))
	}
	if f.WindowSize != P(640, 480) {
		t.Errorf("frame WindowSize = %+v, want (640,480)", f.WindowSize)
	}
	if f.DevicePixelRatio != 2 {
		t.Errorf("frame DevicePixelRatio = %v, want 2", f.DevicePixelRatio)
	}
}

func TestContextFlushBackendError(t *testing.T) {
	ctx := New(testOptions(), nil, nil)
	backend := &captureBackend{err: errors.New("device lost")}
	ctx.BeginFrame(P(100, 100), 1)
	ctx.Flush(backend)
	// A failing backend must not stall the frame counter.
	if ctx.FrameNumber() != 2 {
		t.Errorf("FrameNumber after failed flush = %d, want 2", ctx.FrameNumber())
	}
}

func TestContextBeginFrameClampsPixelRatio(t *testing.T) {
	ctx := New(testOptions(), nil, nil)
	backend := &captureBackend{}
	ctx.BeginFrame(P(100, 100), 0)
	ctx.Flush(backend)
	if got := backend.frames[0].DevicePixelRatio; got != 1 {
		t.Errorf("DevicePixelRatio = %v, want clamped to 1", got)
	}
}

func TestContextRenderStampsTransform(t *testing.T) {
	ctx := New(testOptions(), nil, nil)
	ctx.BeginFrame(P(100, 100), 1)
	ctx.Translate(3, 4)
	ctx.FillRect(P(0, 0), P(1, 1), 0, 0)

	s := ctx.Scene()
	if s.PrimCount != 1 {
		t.Fatalf("PrimCount = %d, want 1", s.PrimCount)
	}
	got := s.Xforms[s.Prims[0].Xform]
	if !matrixApprox(got, Translation(3, 4)) {
		t.Errorf("stamped transform = %+v, want Translation(3,4)", got)
	}
}

func TestContextFillRectRoundedKind(t *testing.T) {
	ctx := New(testOptions(), nil, nil)
	ctx.BeginFrame(P(100, 100), 1)
	ctx.FillRect(P(0, 0), P(10, 10), 0, 0)
	ctx.FillRect(P(0, 0), P(10, 10), 3, 0)

	s := ctx.Scene()
	if s.Prims[0].Kind != PrimRect {
		t.Errorf("prim 0 kind = %v, want Rect", s.Prims[0].Kind)
	}
	if s.Prims[1].Kind != PrimRoundRect {
		t.Errorf("prim 1 kind = %v, want RoundRect", s.Prims[1].Kind)
	}
}

func TestContextCreateTexture(t *testing.T) {
	ctx := New(testOptions(), nil, nil)
	backend := &captureBackend{}

	pixels := make([]byte, 4*4*4)
	if got := ctx.CreateTexture(pixels, 4, 4); got != 0 {
		t.Errorf("first CreateTexture = %d, want 0", got)
	}
	if got := ctx.CreateTexture(pixels, 4, 4); got != 1 {
		t.Errorf("second CreateTexture = %d, want 1", got)
	}

	// Textures persist across frames, unlike the per-frame pools.
	ctx.BeginFrame(P(100, 100), 1)
	ctx.Flush(backend)
	ctx.BeginFrame(P(100, 100), 1)
	ctx.Flush(backend)
	if got := len(backend.frames[1].Textures); got != 2 {
		t.Errorf("frame 2 carries %d textures, want 2", got)
	}
}

func TestContextStrokePrimitives(t *testing.T) {
	ctx := New(testOptions(), nil, nil)
	ctx.BeginFrame(P(100, 100), 1)
	ctx.StrokeSegment(P(0, 0), P(10, 0), 2, 0)
	ctx.StrokeBezier(P(0, 0), P(5, 10), P(10, 0), 2, 0)
	ctx.StrokeCubic(P(0, 0), P(3, 10), P(7, 10), P(10, 0), 2, 0)

	s := ctx.Scene()
	// Segment emits one quad; each curve kind emits four tiles.
	if s.PrimCount != 1+4+4 {
		t.Fatalf("PrimCount = %d, want 9", s.PrimCount)
	}
	if s.Prims[0].Kind != PrimSegment {
		t.Errorf("prim 0 kind = %v, want Segment", s.Prims[0].Kind)
	}
	if s.Prims[1].Kind != PrimCurve {
		t.Errorf("prim 1 kind = %v, want Curve", s.Prims[1].Kind)
	}
	if s.Prims[5].Kind != PrimCubicCurve {
		t.Errorf("prim 5 kind = %v, want CubicCurve", s.Prims[5].Kind)
	}
}
