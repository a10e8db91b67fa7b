package graphics

// DisplayList is an immutable list of drawing operations.
// It can be replayed onto any Canvas implementation, or inspected
// directly (tests assert on recorded operations rather than pixels).
type DisplayList struct {
	ops  []DisplayOp
	size Size
}

// Paint replays the recorded operations onto the provided canvas.
func (d *DisplayList) Paint(canvas Canvas) {
	for _, op := range d.ops {
		op.execute(canvas)
	}
}

// Ops returns the recorded operations. The slice must not be modified.
func (d *DisplayList) Ops() []DisplayOp {
	return d.ops
}

// Size returns the size recorded when the display list was created.
func (d *DisplayList) Size() Size {
	return d.size
}

// PictureRecorder records drawing commands into a display list.
type PictureRecorder struct {
	ops       []DisplayOp
	recording bool
	size      Size
}

// BeginRecording starts a new recording session.
func (r *PictureRecorder) BeginRecording(size Size) Canvas {
	r.ops = r.ops[:0]
	r.recording = true
	r.size = size
	return &recordingCanvas{recorder: r, size: size}
}

// EndRecording finishes the recording and returns a display list.
func (r *PictureRecorder) EndRecording() *DisplayList {
	if !r.recording {
		return &DisplayList{size: r.size}
	}
	r.recording = false
	ops := make([]DisplayOp, len(r.ops))
	copy(ops, r.ops)
	return &DisplayList{
		ops:  ops,
		size: r.size,
	}
}

func (r *PictureRecorder) append(op DisplayOp) {
	if !r.recording {
		return
	}
	r.ops = append(r.ops, op)
}

// DisplayOp is a single recorded canvas operation.
type DisplayOp interface {
	execute(canvas Canvas)
}

type recordingCanvas struct {
	recorder *PictureRecorder
	size     Size
}

func (c *recordingCanvas) Save() {
	c.recorder.append(OpSave{})
}

func (c *recordingCanvas) Restore() {
	c.recorder.append(OpRestore{})
}

func (c *recordingCanvas) Translate(dx, dy float64) {
	c.recorder.append(OpTranslate{Dx: dx, Dy: dy})
}

func (c *recordingCanvas) Scale(sx, sy float64) {
	c.recorder.append(OpScale{Sx: sx, Sy: sy})
}

func (c *recordingCanvas) ClipRect(rect Rect) {
	c.recorder.append(OpClipRect{Rect: rect})
}

func (c *recordingCanvas) ClipRRect(rrect RRect) {
	c.recorder.append(OpClipRRect{RRect: rrect})
}

func (c *recordingCanvas) DrawRect(rect Rect, paint Paint) {
	c.recorder.append(OpDrawRect{Rect: rect, Paint: paint})
}

func (c *recordingCanvas) DrawRRect(rrect RRect, paint Paint) {
	c.recorder.append(OpDrawRRect{RRect: rrect, Paint: paint})
}

func (c *recordingCanvas) DrawDRRect(outer, inner RRect, paint Paint) {
	c.recorder.append(OpDrawDRRect{Outer: outer, Inner: inner, Paint: paint})
}

func (c *recordingCanvas) DrawCircle(center Offset, radius float64, paint Paint) {
	c.recorder.append(OpDrawCircle{Center: center, Radius: radius, Paint: paint})
}

func (c *recordingCanvas) DrawLine(start, end Offset, paint Paint) {
	c.recorder.append(OpDrawLine{Start: start, End: end, Paint: paint})
}

func (c *recordingCanvas) DrawPath(path *Path, paint Paint) {
	c.recorder.append(OpDrawPath{Path: path, Paint: paint})
}

func (c *recordingCanvas) Size() Size {
	return c.size
}

// OpSave records a Canvas.Save call.
type OpSave struct{}

func (OpSave) execute(canvas Canvas) {
	canvas.Save()
}

// OpRestore records a Canvas.Restore call.
type OpRestore struct{}

func (OpRestore) execute(canvas Canvas) {
	canvas.Restore()
}

// OpTranslate records a Canvas.Translate call.
type OpTranslate struct {
	Dx, Dy float64
}

func (op OpTranslate) execute(canvas Canvas) {
	canvas.Translate(op.Dx, op.Dy)
}

// OpScale records a Canvas.Scale call.
type OpScale struct {
	Sx, Sy float64
}

func (op OpScale) execute(canvas Canvas) {
	canvas.Scale(op.Sx, op.Sy)
}

// OpClipRect records a Canvas.ClipRect call.
type OpClipRect struct {
	Rect Rect
}

func (op OpClipRect) execute(canvas Canvas) {
	canvas.ClipRect(op.Rect)
}

// OpClipRRect records a Canvas.ClipRRect call.
type OpClipRRect struct {
	RRect RRect
}

func (op OpClipRRect) execute(canvas Canvas) {
	canvas.ClipRRect(op.RRect)
}

// OpDrawRect records a Canvas.DrawRect call.
type OpDrawRect struct {
	Rect  Rect
	Paint Paint
}

func (op OpDrawRect) execute(canvas Canvas) {
	canvas.DrawRect(op.Rect, op.Paint)
}

// OpDrawRRect records a Canvas.DrawRRect call.
type OpDrawRRect struct {
	RRect RRect
	Paint Paint
}

func (op OpDrawRRect) execute(canvas Canvas) {
	canvas.DrawRRect(op.RRect, op.Paint)
}

// OpDrawDRRect records a Canvas.DrawDRRect call.
type OpDrawDRRect struct {
	Outer RRect
	Inner RRect
	Paint Paint
}

func (op OpDrawDRRect) execute(canvas Canvas) {
	canvas.DrawDRRect(op.Outer, op.Inner, op.Paint)
}

// OpDrawCircle records a Canvas.DrawCircle call.
type OpDrawCircle struct {
	Center Offset
	Radius float64
	Paint  Paint
}

func (op OpDrawCircle) execute(canvas Canvas) {
	canvas.DrawCircle(op.Center, op.Radius, op.Paint)
}

// OpDrawLine records a Canvas.DrawLine call.
type OpDrawLine struct {
	Start, End Offset
	Paint      Paint
}

func (op OpDrawLine) execute(canvas Canvas) {
	canvas.DrawLine(op.Start, op.End, op.Paint)
}

// OpDrawPath records a Canvas.DrawPath call.
type OpDrawPath struct {
	Path  *Path
	Paint Paint
}

func (op OpDrawPath) execute(canvas Canvas) {
	canvas.DrawPath(op.Path, op.Paint)
}
