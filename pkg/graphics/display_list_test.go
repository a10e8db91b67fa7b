package graphics

import "testing"

func TestPictureRecorderCapturesOps(t *testing.T) {
	var recorder PictureRecorder
	canvas := recorder.BeginRecording(Size{Width: 100, Height: 50})

	canvas.Save()
	canvas.Translate(10, 20)
	canvas.DrawRect(RectFromLTWH(0, 0, 30, 30), DefaultPaint())
	canvas.Restore()

	list := recorder.EndRecording()
	ops := list.Ops()
	if len(ops) != 4 {
		t.Fatalf("recorded %d ops, want 4", len(ops))
	}
	if _, ok := ops[0].(OpSave); !ok {
		t.Fatalf("op 0 = %T, want OpSave", ops[0])
	}
	translate, ok := ops[1].(OpTranslate)
	if !ok || translate.Dx != 10 || translate.Dy != 20 {
		t.Fatalf("op 1 = %#v, want translate by (10, 20)", ops[1])
	}
	if _, ok := ops[2].(OpDrawRect); !ok {
		t.Fatalf("op 2 = %T, want OpDrawRect", ops[2])
	}
	if _, ok := ops[3].(OpRestore); !ok {
		t.Fatalf("op 3 = %T, want OpRestore", ops[3])
	}
	if list.Size() != (Size{Width: 100, Height: 50}) {
		t.Fatalf("list size = %+v", list.Size())
	}
}

func TestDisplayListReplay(t *testing.T) {
	var recorder PictureRecorder
	canvas := recorder.BeginRecording(Size{Width: 50, Height: 50})
	canvas.DrawCircle(Offset{X: 25, Y: 25}, 10, DefaultPaint())
	canvas.DrawLine(Offset{X: 0, Y: 0}, Offset{X: 50, Y: 50}, DefaultPaint())
	list := recorder.EndRecording()

	var replay PictureRecorder
	target := replay.BeginRecording(list.Size())
	list.Paint(target)
	replayed := replay.EndRecording().Ops()

	if len(replayed) != len(list.Ops()) {
		t.Fatalf("replayed %d ops, want %d", len(replayed), len(list.Ops()))
	}
	circle, ok := replayed[0].(OpDrawCircle)
	if !ok || circle.Radius != 10 {
		t.Fatalf("replayed op 0 = %#v", replayed[0])
	}
}

func TestRecorderIgnoresOpsAfterEnd(t *testing.T) {
	var recorder PictureRecorder
	canvas := recorder.BeginRecording(Size{Width: 10, Height: 10})
	canvas.DrawRect(RectFromLTWH(0, 0, 5, 5), DefaultPaint())
	recorder.EndRecording()

	canvas.DrawRect(RectFromLTWH(0, 0, 5, 5), DefaultPaint())
	if got := recorder.EndRecording().Ops(); len(got) != 0 {
		t.Fatalf("ops after EndRecording should be dropped, got %d", len(got))
	}
}
