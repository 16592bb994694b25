//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	"github.com/seatmap/seatmap-editor/backend-go/internal/document"
	"github.com/seatmap/seatmap-editor/backend-go/internal/editor"
	"github.com/seatmap/seatmap-editor/backend-go/internal/geometry"
	"github.com/seatmap/seatmap-editor/backend-go/internal/render"
	"github.com/seatmap/seatmap-editor/backend-go/internal/selection"
	"github.com/seatmap/seatmap-editor/backend-go/internal/transform"
)

const historyLimit = 50

var (
	ed       *editor.Editor
	canvas   = geometry.Size{Width: 800, Height: 600}
	viewport = geometry.NewViewport()
	mode     = render.ModeEditor
)

func main() {
	ed = editor.New(historyLimit)
	ed.NewMap("")

	seatmapEditor := js.Global().Get("Object").New()

	// --- Commands (frontend → backend) ---
	seatmapEditor.Set("newMap", js.FuncOf(newMap))
	seatmapEditor.Set("loadDocument", js.FuncOf(loadDocument))
	seatmapEditor.Set("setCanvasSize", js.FuncOf(setCanvasSize))
	seatmapEditor.Set("setViewerMode", js.FuncOf(setViewerMode))
	seatmapEditor.Set("setTool", js.FuncOf(setTool))
	seatmapEditor.Set("pointerDown", js.FuncOf(pointerDown))
	seatmapEditor.Set("lasso", js.FuncOf(lasso))
	seatmapEditor.Set("wheel", js.FuncOf(wheel))
	seatmapEditor.Set("pan", js.FuncOf(pan))
	seatmapEditor.Set("zoomIn", js.FuncOf(zoomIn))
	seatmapEditor.Set("zoomOut", js.FuncOf(zoomOut))
	seatmapEditor.Set("zoomToFit", js.FuncOf(zoomToFit))
	seatmapEditor.Set("keyDown", js.FuncOf(keyDown))
	seatmapEditor.Set("setSelection", js.FuncOf(setSelection))
	seatmapEditor.Set("updateSelection", js.FuncOf(updateSelection))
	seatmapEditor.Set("align", js.FuncOf(align))
	seatmapEditor.Set("center", js.FuncOf(center))
	seatmapEditor.Set("distribute", js.FuncOf(distribute))
	seatmapEditor.Set("generateGrid", js.FuncOf(generateGrid))
	seatmapEditor.Set("undo", js.FuncOf(undo))
	seatmapEditor.Set("redo", js.FuncOf(redo))
	seatmapEditor.Set("markSaved", js.FuncOf(markSaved))

	// --- Queries (frontend ← backend) ---
	seatmapEditor.Set("render", js.FuncOf(renderMap))
	seatmapEditor.Set("hitTest", js.FuncOf(hitTest))
	seatmapEditor.Set("getSelectionBounds", js.FuncOf(getSelectionBounds))
	seatmapEditor.Set("getSelection", js.FuncOf(getSelection))
	seatmapEditor.Set("getDocument", js.FuncOf(getDocument))
	seatmapEditor.Set("exportDocument", js.FuncOf(exportDocument))
	seatmapEditor.Set("getState", js.FuncOf(getState))
	seatmapEditor.Set("navigate", js.FuncOf(navigate))

	js.Global().Set("seatmapEditor", seatmapEditor)
	js.Global().Set("seatmapWasmReady", js.ValueOf(true))

	select {}
}

func ok() interface{} {
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func fail(msg string) interface{} {
	return js.ValueOf(map[string]interface{}{"error": msg})
}

func toJSON(v interface{}) interface{} {
	data, err := json.Marshal(v)
	if err != nil {
		return js.ValueOf("null")
	}
	return js.ValueOf(string(data))
}

// pointer converts a screen position to a normalized map point.
func pointer(x, y js.Value) geometry.Point {
	p := viewport.ScreenToCanvas(geometry.Point{X: x.Float(), Y: y.Float()})
	return geometry.PointToNormalized(p, canvas)
}

func stringArray(v js.Value) []string {
	if v.Type() != js.TypeObject {
		return nil
	}
	ids := make([]string, v.Length())
	for i := range ids {
		ids[i] = v.Index(i).String()
	}
	return ids
}

// --- Command Handlers ---

func newMap(this js.Value, args []js.Value) interface{} {
	name := ""
	if len(args) > 0 && args[0].Type() == js.TypeString {
		name = args[0].String()
	}
	ed.NewMap(name)
	viewport = geometry.NewViewport()
	return ok()
}

func loadDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return fail("missing document JSON")
	}
	if err := ed.Import([]byte(args[0].String())); err != nil {
		return fail(err.Error())
	}
	viewport = geometry.NewViewport()
	return ok()
}

func setCanvasSize(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	canvas = geometry.Size{Width: args[0].Float(), Height: args[1].Float()}
	return nil
}

func setViewerMode(this js.Value, args []js.Value) interface{} {
	mode = render.ModeEditor
	if len(args) > 0 && args[0].Truthy() {
		mode = render.ModeViewer
	}
	return nil
}

func setTool(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	ed.SetTool(editor.Tool(args[0].String()))
	return nil
}

func pointerDown(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	shift := len(args) > 2 && args[2].Truthy()
	if err := ed.ClickAt(pointer(args[0], args[1]), shift); err != nil {
		return fail(err.Error())
	}
	return ok()
}

func lasso(this js.Value, args []js.Value) interface{} {
	if len(args) < 4 {
		return toJSON([]string{})
	}
	additive := len(args) > 4 && args[4].Truthy()
	hits := ed.Lasso(pointer(args[0], args[1]), pointer(args[2], args[3]), additive)
	if hits == nil {
		hits = []string{}
	}
	return toJSON(hits)
}

func wheel(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return nil
	}
	at := geometry.Point{X: args[0].Float(), Y: args[1].Float()}
	viewport = viewport.ZoomAt(at, args[2].Float())
	return nil
}

func pan(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	viewport.Position.X += args[0].Float()
	viewport.Position.Y += args[1].Float()
	return nil
}

func zoomIn(this js.Value, args []js.Value) interface{} {
	viewport = viewport.ZoomIn()
	return nil
}

func zoomOut(this js.Value, args []js.Value) interface{} {
	viewport = viewport.ZoomOut()
	return nil
}

func zoomToFit(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	container := geometry.Size{Width: args[0].Float(), Height: args[1].Float()}
	if vp, fitted := geometry.ZoomToFit(canvas, container); fitted {
		viewport = vp
	}
	return nil
}

func keyDown(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf("")
	}
	var k editor.Key
	if err := json.Unmarshal([]byte(args[0].String()), &k); err != nil {
		return js.ValueOf("")
	}
	cmd, err := ed.HandleKey(k)
	if err != nil {
		return fail(err.Error())
	}
	return js.ValueOf(string(cmd))
}

func setSelection(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		ed.ClearSelection()
		return nil
	}
	ed.Select(stringArray(args[0])...)
	return nil
}

func updateSelection(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return fail("missing patch JSON")
	}
	var patch document.SeatPatch
	if err := json.Unmarshal([]byte(args[0].String()), &patch); err != nil {
		return fail(err.Error())
	}
	if err := ed.UpdateSeats(ed.Selection(), patch); err != nil {
		return fail(err.Error())
	}
	return ok()
}

func align(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(false)
	}
	return js.ValueOf(ed.AlignSelection(transform.Edge(args[0].String())))
}

func center(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(false)
	}
	return js.ValueOf(ed.CenterSelection(transform.Axis(args[0].String())))
}

func distribute(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(false)
	}
	return js.ValueOf(ed.DistributeSelection(transform.Axis(args[0].String())))
}

func generateGrid(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return fail("missing grid JSON")
	}
	var req editor.GridRequest
	if err := json.Unmarshal([]byte(args[0].String()), &req); err != nil {
		return fail(err.Error())
	}
	ids, err := ed.GenerateGrid(req)
	if err != nil {
		return fail(err.Error())
	}
	return js.ValueOf(map[string]interface{}{"ok": true, "count": len(ids)})
}

func undo(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(ed.Undo())
}

func redo(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(ed.Redo())
}

func markSaved(this js.Value, args []js.Value) interface{} {
	ed.MarkSaved()
	return nil
}

// --- Query Handlers ---

func renderMap(this js.Value, args []js.Value) interface{} {
	vp := viewport
	cmds := render.Compile(ed.Document(), render.Options{
		Canvas:   canvas,
		Mode:     mode,
		Selected: ed.Selection(),
		Viewport: &vp,
	})
	out, _ := render.ToJSON(cmds)
	return js.ValueOf(out)
}

func hitTest(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.ValueOf("")
	}
	p := viewport.ScreenToCanvas(geometry.Point{X: args[0].Float(), Y: args[1].Float()})
	id, _ := render.HitTest(ed.Document(), canvas, p)
	return js.ValueOf(id)
}

func getSelectionBounds(this js.Value, args []js.Value) interface{} {
	r, _ := render.SelectionBounds(ed.Document(), canvas, ed.Selection())
	return toJSON(r)
}

func getSelection(this js.Value, args []js.Value) interface{} {
	sel := ed.Selection()
	if sel == nil {
		sel = []string{}
	}
	return toJSON(sel)
}

func getDocument(this js.Value, args []js.Value) interface{} {
	return toJSON(ed.Document())
}

func exportDocument(this js.Value, args []js.Value) interface{} {
	data, err := ed.Export()
	if err != nil {
		return fail(err.Error())
	}
	return js.ValueOf(string(data))
}

func getState(this js.Value, args []js.Value) interface{} {
	return toJSON(map[string]interface{}{
		"tool":     ed.Tool(),
		"dirty":    ed.Dirty(),
		"canUndo":  ed.CanUndo(),
		"canRedo":  ed.CanRedo(),
		"viewport": viewport,
		"selected": len(ed.Selection()),
	})
}

func navigate(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.ValueOf("")
	}
	next, found := ed.Navigate(args[0].String(), selection.Direction(args[1].String()))
	if !found {
		return js.ValueOf("")
	}
	return js.ValueOf(next)
}
