package editor

import (
	"strings"

	"github.com/seatmap/seatmap-editor/backend-go/internal/selection"
)

// Key is a host keyboard event reduced to what the editor binds. Name uses
// DOM key names ("z", "Delete", "ArrowLeft", "Escape").
type Key struct {
	Name  string `json:"key"`
	Shift bool   `json:"shift"`
	Ctrl  bool   `json:"ctrl"`
}

// Command names what a key press did, so the host can update its chrome or
// open a dialog.
type Command string

const (
	CommandNone           Command = ""
	CommandUndo           Command = "undo"
	CommandRedo           Command = "redo"
	CommandDelete         Command = "delete"
	CommandDeselect       Command = "deselect"
	CommandSelectAll      Command = "selectAll"
	CommandDuplicate      Command = "duplicate"
	CommandNudge          Command = "nudge"
	CommandTool           Command = "tool"
	CommandOpenGrid       Command = "openGrid"
	CommandOpenCategories Command = "openCategories"
)

var arrowDirections = map[string]selection.Direction{
	"ArrowLeft":  selection.Left,
	"ArrowRight": selection.Right,
	"ArrowUp":    selection.Up,
	"ArrowDown":  selection.Down,
}

var toolKeys = map[string]Tool{
	"s": ToolSelect,
	"a": ToolAdd,
	"p": ToolPan,
	"g": ToolGrid,
	"e": ToolElement,
}

// HandleKey runs the editor shortcut bound to k.
func (e *Editor) HandleKey(k Key) (Command, error) {
	name := k.Name
	lower := strings.ToLower(name)

	if k.Ctrl {
		switch lower {
		case "z":
			if k.Shift {
				e.Redo()
				return CommandRedo, nil
			}
			e.Undo()
			return CommandUndo, nil
		case "y":
			e.Redo()
			return CommandRedo, nil
		case "a":
			e.SelectAll()
			return CommandSelectAll, nil
		case "d":
			if _, err := e.DuplicateSelection(); err != nil {
				return CommandDuplicate, err
			}
			return CommandDuplicate, nil
		}
		return CommandNone, nil
	}

	switch name {
	case "Delete", "Backspace":
		return CommandDelete, e.DeleteSelection()
	case "Escape":
		e.ClearSelection()
		e.SetTool(ToolSelect)
		return CommandDeselect, nil
	}

	if dir, ok := arrowDirections[name]; ok {
		if e.selection.Len() == 0 {
			return CommandNone, nil
		}
		e.NudgeSelection(dir, k.Shift)
		return CommandNudge, nil
	}

	if lower == "c" {
		return CommandOpenCategories, nil
	}
	if t, ok := toolKeys[lower]; ok {
		e.SetTool(t)
		if t == ToolGrid {
			return CommandOpenGrid, nil
		}
		return CommandTool, nil
	}
	return CommandNone, nil
}
