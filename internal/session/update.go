package session

import (
	"github.com/philipparndt/gomeasure/internal/measurement"
)

// Action names the session operation that produced an Update
type Action int

const (
	ActionNone Action = iota // Event ignored, nothing changed
	ActionStart
	ActionCancel
	ActionStop
	ActionClear
	ActionTool
	ActionPreset
	ActionAppend
	ActionClose
	ActionRemove
	ActionMove
	ActionResync
	ActionPlace
	ActionBegin
	ActionDrag
	ActionComplete
	ActionRadius
	ActionCenter
)

var actionNames = [...]string{
	ActionNone:     "none",
	ActionStart:    "start",
	ActionCancel:   "cancel",
	ActionStop:     "stop",
	ActionClear:    "clear",
	ActionTool:     "tool",
	ActionPreset:   "preset",
	ActionAppend:   "append",
	ActionClose:    "close",
	ActionRemove:   "remove",
	ActionMove:     "move",
	ActionResync:   "resync",
	ActionPlace:    "place",
	ActionBegin:    "begin",
	ActionDrag:     "drag",
	ActionComplete: "complete",
	ActionRadius:   "radius",
	ActionCenter:   "center",
}

// String returns the action name
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// Update is the message emitted after every session operation. It carries the complete
// state the presentation layer needs, so callers never read session internals.
type Update struct {
	Action      Action
	Mode        Mode
	Tool        Tool
	Shape       measurement.Shape
	Measurement measurement.Measurement
	Controls    Controls
	Render      Render

	changed bool
}

// Changed reports whether the operation modified the session
func (u Update) Changed() bool {
	return u.changed
}
