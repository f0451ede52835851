package playground

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a session script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// sessionScript is the top-level JSON structure for a session script.
type sessionScript struct {
	Steps []scriptStep `json:"steps"`
}

var knownActions = map[string]bool{
	"press": true, "move": true, "release": true, "click": true,
	"drag": true, "wait": true, "screenshot": true, "quit": true,
}

// Script is an InputSource that replays a JSON session script one step at a
// time. A step is only started once the events of the previous step have all
// been delivered. When the last step has run, Script emits a quit event.
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	queue     Queue
	done      bool

	// OnScreenshot is called for every "screenshot" step, on the tick the
	// step runs. Nil ignores screenshot steps.
	OnScreenshot func(label string)
}

// LoadScript parses a JSON session script.
//
//	{"steps": [
//		{"action": "drag", "fromX": 560, "fromY": 400, "toX": 300, "toY": 100, "frames": 20},
//		{"action": "wait", "frames": 90},
//		{"action": "screenshot", "label": "landed"}
//	]}
func LoadScript(jsonData []byte) (*Script, error) {
	var script sessionScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: script.Steps}, nil
}

// Done reports whether every step has run and its events were delivered.
func (r *Script) Done() bool {
	return r.done
}

// Drain advances the script by one tick and returns that tick's events.
func (r *Script) Drain() []Event {
	r.step()
	if r.queue.Len() == 0 && r.done {
		return []Event{{Type: EventQuit}}
	}
	return r.queue.Drain()
}

// Pointer returns the position of the last delivered pointer event.
func (r *Script) Pointer() Vec2 {
	return r.queue.Pointer()
}

// step starts the next script action when the previous one has finished.
func (r *Script) step() {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if r.queue.Len() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		r.queue.InjectPress(st.X, st.Y)
	case "move":
		r.queue.InjectMove(st.X, st.Y)
	case "release":
		r.queue.InjectRelease()
	case "click":
		r.queue.InjectClick(st.X, st.Y)
	case "drag":
		r.queue.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	case "screenshot":
		if r.OnScreenshot != nil {
			r.OnScreenshot(st.Label)
		}
	case "quit":
		r.queue.InjectQuit()
		r.cursor = len(r.steps)
	}
}
