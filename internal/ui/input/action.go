// Package input defines the pane actions a user can trigger and the key bindings for them.
package input

import (
	"fmt"
	"strings"

	"github.com/bnema/tilemux/internal/application/usecase"
	"github.com/bnema/tilemux/internal/domain/entity"
)

// Action represents what happens when a shortcut is triggered.
type Action string

// Predefined pane actions. The names match the keybindings section of the config.
const (
	ActionSplitLeft   Action = "split-left"
	ActionSplitRight  Action = "split-right"
	ActionSplitTop    Action = "split-top"
	ActionSplitBottom Action = "split-bottom"

	ActionNavLeft     Action = "pane-nav-left"
	ActionNavRight    Action = "pane-nav-right"
	ActionNavUp       Action = "pane-nav-up"
	ActionNavDown     Action = "pane-nav-down"
	ActionNavPrevious Action = "pane-nav-previous"
	ActionNavNext     Action = "pane-nav-next"
	ActionNav1        Action = "pane-nav-1"
	ActionNav2        Action = "pane-nav-2"
	ActionNav3        Action = "pane-nav-3"
	ActionNav4        Action = "pane-nav-4"
	ActionNav5        Action = "pane-nav-5"
	ActionNav6        Action = "pane-nav-6"
	ActionNav7        Action = "pane-nav-7"
	ActionNav8        Action = "pane-nav-8"
	ActionNav9        Action = "pane-nav-9"

	ActionMaximize  Action = "pane-maximize"
	ActionClosePane Action = "close-pane"

	ActionIncreaseVertical   Action = "pane-increase-vertical"
	ActionDecreaseVertical   Action = "pane-decrease-vertical"
	ActionIncreaseHorizontal Action = "pane-increase-horizontal"
	ActionDecreaseHorizontal Action = "pane-decrease-horizontal"
)

var allActions = []Action{
	ActionSplitLeft, ActionSplitRight, ActionSplitTop, ActionSplitBottom,
	ActionNavLeft, ActionNavRight, ActionNavUp, ActionNavDown,
	ActionNavPrevious, ActionNavNext,
	ActionNav1, ActionNav2, ActionNav3, ActionNav4, ActionNav5,
	ActionNav6, ActionNav7, ActionNav8, ActionNav9,
	ActionMaximize, ActionClosePane,
	ActionIncreaseVertical, ActionDecreaseVertical,
	ActionIncreaseHorizontal, ActionDecreaseHorizontal,
}

var descriptions = map[Action]string{
	ActionSplitLeft:          "split left",
	ActionSplitRight:         "split right",
	ActionSplitTop:           "split above",
	ActionSplitBottom:        "split below",
	ActionNavLeft:            "focus left",
	ActionNavRight:           "focus right",
	ActionNavUp:              "focus up",
	ActionNavDown:            "focus down",
	ActionNavPrevious:        "previous pane",
	ActionNavNext:            "next pane",
	ActionMaximize:           "toggle maximize",
	ActionClosePane:          "close pane",
	ActionIncreaseVertical:   "grow height",
	ActionDecreaseVertical:   "shrink height",
	ActionIncreaseHorizontal: "grow width",
	ActionDecreaseHorizontal: "shrink width",
}

// AllActions returns every action in display order.
func AllActions() []Action {
	out := make([]Action, len(allActions))
	copy(out, allActions)
	return out
}

// ParseAction maps a name to its Action, rejecting unknown names.
func ParseAction(name string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range allActions {
		if a == known {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown action %q", name)
}

// Description returns a short human readable label.
func (a Action) Description() string {
	if d, ok := descriptions[a]; ok {
		return d
	}
	if i, ok := a.PaneIndex(); ok {
		return fmt.Sprintf("focus pane %d", i+1)
	}
	return string(a)
}

// SplitDirection returns the side the new pane goes to for split actions.
func (a Action) SplitDirection() (entity.Direction, bool) {
	switch a {
	case ActionSplitLeft:
		return entity.DirectionLeft, true
	case ActionSplitRight:
		return entity.DirectionRight, true
	case ActionSplitTop:
		return entity.DirectionTop, true
	case ActionSplitBottom:
		return entity.DirectionBottom, true
	default:
		return "", false
	}
}

// NavDirection returns the direction for directional navigation actions.
func (a Action) NavDirection() (entity.Direction, bool) {
	switch a {
	case ActionNavLeft:
		return entity.DirectionLeft, true
	case ActionNavRight:
		return entity.DirectionRight, true
	case ActionNavUp:
		return entity.DirectionTop, true
	case ActionNavDown:
		return entity.DirectionBottom, true
	default:
		return "", false
	}
}

// LinearDelta returns the step for previous/next navigation.
func (a Action) LinearDelta() (int, bool) {
	switch a {
	case ActionNavPrevious:
		return -1, true
	case ActionNavNext:
		return 1, true
	default:
		return 0, false
	}
}

// PaneIndex returns the zero based index targeted by pane-nav-N actions.
func (a Action) PaneIndex() (int, bool) {
	s, ok := strings.CutPrefix(string(a), "pane-nav-")
	if !ok || len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return 0, false
	}
	return int(s[0] - '1'), true
}

// ResizeDirection returns the engine resize direction for resize actions.
func (a Action) ResizeDirection() (usecase.ResizeDirection, bool) {
	switch a {
	case ActionIncreaseVertical:
		return usecase.ResizeGrowVertical, true
	case ActionDecreaseVertical:
		return usecase.ResizeShrinkVertical, true
	case ActionIncreaseHorizontal:
		return usecase.ResizeGrowHorizontal, true
	case ActionDecreaseHorizontal:
		return usecase.ResizeShrinkHorizontal, true
	default:
		return "", false
	}
}
