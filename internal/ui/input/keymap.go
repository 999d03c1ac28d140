package input

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Keymap binds actions to keys.
type Keymap struct {
	bindings map[Action]key.Binding
}

// NewKeymap builds a keymap from the config's action -> keys section.
// Unknown action names are rejected; actions missing from the map stay unbound.
func NewKeymap(cfg map[string][]string) (*Keymap, error) {
	km := &Keymap{bindings: make(map[Action]key.Binding, len(allActions))}
	for name, keys := range cfg {
		action, err := ParseAction(name)
		if err != nil {
			return nil, fmt.Errorf("keybindings: %w", err)
		}
		if len(keys) == 0 {
			continue
		}
		km.bindings[action] = key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), action.Description()),
		)
	}
	return km, nil
}

// Lookup returns the action bound to msg.
func (km *Keymap) Lookup(msg tea.KeyMsg) (Action, bool) {
	for _, a := range allActions {
		b, ok := km.bindings[a]
		if ok && key.Matches(msg, b) {
			return a, true
		}
	}
	return "", false
}

// Binding returns the binding for action.
func (km *Keymap) Binding(a Action) (key.Binding, bool) {
	b, ok := km.bindings[a]
	return b, ok
}

// Keys returns the keys bound to action, nil when unbound.
func (km *Keymap) Keys(a Action) []string {
	if b, ok := km.bindings[a]; ok {
		return b.Keys()
	}
	return nil
}

// ShortHelp returns the bindings shown in the one line help view.
func (km *Keymap) ShortHelp() []key.Binding {
	return km.collect(ActionSplitRight, ActionSplitBottom, ActionNavNext, ActionMaximize, ActionClosePane)
}

// FullHelp returns every bound action grouped by kind.
func (km *Keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		km.collect(ActionSplitLeft, ActionSplitRight, ActionSplitTop, ActionSplitBottom),
		km.collect(ActionNavLeft, ActionNavRight, ActionNavUp, ActionNavDown, ActionNavPrevious, ActionNavNext),
		km.collect(ActionMaximize, ActionClosePane),
		km.collect(ActionIncreaseVertical, ActionDecreaseVertical, ActionIncreaseHorizontal, ActionDecreaseHorizontal),
	}
}

func (km *Keymap) collect(actions ...Action) []key.Binding {
	out := make([]key.Binding, 0, len(actions))
	for _, a := range actions {
		if b, ok := km.bindings[a]; ok {
			out = append(out, b)
		}
	}
	return out
}
