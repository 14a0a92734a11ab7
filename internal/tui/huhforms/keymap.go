// Package huhforms builds the huh forms used by the project and task
// pages, themed from the configured color scheme.
package huhforms

import (
	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"
)

// NewKeyMap returns the form keymap with shift+enter added as a newline
// key in text areas, alongside the default alt+enter and ctrl+j.
func NewKeyMap() *huh.KeyMap {
	keymap := huh.NewDefaultKeyMap()

	keymap.Text.NewLine = key.NewBinding(
		key.WithKeys("shift+enter", "alt+enter", "ctrl+j"),
		key.WithHelp("shift+enter / alt+enter / ctrl+j", "new line"),
	)

	return keymap
}
