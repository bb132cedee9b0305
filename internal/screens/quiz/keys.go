package quiz

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Submit  key.Binding
	Hint    key.Binding
	Skip    key.Binding
	Add     key.Binding
	History key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Submit")),
		Hint:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "Hint")),
		Skip:    key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("Ctrl+N", "Skip")),
		Add:     key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("Ctrl+O", "Add card")),
		History: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("Ctrl+R", "History")),
	}
}
