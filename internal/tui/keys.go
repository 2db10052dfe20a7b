package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit     key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	Mode     key.Binding
	Search   key.Binding
	Graph    key.Binding
	Policy   key.Binding
	PageSize key.Binding
	Import   key.Binding
	Pages    key.Binding
	Refresh  key.Binding
	Reset    key.Binding
	UpDown   key.Binding
	Enter    key.Binding
	Close    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		NextTab:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Mode:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mode")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search ids")),
		Graph:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "graph")),
		Policy:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "policy")),
		PageSize: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "page size")),
		Import:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "import")),
		Pages:    key.NewBinding(key.WithKeys("h", "l", "left", "right"), key.WithHelp("h/l", "page")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Reset:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "reset content")),
		UpDown:   key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("j/k", "navigate")),
		Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Mode, k.Search, k.Pages, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.Mode, k.Search, k.Pages},
		{k.Graph, k.Policy, k.PageSize, k.Import, k.Refresh, k.Quit},
	}
}

type modalKeyMap struct {
	keyMap
}

func (k modalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.UpDown, k.Enter, k.Close, k.Quit}
}

func (k modalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.UpDown, k.Enter, k.Close, k.Quit}}
}
