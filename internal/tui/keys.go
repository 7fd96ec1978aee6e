package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// treeKeyMap holds the bindings active while no prompt is open.
type treeKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	MoveUp   key.Binding
	MoveDown key.Binding
	Promote  key.Binding
	Demote   key.Binding
	Expand   key.Binding
	Collapse key.Binding
	Toggle   key.Binding
	Insert   key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Copy     key.Binding
	Save     key.Binding
	SaveAs   key.Binding
	Open     key.Binding
	Help     key.Binding
	Quit     key.Binding
	QuitHint key.Binding
}

func newTreeKeyMap() treeKeyMap {
	return treeKeyMap{
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "Up")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "Down")),
		MoveUp:   key.NewBinding(key.WithKeys("K"), key.WithHelp(" K ", "Move Up")),
		MoveDown: key.NewBinding(key.WithKeys("J"), key.WithHelp(" J ", "Move Dn")),
		Promote:  key.NewBinding(key.WithKeys("H"), key.WithHelp(" H ", "Promote")),
		Demote:   key.NewBinding(key.WithKeys("L"), key.WithHelp(" L ", "Demote")),
		Expand:   key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l", "Expand")),
		Collapse: key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h", "Collapse")),
		Toggle:   key.NewBinding(key.WithKeys("tab", " ", "space"), key.WithHelp("tab", "Fold")),
		Insert:   key.NewBinding(key.WithKeys("i"), key.WithHelp(" i ", "New")),
		Edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp(" e ", "Edit")),
		Delete:   key.NewBinding(key.WithKeys("D"), key.WithHelp(" D ", "Delete")),
		Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp(" y ", "Copy")),
		Save:     key.NewBinding(key.WithKeys("S"), key.WithHelp(" S ", "Save")),
		SaveAs:   key.NewBinding(key.WithKeys("A"), key.WithHelp(" A ", "Save as")),
		Open:     key.NewBinding(key.WithKeys("O"), key.WithHelp(" O ", "Open")),
		Help:     key.NewBinding(key.WithKeys("?", "ctrl+_"), key.WithHelp(" ? ", "Help")),
		Quit:     key.NewBinding(key.WithKeys("Q"), key.WithHelp(" Q ", "Quit")),
		QuitHint: key.NewBinding(key.WithKeys("q", "ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap.
func (k treeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Insert, k.Edit, k.Save, k.Quit}
}

// FullHelp implements help.KeyMap. Each group renders as one column of two
// rows.
func (k treeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Insert, k.Edit},
		{k.Promote, k.Demote},
		{k.MoveUp, k.MoveDown},
		{k.Delete, k.Copy},
		{k.Save, k.Open},
		{k.SaveAs, k.Quit},
	}
}

// editKeyMap documents the line editor bindings. Dispatch happens in
// editorEvents; these bindings only feed the help bar.
type editKeyMap struct {
	Home, End          key.Binding
	Backspace, Delete  key.Binding
	Cancel, Done       key.Binding
	CutRight, CutLeft  key.Binding
	CutWordL, CutWordR key.Binding
	Paste, HideHelp    key.Binding
}

func newEditKeyMap() editKeyMap {
	return editKeyMap{
		Home:      key.NewBinding(key.WithKeys("ctrl+a", "home"), key.WithHelp("C-a", "Home")),
		End:       key.NewBinding(key.WithKeys("ctrl+e", "end"), key.WithHelp("C-e", "End")),
		Backspace: key.NewBinding(key.WithKeys("ctrl+h", "backspace"), key.WithHelp("C-h", "Backsp")),
		Delete:    key.NewBinding(key.WithKeys("ctrl+d", "delete"), key.WithHelp("C-d", "Delete")),
		Cancel:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("C-c", "Cancel")),
		Done:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("Ret", "Done")),
		CutRight:  key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("C-k", "CutLineR")),
		CutLeft:   key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("C-u", "CutLineL")),
		CutWordL:  key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("C-w", "CutWordL")),
		CutWordR:  key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("C-x", "CutWordR")),
		Paste:     key.NewBinding(key.WithKeys("ctrl+v", "ctrl+y"), key.WithHelp("C-v", "Paste")),
		HideHelp:  key.NewBinding(key.WithKeys("ctrl+_"), key.WithHelp("C-_", "Hide Help")),
	}
}

func (k editKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Done, k.Cancel, k.HideHelp}
}

func (k editKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Home, k.End},
		{k.Backspace, k.Delete},
		{k.Cancel, k.Done},
		{k.CutRight, k.CutLeft},
		{k.CutWordL, k.CutWordR},
		{k.Paste, k.HideHelp},
	}
}
