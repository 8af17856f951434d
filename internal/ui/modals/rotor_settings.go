package modals

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/enigmavision/internal/keys"
)

// slotNames label the three rotor columns, left to right
var slotNames = [3]string{"Left", "Middle", "Right"}

// RotorSetting is the editable state of one rotor: its type, the position
// it starts from and whether it is locked.
type RotorSetting struct {
	Type     string
	Position rune
	Locked   bool
}

// RotorSettingsState edits all three rotors in one huh form, one column per
// rotor. Nothing is applied until the app reads Settings on Enter.
type RotorSettingsState struct {
	original [3]RotorSetting

	// huh binds via pointer to these
	types     [3]string
	positions [3]string
	locked    [3]bool

	form  *huh.Form
	width int
}

func (*RotorSettingsState) modalState() {}

func (s *RotorSettingsState) PreferredWidth() int { return ModalWidthWide }

// SetSize splits the space the modal host gives it between the columns.
func (s *RotorSettingsState) SetSize(width, height int) {
	if width <= 0 || width == s.width {
		return
	}
	s.width = width
	s.form.WithWidth(columnWidth(width))
}

// columnWidth is the field width of one rotor column when width is shared by
// all three, leaving room for the focus rail and its padding.
func columnWidth(width int) int {
	return max(width/len(slotNames)-2, 1)
}

func (s *RotorSettingsState) Title() string { return "Rotor Settings" }

func (s *RotorSettingsState) Help() string {
	return fmt.Sprintf("%s/%s: field  ←/→: change  Enter: apply  Esc: cancel", keys.Tab, keys.ShiftTab)
}

func (s *RotorSettingsState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	note := lipgloss.NewStyle().Foreground(ColorTextMuted).
		Render("Changing a rotor clears the tape and restarts from the new positions.")
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), "", note, help)
}

func (s *RotorSettingsState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// Settings returns the rotors as currently edited
func (s *RotorSettingsState) Settings() [3]RotorSetting {
	var out [3]RotorSetting
	for i := range out {
		out[i] = RotorSetting{Type: s.types[i], Locked: s.locked[i]}
		if p := []rune(s.positions[i]); len(p) > 0 {
			out[i].Position = p[0]
		}
	}
	return out
}

// Changed reports whether any rotor differs from what the modal opened with
func (s *RotorSettingsState) Changed() bool {
	return s.Settings() != s.original
}

// NewRotorSettingsState builds the form from the current rotors. typeNames
// lists the selectable rotor types and alphabet the selectable positions.
func NewRotorSettingsState(current [3]RotorSetting, typeNames []string, alphabet string) *RotorSettingsState {
	s := &RotorSettingsState{original: current, width: ModalWidthWide - 6}

	typeOptions := make([]huh.Option[string], len(typeNames))
	for i, name := range typeNames {
		typeOptions[i] = huh.NewOption(name, name)
	}

	letters := []rune(alphabet)
	positionOptions := make([]huh.Option[string], len(letters))
	for i, r := range letters {
		positionOptions[i] = huh.NewOption(string(r), string(r))
	}

	lockOptions := []huh.Option[bool]{
		huh.NewOption("free", false),
		huh.NewOption("locked", true),
	}

	groups := make([]*huh.Group, len(current))
	for i, rs := range current {
		s.types[i] = rs.Type
		s.positions[i] = string(rs.Position)
		s.locked[i] = rs.Locked

		groups[i] = huh.NewGroup(
			huh.NewSelect[string]().
				Title(slotNames[i] + " rotor").
				Options(typeOptions...).
				Inline(true).
				Value(&s.types[i]),
			huh.NewSelect[string]().
				Title(slotNames[i] + " position").
				Options(positionOptions...).
				Inline(true).
				Value(&s.positions[i]),
			huh.NewSelect[bool]().
				Title(slotNames[i] + " stepping").
				Options(lockOptions...).
				Inline(true).
				Value(&s.locked[i]),
		)
	}

	s.form = huh.NewForm(groups...).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(columnWidth(s.width)).
		WithLayout(huh.LayoutColumns(len(groups)))

	initHuhForm(s.form)
	return s
}
