package components

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"

	"github.com/Rorical/RoriMap/internal/models"
	"github.com/Rorical/RoriMap/internal/utils"
	"github.com/Rorical/RoriMap/ui/styles"
)

// ImportDialogConfig is supplied by the caller. Empty text fields fall back
// to the built-in translations, except Support and Bookmarklet which are
// simply omitted.
type ImportDialogConfig struct {
	Title       string
	Body        string
	Support     string
	Bookmarklet string
	// OnConfirm receives the staged text; true closes the dialog.
	OnConfirm func(text string) bool
	Trigger   Trigger
}

// DialogKeyMap binds the keys handled while the dialog is open.
type DialogKeyMap struct {
	Cancel  key.Binding
	Confirm key.Binding
	Copy    key.Binding
}

func DefaultDialogKeyMap() DialogKeyMap {
	return DialogKeyMap{
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Confirm: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "import")),
		Copy:    key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy")),
	}
}

// CopiedMsg reports the outcome of copying the bookmarklet link.
type CopiedMsg struct {
	Err error
}

const (
	defaultDialogWidth = 64
	inputHeight        = 6
)

// ImportDialog is a modal with an open/stage/confirm/close lifecycle. It
// validates nothing; the error it shows comes from the store.
type ImportDialog struct {
	cfg   ImportDialogConfig
	store ImportErrorStore
	text  Localizer
	keys  DialogKeyMap
	input textarea.Model

	open    bool
	staged  string
	pending bool
	width   int

	// Copier writes to the system clipboard.
	Copier func(string) error
}

func NewImportDialog(cfg ImportDialogConfig, store ImportErrorStore, text Localizer) *ImportDialog {
	ta := textarea.New()
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.ShowLineNumbers = false
	ta.SetHeight(inputHeight)

	d := &ImportDialog{
		cfg:    cfg,
		store:  store,
		text:   text,
		keys:   DefaultDialogKeyMap(),
		input:  ta,
		Copier: clipboard.WriteAll,
	}
	d.SetWidth(defaultDialogWidth)
	d.Relabel()
	return d
}

func (d *ImportDialog) IsOpen() bool       { return d.open }
func (d *ImportDialog) StagedText() string { return d.staged }
func (d *ImportDialog) Trigger() Trigger   { return d.cfg.Trigger }

// ShowsBookmarklet reports whether the bookmarklet block is rendered.
func (d *ImportDialog) ShowsBookmarklet() bool { return d.cfg.Bookmarklet != "" }

// SetStagedText replaces the staged text as if the user had edited it.
func (d *ImportDialog) SetStagedText(text string) {
	d.input.SetValue(text)
	d.staged = d.input.Value()
}

// SetWidth sets the outer dialog width.
func (d *ImportDialog) SetWidth(width int) {
	if width < 30 {
		width = 30
	}
	d.width = width
	// border, padding and the input frame
	d.input.SetWidth(width - 10)
}

// Relabel refreshes locale-dependent text held by the text area.
func (d *ImportDialog) Relabel() {
	d.input.Placeholder = d.text.Translate("import.placeholder")
}

// Open shows the dialog. The staged text and any store error are kept.
func (d *ImportDialog) Open() tea.Cmd {
	d.open = true
	return d.input.Focus()
}

// Cancel clears the store error and closes the dialog.
func (d *ImportDialog) Cancel() {
	d.store.Dispatch(models.ClearImportError{})
	d.open = false
	d.input.Blur()
}

// Confirm hands the staged text to OnConfirm. On success the dialog closes
// like Cancel; on failure it stays open and dispatches nothing. A confirm
// arriving while another is running is ignored.
func (d *ImportDialog) Confirm() bool {
	if d.pending || !d.open {
		return false
	}
	d.pending = true
	defer func() { d.pending = false }()

	ok := true
	if d.cfg.OnConfirm != nil {
		ok = d.cfg.OnConfirm(d.staged)
	}
	if ok {
		d.Cancel()
	}
	return ok
}

// HelperText is the store error when set, otherwise the neutral help line.
func (d *ImportDialog) HelperText() string {
	if msg := d.store.ImportError(); msg != "" {
		return msg
	}
	return d.text.Translate("import.help")
}

// Update handles trigger activation while closed and all input while open.
func (d *ImportDialog) Update(msg tea.Msg) tea.Cmd {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if !d.open {
		if isKey && d.cfg.Trigger != nil && d.cfg.Trigger.Activated(keyMsg) {
			return d.Open()
		}
		return nil
	}

	if isKey {
		switch {
		case key.Matches(keyMsg, d.keys.Cancel):
			d.Cancel()
			return nil
		case key.Matches(keyMsg, d.keys.Confirm):
			d.Confirm()
			return nil
		case key.Matches(keyMsg, d.keys.Copy):
			return d.copyBookmarklet()
		}
	}

	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	d.staged = d.input.Value()
	return cmd
}

func (d *ImportDialog) copyBookmarklet() tea.Cmd {
	if !d.ShowsBookmarklet() || d.Copier == nil {
		return nil
	}
	link, copier := d.cfg.Bookmarklet, d.Copier
	return func() tea.Msg {
		return CopiedMsg{Err: copier(link)}
	}
}

func (d *ImportDialog) textOr(value, key string) string {
	if value != "" {
		return value
	}
	return d.text.Translate(key)
}

// View renders the dialog box; "" while closed.
func (d *ImportDialog) View() string {
	if !d.open {
		return ""
	}
	inner := d.width - 6

	sections := []string{
		styles.DialogTitleStyle().Render(d.textOr(d.cfg.Title, "import.title")),
		utils.RenderMarkdown(d.textOr(d.cfg.Body, "import.body"), inner),
	}
	if d.cfg.Support != "" {
		sections = append(sections, utils.RenderMarkdown(d.cfg.Support, inner))
	}
	if d.ShowsBookmarklet() {
		sections = append(sections, d.bookmarkletView(inner))
	}

	errMsg := d.store.ImportError()
	helper := styles.HelperTextStyle().Render(d.HelperText())
	if errMsg != "" {
		helper = styles.HelperErrorStyle().Render(errMsg)
	}
	sections = append(sections,
		styles.InputStyle(errMsg != "").Render(d.input.View())+"\n"+helper,
		d.actionsView(),
	)
	return styles.DialogStyle(d.width).Render(strings.Join(sections, "\n\n"))
}

func (d *ImportDialog) bookmarkletView(width int) string {
	label := styles.PanelTitleStyle().Render(d.text.Translate("import.bookmarklet")) +
		"  " + styles.HelpStyle().Render(d.text.Translate("import.copy"))
	return styles.BookmarkletStyle().Render(label + "\n" + BookmarkletLink(d.cfg.Bookmarklet, width-2))
}

// BookmarkletLink renders link on one line: the visible text is truncated to
// width with an ellipsis, the OSC 8 target keeps the full link.
func BookmarkletLink(link string, width int) string {
	name := link
	if width > 0 && lipgloss.Width(link) > width {
		name = truncate.StringWithTail(link, uint(width), "…")
	}
	return termenv.Hyperlink(link, styles.LinkStyle().Render(name))
}

func (d *ImportDialog) actionsView() string {
	cancel := styles.ButtonStyle(false).Render(d.keys.Cancel.Help().Key + " " + d.text.Translate("import.cancel"))
	confirm := styles.ButtonStyle(true).Render(d.keys.Confirm.Help().Key + " " + d.text.Translate("import.confirm"))
	return lipgloss.JoinHorizontal(lipgloss.Top, cancel, confirm)
}
