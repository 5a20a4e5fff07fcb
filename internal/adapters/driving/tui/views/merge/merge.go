// Package merge provides the data-merge workflow view component for the TUI.
package merge

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stowage-labs/stowage-cli/internal/adapters/driving/tui/components/input"
	"github.com/stowage-labs/stowage-cli/internal/adapters/driving/tui/messages"
	"github.com/stowage-labs/stowage-cli/internal/adapters/driving/tui/styles"
	"github.com/stowage-labs/stowage-cli/internal/core/domain"
	"github.com/stowage-labs/stowage-cli/internal/core/ports/driving"
)

// Mode is the interaction mode of the merge view.
type Mode int

const (
	// ModeList navigates the identifier pairs.
	ModeList Mode = iota
	// ModeEditKey edits the selected pair's key.
	ModeEditKey
	// ModeEditValue edits the selected pair's value.
	ModeEditValue
	// ModeLoadPath prompts for a data file path on disk.
	ModeLoadPath
)

// View is the data-merge workflow view.
type View struct {
	styles       *styles.Styles
	mergeService driving.MergeService

	target  *domain.VaultFile
	session *domain.MergeSession

	selected     int
	scrollOffset int
	mode         Mode
	field        *input.Field
	editingID    string
	pendingKey   string

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a new merge view.
func NewView(s *styles.Styles, mergeService driving.MergeService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:       s,
		mergeService: mergeService,
		field:        input.NewField(s, "Key", ""),
	}
}

// SetTarget opens a merge session for the target file.
func (v *View) SetTarget(file domain.VaultFile) tea.Cmd {
	v.target = &file
	v.session = nil
	v.selected = 0
	v.scrollOffset = 0
	v.mode = ModeList
	v.err = nil

	return func() tea.Msg {
		if v.mergeService == nil {
			return messages.MergeOpened{Err: fmt.Errorf("merge service not available")}
		}

		session, err := v.mergeService.Open(context.Background(), file.ID)
		return messages.MergeOpened{Session: session, Err: err}
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Close ends the merge session.
func (v *View) Close() {
	if v.mergeService != nil {
		v.mergeService.Close()
	}
	v.session = nil
	v.target = nil
}

// Update handles messages for the merge view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		v.field.SetWidth(msg.Width)
		return v, nil

	case tea.KeyMsg:
		if v.mode == ModeList {
			return v.handleListKeyMsg(msg)
		}
		return v.handleInputKeyMsg(msg)

	case messages.MergeOpened:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.session = msg.Session
			v.err = nil
		}
		return v, nil

	case messages.MergeUpdated:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.err = nil
		}
		if msg.Session != nil {
			v.session = msg.Session
			v.clampSelection()
		}
		return v, nil

	case messages.MergeSaved:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.err = nil
		}
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// handleListKeyMsg handles key presses in list mode.
func (v *View) handleListKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
			v.adjustScroll()
		}
	case "down", "j":
		if v.selected < v.pairCount()-1 {
			v.selected++
			v.adjustScroll()
		}
	case "e", "enter":
		if pair := v.selectedPair(); pair != nil {
			v.editingID = pair.ID
			v.mode = ModeEditKey
			v.field.SetLabel("Key")
			v.field.SetValue(pair.Key)
			return v, v.field.Focus()
		}
	case "a":
		if v.mergeService != nil && v.session != nil {
			id := v.mergeService.AddPair()
			v.session = v.mergeService.Session()
			v.selectPair(id)
			v.editingID = id
			v.mode = ModeEditKey
			v.field.SetLabel("Key")
			v.field.SetValue("")
			return v, v.field.Focus()
		}
	case "d":
		if pair := v.selectedPair(); pair != nil {
			return v, v.removePair(pair.ID)
		}
	case "l":
		v.mode = ModeLoadPath
		v.field.SetLabel("Data file path")
		v.field.SetValue("")
		return v, v.field.Focus()
	case "m":
		return v, v.runMerge()
	case "s":
		if v.session != nil && v.session.Status == domain.SessionSuccess {
			return v, v.saveResult()
		}
	case "x":
		if v.mergeService != nil && v.session != nil {
			v.mergeService.Discard()
			v.session = v.mergeService.Session()
		}
	case "esc":
		v.Close()
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewFiles}
		}
	}

	return v, nil
}

// handleInputKeyMsg handles key presses while an input field is active.
func (v *View) handleInputKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return v.confirmInput()
	case "esc":
		v.mode = ModeList
		v.field.Blur()
		v.field.Reset()
		return v, nil
	}

	var cmd tea.Cmd
	v.field, cmd = v.field.Update(msg)
	return v, cmd
}

// confirmInput applies the active input field.
func (v *View) confirmInput() (*View, tea.Cmd) {
	value := v.field.Value()

	switch v.mode {
	case ModeEditKey:
		v.pendingKey = value
		v.mode = ModeEditValue
		v.field.SetLabel("Value")
		if pair := v.pairByID(v.editingID); pair != nil {
			v.field.SetValue(pair.Value)
		} else {
			v.field.SetValue("")
		}
		return v, nil

	case ModeEditValue:
		v.mode = ModeList
		v.field.Blur()
		v.field.Reset()
		return v, v.editPair(v.editingID, v.pendingKey, value)

	case ModeLoadPath:
		v.mode = ModeList
		v.field.Blur()
		v.field.Reset()
		return v, v.loadDataFromDisk(value)

	case ModeList:
		// Nothing to confirm
	}

	return v, nil
}

// editPair returns a command that updates a pair.
func (v *View) editPair(id, key, value string) tea.Cmd {
	return func() tea.Msg {
		if v.mergeService == nil {
			return messages.MergeUpdated{Err: fmt.Errorf("merge service not available")}
		}

		err := v.mergeService.EditPair(id, key, value)
		return messages.MergeUpdated{Session: v.mergeService.Session(), Err: err}
	}
}

// removePair returns a command that deletes a pair.
func (v *View) removePair(id string) tea.Cmd {
	return func() tea.Msg {
		if v.mergeService == nil {
			return messages.MergeUpdated{Err: fmt.Errorf("merge service not available")}
		}

		err := v.mergeService.RemovePair(id)
		return messages.MergeUpdated{Session: v.mergeService.Session(), Err: err}
	}
}

// loadDataFromDisk reads a data file and loads it into the session.
func (v *View) loadDataFromDisk(path string) tea.Cmd {
	return func() tea.Msg {
		if v.mergeService == nil {
			return messages.MergeUpdated{Err: fmt.Errorf("merge service not available")}
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return messages.MergeUpdated{Session: v.mergeService.Session(), Err: err}
		}

		err = v.mergeService.LoadDataContent(context.Background(), filepath.Base(path), content)
		return messages.MergeUpdated{Session: v.mergeService.Session(), Err: err}
	}
}

// runMerge returns a command that performs the substitution.
func (v *View) runMerge() tea.Cmd {
	return func() tea.Msg {
		if v.mergeService == nil {
			return messages.MergeUpdated{Err: fmt.Errorf("merge service not available")}
		}

		err := v.mergeService.Run(context.Background())
		return messages.MergeUpdated{Session: v.mergeService.Session(), Err: err}
	}
}

// saveResult returns a command that persists the merged document.
func (v *View) saveResult() tea.Cmd {
	return func() tea.Msg {
		if v.mergeService == nil {
			return messages.MergeSaved{Err: fmt.Errorf("merge service not available")}
		}

		file, err := v.mergeService.SaveResult(context.Background())
		return messages.MergeSaved{File: file, Err: err}
	}
}

func (v *View) pairCount() int {
	if v.session == nil {
		return 0
	}
	return len(v.session.Pairs)
}

func (v *View) selectedPair() *domain.IdentifierPair {
	if v.session == nil || v.selected < 0 || v.selected >= len(v.session.Pairs) {
		return nil
	}
	return &v.session.Pairs[v.selected]
}

func (v *View) pairByID(id string) *domain.IdentifierPair {
	if v.session == nil {
		return nil
	}
	for i := range v.session.Pairs {
		if v.session.Pairs[i].ID == id {
			return &v.session.Pairs[i]
		}
	}
	return nil
}

func (v *View) selectPair(id string) {
	if v.session == nil {
		return
	}
	for i := range v.session.Pairs {
		if v.session.Pairs[i].ID == id {
			v.selected = i
			v.adjustScroll()
			return
		}
	}
}

func (v *View) clampSelection() {
	if v.selected >= v.pairCount() {
		v.selected = v.pairCount() - 1
	}
	if v.selected < 0 {
		v.selected = 0
	}
}

// adjustScroll keeps the selected pair visible.
func (v *View) adjustScroll() {
	visibleItems := v.visibleItemCount()
	if v.selected < v.scrollOffset {
		v.scrollOffset = v.selected
	} else if v.selected >= v.scrollOffset+visibleItems {
		v.scrollOffset = v.selected - visibleItems + 1
	}
}

// visibleItemCount returns the number of pairs that can be displayed.
func (v *View) visibleItemCount() int {
	// Reserve lines for title, status, help, and padding
	reserved := 10
	available := v.height - reserved
	if available < 1 {
		available = 1
	}
	return available
}

// View renders the merge view.
func (v *View) View() string {
	if v.target == nil {
		return v.styles.Muted.Render("No merge target selected")
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render(fmt.Sprintf("Data Merge - %s", v.target.Name)))
	b.WriteString("\n\n")

	b.WriteString(v.renderStatus())
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	if v.mode != ModeList {
		b.WriteString(v.field.View())
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[enter] confirm  [esc] cancel"))
		return b.String()
	}

	if v.pairCount() == 0 {
		b.WriteString(v.styles.Muted.Render("No identifier pairs loaded. Press [l] to load a data file."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	visibleItems := v.visibleItemCount()
	for i := v.scrollOffset; i < v.pairCount() && i < v.scrollOffset+visibleItems; i++ {
		b.WriteString(v.renderPair(i, &v.session.Pairs[i]))
		b.WriteString("\n")
	}

	if v.pairCount() > visibleItems {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [%d-%d of %d]",
			v.scrollOffset+1,
			min(v.scrollOffset+visibleItems, v.pairCount()),
			v.pairCount())))
	}

	b.WriteString("\n\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderStatus renders the session status line.
func (v *View) renderStatus() string {
	if v.session == nil {
		return v.styles.Muted.Render("Opening session...")
	}

	message := v.session.Message
	switch v.session.Status {
	case domain.SessionProcessing:
		if message == "" {
			message = "Processing..."
		}
		return v.styles.Muted.Render(message)
	case domain.SessionSuccess:
		if message == "" {
			message = "Merge complete"
		}
		line := v.styles.Success.Render(message)
		if v.session.Result != nil {
			line += "\n" + v.styles.Muted.Render(
				fmt.Sprintf("Result: %s  [s] save  [x] discard", v.session.Result.Name))
		}
		return line
	case domain.SessionError:
		if message == "" {
			message = "Merge failed"
		}
		return v.styles.Error.Render(message)
	case domain.SessionIdle:
		if message != "" {
			return v.styles.Normal.Render(message)
		}
	}
	return v.styles.Muted.Render("Ready")
}

// renderPair renders a single identifier pair line.
func (v *View) renderPair(index int, pair *domain.IdentifierPair) string {
	indicator := "  "
	if index == v.selected {
		indicator = "> "
	}

	maxKeyLen := v.width/2 - 4
	if maxKeyLen < 10 {
		maxKeyLen = 10
	}
	key := pair.Key
	if len(key) > maxKeyLen {
		key = key[:maxKeyLen-3] + "..."
	}

	status := ""
	switch pair.Status {
	case domain.PairStatusReplaced:
		status = v.styles.Success.Render("replaced")
	case domain.PairStatusNotFound:
		status = v.styles.Warning.Render("not found")
	case domain.PairStatusUnset:
		// No annotation until a run happens
	}

	if index == v.selected {
		return v.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s", indicator, maxKeyLen, key, pair.Value)) +
			" " + status
	}

	return v.styles.Normal.Render(indicator) +
		v.styles.Normal.Render(fmt.Sprintf("%-*s  ", maxKeyLen, key)) +
		v.styles.Muted.Render(pair.Value) + " " + status
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render(
		"[e] edit  [a] add  [d] delete  [l] load data  [m] merge  [s] save  [x] discard  [esc] back")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.field.SetWidth(width)
}

// Target returns the current merge target.
func (v *View) Target() *domain.VaultFile {
	return v.target
}

// Session returns the current session snapshot.
func (v *View) Session() *domain.MergeSession {
	return v.session
}

// SelectedIndex returns the currently selected pair index.
func (v *View) SelectedIndex() int {
	return v.selected
}

// CurrentMode returns the active interaction mode.
func (v *View) CurrentMode() Mode {
	return v.mode
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
