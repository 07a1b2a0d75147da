package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/inputtree/internal/cli/formatter"
	"github.com/alexanderramin/inputtree/internal/domain"
	"github.com/alexanderramin/inputtree/internal/repository"
	"github.com/alexanderramin/inputtree/internal/service"
	"github.com/alexanderramin/inputtree/internal/tree"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive tree editor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditor(cmd.Context(), app, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runEditor(ctx context.Context, app *App, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	m := newEditorModel(ctx, app.Forest)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithInput(in), tea.WithOutput(out), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// forestUpdatedMsg carries the forest after a service call. focusID, when
// set, moves the cursor onto that node.
type forestUpdatedMsg struct {
	forest  domain.Forest
	focusID string
	err     error
}

// editMode says what committing the text input does.
type editMode int

const (
	editNone editMode = iota
	editValue
	editSync
)

// editorModel is the bubbletea model for the tree editor.
type editorModel struct {
	ctx  context.Context
	svc  service.ForestService
	keys editorKeyMap

	forest  domain.Forest
	rows    []tree.FlatEntry
	cursor  int
	grabbed string
	showIDs bool

	mode   editMode
	editID string
	input  textinput.Model

	status   string
	err      error
	canUndo  bool
	canRedo  bool
	width    int
	quitting bool
}

func newEditorModel(ctx context.Context, svc service.ForestService) *editorModel {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.CharLimit = 512
	return &editorModel{
		ctx:   ctx,
		svc:   svc,
		keys:  defaultEditorKeyMap(),
		input: ti,
	}
}

func (m *editorModel) Init() tea.Cmd {
	return m.run(func(ctx context.Context) (domain.Forest, error) {
		return m.svc.Forest(ctx)
	}, "")
}

// run calls op in a Cmd and reports the forest it returns.
func (m *editorModel) run(op func(ctx context.Context) (domain.Forest, error), focusID string) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		f, err := op(ctx)
		return forestUpdatedMsg{forest: f, focusID: focusID, err: err}
	}
}

func (m *editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-6, 10)
		return m, nil

	case forestUpdatedMsg:
		m.applyForest(msg)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.CtrlC) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.mode != editNone {
			return m.updateEditing(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m *editorModel) applyForest(msg forestUpdatedMsg) {
	if msg.forest != nil {
		m.forest = msg.forest
		m.rows = tree.Flatten(m.forest)
	}
	m.err = nil
	m.status = ""
	m.canUndo = m.svc.CanUndo(m.ctx)
	m.canRedo = m.svc.CanRedo(m.ctx)
	if msg.err != nil {
		m.status = statusFor(msg.err)
		if m.status == "" {
			m.err = msg.err
		}
	}

	focus := msg.focusID
	if m.grabbed != "" {
		focus = m.grabbed
	}
	if focus != "" {
		if i := m.rowOf(focus); i >= 0 {
			m.cursor = i
		}
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.grabbed != "" {
		if i := m.rowOf(m.grabbed); i < 0 {
			m.grabbed = ""
		} else if m.status == "" {
			m.status = movingStatus(m.rows[i].Node)
		}
	}
}

func movingStatus(n domain.Node) string {
	return "moving " + label(n) + ": ↑/↓ to move, space to drop"
}

// statusFor turns expected rejections into a status line. Other errors
// return "".
func statusFor(err error) string {
	var pre *domain.ProtectedRootError
	switch {
	case errors.As(err, &pre):
		return "cannot delete the root node"
	case errors.Is(err, repository.ErrNothingToUndo), errors.Is(err, repository.ErrNothingToRedo):
		return err.Error()
	}
	return ""
}

func (m *editorModel) rowOf(id string) int {
	for i, r := range m.rows {
		if r.Node.ID == id {
			return i
		}
	}
	return -1
}

func (m *editorModel) current() (domain.Node, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return domain.Node{}, false
	}
	return m.rows[m.cursor].Node, true
}

func (m *editorModel) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.grabbed != "" {
		return m.updateGrabbed(msg)
	}

	n, ok := m.current()
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.ToggleIDs):
		m.showIDs = !m.showIDs
	case !ok:
		return m, nil
	case key.Matches(msg, m.keys.Add):
		parentID := n.ID
		svc := m.svc
		return m, m.runFocus(func(ctx context.Context) (domain.Forest, string, error) {
			f, err := svc.AddChild(ctx, parentID)
			if err != nil {
				return f, "", err
			}
			focus := ""
			if p, found := tree.Find(f, parentID); found && p.HasChildren() {
				focus = p.Children[len(p.Children)-1].ID
			}
			return f, focus, nil
		})
	case key.Matches(msg, m.keys.Edit):
		return m, m.startEdit(n, editValue)
	case key.Matches(msg, m.keys.Sync):
		return m, m.startEdit(n, editSync)
	case key.Matches(msg, m.keys.Copy):
		id := n.ID
		return m, m.run(func(ctx context.Context) (domain.Forest, error) {
			return m.svc.Duplicate(ctx, id)
		}, id)
	case key.Matches(msg, m.keys.Delete):
		id := n.ID
		return m, m.run(func(ctx context.Context) (domain.Forest, error) {
			return m.svc.Delete(ctx, id)
		}, "")
	case key.Matches(msg, m.keys.Grab):
		m.grabbed = n.ID
		m.status = movingStatus(n)
	case key.Matches(msg, m.keys.Undo):
		return m, m.run(m.svc.Undo, "")
	case key.Matches(msg, m.keys.Redo):
		return m, m.run(m.svc.Redo, "")
	}
	return m, nil
}

func (m *editorModel) runFocus(op func(ctx context.Context) (domain.Forest, string, error)) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		f, focus, err := op(ctx)
		return forestUpdatedMsg{forest: f, focusID: focus, err: err}
	}
}

// updateGrabbed treats every cursor movement as a hover over the row the
// grabbed subtree would land in front of.
func (m *editorModel) updateGrabbed(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Grab), key.Matches(msg, m.keys.Confirm), key.Matches(msg, m.keys.Cancel):
		m.grabbed = ""
		m.status = ""
		return m, nil
	case key.Matches(msg, m.keys.Up):
		return m, m.hover(-1)
	case key.Matches(msg, m.keys.Down):
		return m, m.hover(+1)
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// hover picks the entry outside the grabbed subtree that the subtree should
// be inserted before after moving one slot in dir, and moves it there.
func (m *editorModel) hover(dir int) tea.Cmd {
	block, rest := tree.Partition(m.rows, m.grabbed)
	if len(block) == 0 {
		m.grabbed = ""
		return nil
	}
	// The subtree currently sits in front of rest[slot].
	slot := m.rowOf(m.grabbed)
	target := slot + dir
	if target < 0 || target >= len(rest) {
		return nil
	}
	dragged, hovered := m.grabbed, rest[target].Node.ID
	return m.run(func(ctx context.Context) (domain.Forest, error) {
		return m.svc.Move(ctx, dragged, hovered)
	}, dragged)
}

func (m *editorModel) startEdit(n domain.Node, mode editMode) tea.Cmd {
	m.mode = mode
	m.editID = n.ID
	m.input.SetValue(n.Value)
	m.input.Placeholder = n.Placeholder()
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *editorModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		id, value, mode := m.editID, m.input.Value(), m.mode
		m.stopEdit()
		return m, m.run(func(ctx context.Context) (domain.Forest, error) {
			if mode == editSync {
				return m.svc.BroadcastUpdate(ctx, id, value)
			}
			return m.svc.EditValue(ctx, id, value)
		}, id)
	case key.Matches(msg, m.keys.Cancel):
		m.stopEdit()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *editorModel) stopEdit() {
	m.mode = editNone
	m.editID = ""
	m.input.Blur()
	m.input.SetValue("")
}

func (m *editorModel) View() string {
	if m.quitting {
		return ""
	}

	var selected string
	if n, ok := m.current(); ok {
		selected = n.ID
	}
	items := formatter.ForestItems(m.forest, selected, m.grabbed)
	for i := range items {
		items[i].ShowID = m.showIDs
	}

	var b strings.Builder
	b.WriteString(formatter.Header("Input tree") + "\n\n")
	b.WriteString(formatter.RenderTree(items))

	if m.mode != editNone {
		verb := "edit"
		if m.mode == editSync {
			verb = "edit (syncing copies)"
		}
		b.WriteString("\n" + formatter.RenderBox(verb, m.input.View()) + "\n")
	}

	b.WriteString("\n")
	switch {
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	case m.status != "" && m.grabbed != "":
		b.WriteString(formatter.StyleYellowBold.Render(m.status) + "\n")
	case m.status != "":
		b.WriteString(formatter.Warning(m.status) + "\n")
	}
	b.WriteString(m.helpLine() + "\n")
	return b.String()
}

func (m *editorModel) helpLine() string {
	parts := make([]string, 0, len(m.keys.ShortHelp()))
	for _, k := range m.keys.ShortHelp() {
		if (k.Help() == m.keys.Undo.Help() && !m.canUndo) || (k.Help() == m.keys.Redo.Help() && !m.canRedo) {
			continue
		}
		h := k.Help()
		parts = append(parts, fmt.Sprintf("%s %s", formatter.Bold(h.Key), formatter.Dim(h.Desc)))
	}
	return strings.Join(parts, formatter.Dim(" · "))
}

func label(n domain.Node) string {
	if n.Value == "" {
		return n.DisplayValue()
	}
	return fmt.Sprintf("%q", n.Value)
}
