package ui

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"bjcounter/internal/counter"
	"bjcounter/internal/debounce"
	"bjcounter/internal/telemetry"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const noticeTTL = 3 * time.Second

// Padding around the whole screen; button hit zones are offset by it.
const (
	padX = 2
	padY = 1
)

// Rows used by everything except the history scroll area.
const chromeHeight = 24

// Options configures NewAppModel.
type Options struct {
	Debounce time.Duration      // minimum interval between accepted triggers of one action
	Observer telemetry.Observer // optional; receives every triggered action
	Clock    func() time.Time   // optional; defaults to time.Now
}

// AppModel is the root model: it owns the counter state and routes keys,
// button clicks and modal results to it.
type AppModel struct {
	State      *counter.State
	Debouncer  *debounce.Debouncer
	KeyHandler *KeyHandler
	KeyMap     *KeyMap
	Display    Display // refreshed after every state change; defaults to the history panel
	Observer   telemetry.Observer
	Modal      View // open confirmation modal, nil when none

	history  *HistoryView
	help     help.Model
	handlers map[Action]func() tea.Cmd
	zones    []buttonZone
	notice   notice
	width    int
	height   int
}

type noticeKind int

const (
	noticeInfo noticeKind = iota
	noticeError
)

// notice is the transient status line.
type notice struct {
	kind noticeKind
	text string
	seq  int
}

// buttonZone is the screen rectangle of a rendered button, inclusive.
type buttonZone struct {
	action         Action
	x0, y0, x1, y1 int
}

func (z buttonZone) contains(x, y int) bool {
	return x >= z.x0 && x <= z.x1 && y >= z.y0 && y <= z.y1
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model.
func NewAppModel(opts Options) *AppModel {
	reg := NewKeybindRegistry()
	reg.BindAction("a", ActionIncrement, "+1")
	reg.BindAction("s", ActionNoOp, "+0")
	reg.BindAction("d", ActionDecrement, "-1")
	reg.BindAction("delete", ActionDeleteLast, "Delete last")
	reg.BindAction("backspace", ActionDeleteLast, "Delete last")
	reg.BindAction("r", ActionReset, "Reset all")
	reg.BindAction("SPC u", ActionDeleteLast, "Delete last")
	reg.BindAction("SPC r", ActionReset, "Reset all")
	reg.BindWithDesc("?", func() tea.Msg { return ToggleHelpMsg{} }, "Toggle help")
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	keys := NewKeyHandler(reg)

	var dopts []debounce.Option
	if opts.Clock != nil {
		dopts = append(dopts, debounce.WithClock(opts.Clock))
	}

	m := &AppModel{
		State:      counter.New(),
		Debouncer:  debounce.New(opts.Debounce, dopts...),
		KeyHandler: keys,
		KeyMap:     DefaultKeyMap(keys),
		Observer:   opts.Observer,
		history:    NewHistoryView(),
		help:       newHelpModel(),
	}
	m.Display = m.history
	m.handlers = map[Action]func() tea.Cmd{
		ActionIncrement:  func() tea.Cmd { return m.applyTally(ActionIncrement) },
		ActionNoOp:       func() tea.Cmd { return m.applyTally(ActionNoOp) },
		ActionDecrement:  func() tea.Cmd { return m.applyTally(ActionDecrement) },
		ActionDeleteLast: m.deleteLast,
		ActionReset:      m.requestReset,
	}
	return m
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.history.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width - 2*padX
		a.history.SetSize(max(msg.Width-2*padX-4, 20), max(msg.Height-chromeHeight, 3))
		return a, nil
	case TriggerMsg:
		return a, a.handleTrigger(msg)
	case ConfirmResetMsg:
		return a, a.confirmReset()
	case DismissModalMsg:
		if a.Modal != nil {
			a.Modal = nil
			a.record(ActionReset, "", telemetry.OutcomeCancelled, nil)
		}
		return a, nil
	case ToggleHelpMsg:
		a.help.ShowAll = !a.help.ShowAll
		return a, nil
	case clearNoticeMsg:
		if msg.seq == a.notice.seq {
			a.notice.text = ""
		}
		return a, nil
	case tea.KeyMsg:
		if a.Modal != nil {
			v, cmd := a.Modal.Update(msg)
			a.Modal = v
			return a, cmd
		}
		if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
			return a, a.runKeyCmd(cmd)
		}
		_, cmd := a.history.Update(msg)
		return a, cmd
	case tea.MouseMsg:
		if a.Modal != nil {
			return a, nil
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			for _, z := range a.zones {
				if z.contains(msg.X, msg.Y) {
					return a, a.handleTrigger(TriggerMsg{Action: z.action, Source: SourceButton})
				}
			}
			return a, nil
		}
		_, cmd := a.history.Update(msg)
		return a, cmd
	}
	return a, nil
}

// runKeyCmd resolves key-bound triggers within the current Update so key
// events are handled strictly in arrival order. Other commands are
// returned to the runtime untouched.
func (a *AppModel) runKeyCmd(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	switch msg := msg.(type) {
	case TriggerMsg:
		return a.handleTrigger(msg)
	case ToggleHelpMsg:
		a.help.ShowAll = !a.help.ShowAll
		return nil
	}
	return func() tea.Msg { return msg }
}

// handleTrigger applies the debounce filter and dispatches to the
// action's handler.
func (a *AppModel) handleTrigger(msg TriggerMsg) tea.Cmd {
	if a.Modal != nil {
		return nil
	}
	if !a.Debouncer.Allow(msg.Action.DebounceKey()) {
		log.Printf("ui.handleTrigger: dropped repeated %s from %s", msg.Action, msg.Source)
		a.record(msg.Action, "", telemetry.OutcomeDebounced, nil)
		return nil
	}
	h, ok := a.handlers[msg.Action]
	if !ok {
		return nil
	}
	return h()
}

func (a *AppModel) applyTally(act Action) tea.Cmd {
	t, ok := act.Tally()
	if !ok {
		return nil
	}
	e := a.State.Apply(t)
	cmd := a.refresh()
	a.record(act, e.Label, telemetry.OutcomeApplied, nil)
	return cmd
}

// deleteLast undoes the newest entry. The display is refreshed with the
// post-undo state first; if that fails the counter is left as it was.
func (a *AppModel) deleteLast() tea.Cmd {
	e, ok, err := a.State.TryUndoLast(a.commitDisplay)
	if !ok {
		a.record(ActionDeleteLast, "", telemetry.OutcomeEmpty, nil)
		return a.setNotice(noticeInfo, "Nothing to undo")
	}
	if err != nil {
		log.Printf("ui.deleteLast: refresh failed, entry %q kept: %v", e.Label, err)
		a.record(ActionDeleteLast, e.Label, telemetry.OutcomeFailed, err)
		return a.setNotice(noticeError, fmt.Sprintf("An error occurred during deletion: %v", err))
	}
	a.record(ActionDeleteLast, e.Label, telemetry.OutcomeApplied, nil)
	return nil
}

func (a *AppModel) requestReset() tea.Cmd {
	a.Modal = NewResetConfirmModal()
	return a.Modal.Init()
}

func (a *AppModel) confirmReset() tea.Cmd {
	if a.Modal == nil {
		return nil
	}
	a.Modal = nil
	a.State.ResetAll()
	cmd := a.refresh()
	a.record(ActionReset, "", telemetry.OutcomeApplied, nil)
	if cmd != nil {
		return cmd
	}
	return a.setNotice(noticeInfo, "All data has been reset.")
}

func (a *AppModel) commitDisplay(snap counter.Snapshot) error {
	if a.Display == nil {
		return nil
	}
	return a.Display.Refresh(snap)
}

// refresh pushes the current state to the display. A failure is reported
// as a notice; the state change itself stands.
func (a *AppModel) refresh() (cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			cmd = a.refreshFailed(fmt.Errorf("panic: %v", r))
		}
	}()
	if err := a.commitDisplay(a.State.Snapshot()); err != nil {
		return a.refreshFailed(err)
	}
	return nil
}

func (a *AppModel) refreshFailed(err error) tea.Cmd {
	log.Printf("ui.refresh: %v", err)
	return a.setNotice(noticeError, fmt.Sprintf("Display refresh failed: %v", err))
}

// setNotice shows text on the status line and schedules its removal.
func (a *AppModel) setNotice(kind noticeKind, text string) tea.Cmd {
	seq := a.notice.seq + 1
	a.notice = notice{kind: kind, text: text, seq: seq}
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return clearNoticeMsg{seq: seq}
	})
}

func (a *AppModel) record(act Action, label string, outcome telemetry.Outcome, err error) {
	if a.Observer == nil {
		return
	}
	a.Observer.RecordAction(context.Background(), telemetry.ActionEvent{
		Action:  act.String(),
		Label:   label,
		Total:   a.State.Current(),
		Presses: a.State.Presses(),
		Outcome: outcome,
		Err:     err,
	})
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if a.Modal != nil {
		a.zones = nil
		modal := a.Modal.View()
		if a.width > 0 && a.height > 0 {
			return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, modal)
		}
		return modal
	}
	return a.renderCounter()
}

// renderCounter draws the main screen and records button hit zones.
func (a *AppModel) renderCounter() string {
	var sections []string
	y := 0
	add := func(s string) {
		sections = append(sections, s)
		y += lipgloss.Height(s)
	}
	a.zones = a.zones[:0]

	add(Styles.Title.Render("BlackJack Counter"))
	add(Styles.Number.Render(strconv.Itoa(a.State.Current())))

	row, zones := renderButtonRow([]Action{ActionIncrement, ActionNoOp, ActionDecrement}, y)
	a.zones = append(a.zones, zones...)
	add(row)

	add(Styles.Normal.Render(fmt.Sprintf("Total Button Presses: %d", a.State.Presses())))
	add(Styles.Section.Render("Action History"))
	add(Styles.Box.Render(a.history.View()))

	row, zones = renderButtonRow([]Action{ActionDeleteLast, ActionReset}, y)
	a.zones = append(a.zones, zones...)
	add(row)

	add(a.renderNotice())
	add(RenderKeybindHelp(a.help, a.KeyMap))

	return lipgloss.NewStyle().Padding(padY, padX).Render(strings.Join(sections, "\n"))
}

func (a *AppModel) renderNotice() string {
	if a.notice.text == "" {
		return " "
	}
	if a.notice.kind == noticeError {
		return Styles.NoticeError.Render("✗ " + a.notice.text)
	}
	return Styles.NoticeInfo.Render(a.notice.text)
}

// renderButtonRow joins the buttons for actions horizontally. y is the row
// offset of the buttons within the padded screen.
func renderButtonRow(actions []Action, y int) (string, []buttonZone) {
	const gap = "  "
	var parts []string
	var zones []buttonZone
	x := 0
	for i, act := range actions {
		if i > 0 {
			parts = append(parts, gap)
			x += len(gap)
		}
		btn := buttonStyle(buttonColor(act), act != ActionDeleteLast && act != ActionReset).Render(act.ButtonLabel())
		w, h := lipgloss.Size(btn)
		zones = append(zones, buttonZone{
			action: act,
			x0:     padX + x,
			y0:     padY + y,
			x1:     padX + x + w - 1,
			y1:     padY + y + h - 1,
		})
		parts = append(parts, btn)
		x += w
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...), zones
}

func buttonColor(act Action) string {
	switch act {
	case ActionIncrement:
		return ColorPlus
	case ActionNoOp:
		return ColorZero
	case ActionDecrement:
		return ColorDanger
	default:
		return ColorControl
	}
}
