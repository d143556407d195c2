// Command kbdemo renders the soft keyboard in a terminal and maps physical
// keys onto the controller's press/release protocol. It exists to exercise
// the full stack interactively: layout switching, the shift and caps-lock
// machinery, symbol auto-revert, and live preference reloads.
//
// Bindings: Tab taps shift, F2 toggles caps lock, F3 taps the symbol key,
// F4 cycles the keyboard mode, F5 flips the auto-correction indicator, and
// Esc or Ctrl-C quits. Everything else types.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"github.com/softkbd/softkbd/api"
	"github.com/softkbd/softkbd/keyboard"
	"github.com/softkbd/softkbd/log"
	"github.com/softkbd/softkbd/prefs"
	"github.com/softkbd/softkbd/switcher"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "kbdemo:", err)
		os.Exit(1)
	}
}

func run() error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := openStore(ctx, logger)
	if store != nil {
		defer store.Close()
	}

	view := &termView{screen: screen}
	host := &termHost{}
	sched := newLoopScheduler()
	s := switcher.New(view, host, &termSubtypes{}, sched, store, logger)
	s.LoadKeyboard(keyboard.ModeText, 0, false, false)

	events := make(chan tcell.Event)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	modes := []keyboard.Mode{
		keyboard.ModeText, keyboard.ModeURL, keyboard.ModeEmail,
		keyboard.ModeIM, keyboard.ModeWeb, keyboard.ModePhone, keyboard.ModeNumber,
	}
	modeIdx := 0
	autoCorrect := false
	var typed []rune

	view.render(s, typed)
	for {
		select {
		case fn := <-sched.queue:
			fn()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
					return nil
				case ev.Key() == tcell.KeyTab:
					s.OnPressShift()
					s.OnReleaseShift()
				case ev.Key() == tcell.KeyF2:
					s.ToggleCapsLock()
				case ev.Key() == tcell.KeyF3:
					s.OnPressSymbol()
					s.OnReleaseSymbol()
				case ev.Key() == tcell.KeyF4:
					modeIdx = (modeIdx + 1) % len(modes)
					s.LoadKeyboard(modes[modeIdx], 0, false, false)
				case ev.Key() == tcell.KeyF5:
					autoCorrect = !autoCorrect
					s.OnAutoCorrectionStateChanged(autoCorrect)
				case ev.Key() == tcell.KeyEnter:
					typed = typed[:0]
					typeKey(s, keyboard.CodeEnter)
				case ev.Key() == tcell.KeyBackspace || ev.Key() == tcell.KeyBackspace2:
					if len(typed) > 0 {
						typed = typed[:len(typed)-1]
					}
					typeKey(s, keyboard.CodeDelete)
				case ev.Key() == tcell.KeyRune:
					typed = append(typed, renderRune(s, ev.Rune()))
					typeKey(s, int(ev.Rune()))
				}
			}
		}
		view.render(s, typed)
	}
}

// typeKey feeds one key through the controller the way a touch panel would:
// the modifier trackers first, then the auto-revert tracker, then the
// deferred shift recomputation.
func typeKey(s *switcher.Switcher, code int) {
	s.OnOtherKeyPressed()
	s.OnKey(code)
	s.PostUpdateShiftState()
}

// renderRune applies the current shift display to a typed letter.
func renderRune(s *switcher.Switcher, r rune) rune {
	kbd := s.CurrentKeyboard()
	if kbd == nil || !kbd.IsShiftedOrShiftLocked() {
		return r
	}
	for _, row := range kbd.Keys() {
		for _, key := range row {
			if key.Code == int(r) && key.ShiftCode != 0 {
				return rune(key.ShiftCode)
			}
		}
	}
	return r
}

func newLogger() (*log.Logger, func(), error) {
	base := logrus.New()
	path := os.Getenv("KBDEMO_LOG")
	if path == "" {
		base.SetOutput(io.Discard)
		return log.New(base), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	base.SetOutput(f)
	base.SetLevel(logrus.DebugLevel)
	return log.New(base), func() { _ = f.Close() }, nil
}

// openStore loads the preference file when one exists and starts watching
// it. The demo runs fine without one.
func openStore(ctx context.Context, logger *log.Logger) *prefs.Store {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	store, err := prefs.Open(filepath.Join(dir, "softkbd", "prefs.toml"), logger)
	if err != nil {
		logger.Warnf("kbdemo", "preference store unavailable: %v", err)
		return nil
	}
	if err := store.Watch(ctx); err != nil {
		logger.Warnf("kbdemo", "preference watching unavailable: %v", err)
	}
	return store
}

// termView draws the current keyboard at the bottom of the terminal.
type termView struct {
	screen tcell.Screen
	kbd    *keyboard.Keyboard
}

func (v *termView) SetKeyboard(k *keyboard.Keyboard) { v.kbd = k }

func (v *termView) InvalidateAllKeys() {}

func (v *termView) InvalidateKey(code int) {}

func (v *termView) IsShown() bool { return true }

func (v *termView) HasDistinctMultitouch() bool { return true }

func (v *termView) ColorScheme() keyboard.ColorScheme { return keyboard.ColorSchemeBlack }

func (v *termView) SetPreviewEnabled(on bool) {}

func (v *termView) render(s *switcher.Switcher, typed []rune) {
	v.screen.Clear()
	drawText(v.screen, 0, 0, tcell.StyleDefault, "> "+string(typed))

	id, ok := s.CurrentIdentity()
	status := "no keyboard"
	if ok {
		status = fmt.Sprintf("%s  shift=%s  [Tab shift, F2 caps, F3 sym, F4 mode, F5 indicator, Esc quit]",
			id, s.CurrentKeyboard().ShiftStateString())
	}
	drawText(v.screen, 0, 2, tcell.StyleDefault.Dim(true), status)

	if v.kbd != nil {
		shifted := v.kbd.IsShiftedOrShiftLocked()
		for y, row := range v.kbd.Keys() {
			x := 0
			for _, key := range row {
				label := key.Label
				if shifted && key.ShiftLabel != "" {
					label = key.ShiftLabel
				}
				style := tcell.StyleDefault
				if key.Code == keyboard.CodeSpace && v.kbd.AutoCorrectionIndicator() {
					style = style.Underline(true)
				}
				drawText(v.screen, x, 4+y, style, "["+label+"]")
				x += len(label) + 3
			}
		}
	}
	v.screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

type termHost struct{}

func (termHost) AutoCapsEnabled() bool { return true }

func (termHost) EnabledInputMethodCount() int { return 1 }

func (termHost) PopupOn() bool { return true }

func (termHost) ShowInputView() {}

type termSubtypes struct{}

func (termSubtypes) InputLocale() language.Tag { return language.AmericanEnglish }

func (termSubtypes) Orientation() keyboard.Orientation { return keyboard.OrientationLandscape }

func (termSubtypes) SwapSystemLocale(language.Tag) func() { return func() {} }

// loopScheduler funnels posted tasks back into the main event loop so
// controller callbacks stay on one goroutine.
type loopScheduler struct {
	queue chan func()
}

func newLoopScheduler() *loopScheduler {
	return &loopScheduler{queue: make(chan func(), 16)}
}

func (l *loopScheduler) Post(fn func()) api.TaskHandle {
	task := &loopTask{}
	l.queue <- func() {
		task.mu.Lock()
		cancelled := task.cancelled
		task.mu.Unlock()
		if !cancelled {
			fn()
		}
	}
	return task
}

type loopTask struct {
	mu        sync.Mutex
	cancelled bool
}

func (t *loopTask) Cancel() {
	t.mu.Lock()
	t.cancelled = true
	t.mu.Unlock()
}
