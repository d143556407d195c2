package switcher

import (
	"sync"

	"golang.org/x/text/language"

	"github.com/softkbd/softkbd/api"
	"github.com/softkbd/softkbd/keyboard"
)

type fakeView struct {
	kbd                *keyboard.Keyboard
	setKeyboardCalls   int
	invalidateAllCalls int
	invalidatedKeys    []int
	shown              bool
	distinctMultitouch bool
	scheme             keyboard.ColorScheme
	previewOn          bool
	panicOnPreview     bool
}

func (v *fakeView) SetKeyboard(k *keyboard.Keyboard) {
	v.kbd = k
	v.setKeyboardCalls++
}

func (v *fakeView) InvalidateAllKeys() { v.invalidateAllCalls++ }

func (v *fakeView) InvalidateKey(code int) {
	v.invalidatedKeys = append(v.invalidatedKeys, code)
}

func (v *fakeView) IsShown() bool { return v.shown }

func (v *fakeView) HasDistinctMultitouch() bool { return v.distinctMultitouch }

func (v *fakeView) ColorScheme() keyboard.ColorScheme { return v.scheme }

func (v *fakeView) SetPreviewEnabled(on bool) {
	if v.panicOnPreview {
		panic("input view torn down")
	}
	v.previewOn = on
}

type fakeHost struct {
	autoCaps bool
	imeCount int
	popup    bool
	shows    int
}

func (h *fakeHost) AutoCapsEnabled() bool { return h.autoCaps }

func (h *fakeHost) EnabledInputMethodCount() int { return h.imeCount }

func (h *fakeHost) PopupOn() bool { return h.popup }

func (h *fakeHost) ShowInputView() { h.shows++ }

type fakeSubtypes struct {
	locale      language.Tag
	orientation keyboard.Orientation
	swaps       []language.Tag
	restores    int
}

func (f *fakeSubtypes) InputLocale() language.Tag { return f.locale }

func (f *fakeSubtypes) Orientation() keyboard.Orientation { return f.orientation }

func (f *fakeSubtypes) SwapSystemLocale(loc language.Tag) func() {
	f.swaps = append(f.swaps, loc)
	return func() { f.restores++ }
}

type fakeTask struct {
	fn        func()
	cancelled bool
}

func (t *fakeTask) Cancel() { t.cancelled = true }

// fakeScheduler queues posted tasks until the test pumps them.
type fakeScheduler struct {
	mu    sync.Mutex
	tasks []*fakeTask
}

func (s *fakeScheduler) Post(fn func()) api.TaskHandle {
	s.mu.Lock()
	defer s.mu.Unlock()
	task := &fakeTask{fn: fn}
	s.tasks = append(s.tasks, task)
	return task
}

func (s *fakeScheduler) runPending() {
	s.mu.Lock()
	tasks := s.tasks
	s.tasks = nil
	s.mu.Unlock()
	for _, task := range tasks {
		if !task.cancelled {
			task.fn()
		}
	}
}

func (s *fakeScheduler) pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

func newTestSwitcher() (*Switcher, *fakeView, *fakeHost, *fakeScheduler) {
	view := &fakeView{distinctMultitouch: true, shown: true}
	host := &fakeHost{imeCount: 1, popup: true}
	sub := &fakeSubtypes{locale: language.AmericanEnglish}
	sched := &fakeScheduler{}
	return New(view, host, sub, sched, nil, nil), view, host, sched
}
