// Package switcher selects which keyboard layout the host displays and owns
// the state machines behind the shift, caps-lock, and symbol keys. All entry
// points must be called from the host's single event-processing thread.
package switcher

import (
	"github.com/softkbd/softkbd/api"
	"github.com/softkbd/softkbd/cache"
	"github.com/softkbd/softkbd/keyboard"
	"github.com/softkbd/softkbd/log"
	"github.com/softkbd/softkbd/prefs"
)

// Switcher is the runtime keyboard controller. Construct one per input view
// with New and hand it to the host; there is no shared instance.
type Switcher struct {
	view     api.View
	host     api.Host
	subtypes api.Subtypes
	sched    api.Scheduler
	store    *prefs.Store
	logger   *log.Logger
	cache    *cache.Cache

	shiftKeyState  *keyboard.ModifierKeyState
	symbolKeyState *keyboard.ModifierKeyState

	current    keyboard.Identity
	hasCurrent bool
	kbd        *keyboard.Keyboard

	// Precomputed identities for the two symbol pages, refreshed on every
	// load so symbol toggling never recomputes them.
	symbolsID        keyboard.Identity
	symbolsShiftedID keyboard.Identity

	mode                 keyboard.Mode
	imeOptions           keyboard.ImeOptions
	isSymbols            bool
	voiceKeyEnabled      bool
	voiceButtonOnPrimary bool
	hasSettingsKey       bool
	autoCorrectionActive bool
	layoutID             string

	symbolsRevert symbolsRevertState

	pendingShiftUpdate api.TaskHandle
}

// New builds a switcher wired to its host collaborators. store and logger
// may be nil; preferences then fall back to defaults and logging is
// discarded. When a store is given the switcher subscribes to its change
// notifications.
func New(view api.View, host api.Host, subtypes api.Subtypes, sched api.Scheduler,
	store *prefs.Store, logger *log.Logger,
) *Switcher {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	s := &Switcher{
		view:           view,
		host:           host,
		subtypes:       subtypes,
		sched:          sched,
		store:          store,
		logger:         logger,
		shiftKeyState:  keyboard.NewModifierKeyState("shift"),
		symbolKeyState: keyboard.NewModifierKeyState("symbol"),
		mode:           keyboard.ModeText,
	}
	s.layoutID = s.pref(prefs.KeyKeyboardLayout, prefs.DefaultLayoutID)
	s.cache = cache.New(s.buildKeyboard, subtypes.SwapSystemLocale, logger)
	s.cache.Refresh = s.refreshTransientState
	if store != nil {
		store.Subscribe(s.onPrefsChanged)
	}
	return s
}

// LoadKeyboard computes the keyboard for the given editor context and
// displays it. Nothing propagates out of a failed load: the error is logged
// and the previously displayed keyboard, if any, stays up.
func (s *Switcher) LoadKeyboard(mode keyboard.Mode, imeOptions keyboard.ImeOptions,
	voiceKeyEnabled, voiceButtonOnPrimary bool,
) {
	s.symbolsRevert = symbolsRevertNone
	defer func() {
		if r := recover(); r != nil {
			s.logger.Errorf("Switcher:load", "keyboard load panicked (mode=%s ime=%d): %v",
				mode, imeOptions, r)
		}
	}()
	if err := s.loadKeyboardInternal(mode, imeOptions, voiceKeyEnabled, voiceButtonOnPrimary, false); err != nil {
		s.logger.Warnf("Switcher:load", "keyboard load failed (mode=%s ime=%d): %v",
			mode, imeOptions, err)
	}
}

func (s *Switcher) loadKeyboardInternal(mode keyboard.Mode, imeOptions keyboard.ImeOptions,
	voiceKeyEnabled, voiceButtonOnPrimary, isSymbols bool,
) error {
	if s.view == nil {
		return nil
	}
	s.view.SetPreviewEnabled(s.host.PopupOn())

	s.mode = mode
	s.imeOptions = imeOptions
	s.voiceKeyEnabled = voiceKeyEnabled
	s.voiceButtonOnPrimary = voiceButtonOnPrimary
	s.isSymbols = isSymbols
	// The number of enabled IMEs may have changed since the last load.
	s.hasSettingsKey = s.settingsKeyVisible()
	s.makeSymbolsIdentities()

	id := s.identityFor(mode, imeOptions, isSymbols)
	kbd, err := s.cache.Get(id)
	if err != nil {
		return err
	}
	s.current = id
	s.hasCurrent = true
	s.kbd = kbd
	s.view.SetKeyboard(kbd)
	return nil
}

func (s *Switcher) buildKeyboard(id keyboard.Identity) (*keyboard.Keyboard, error) {
	return keyboard.New(id)
}

// refreshTransientState runs on every cache return so a reused keyboard
// never carries stale display state onto the screen.
func (s *Switcher) refreshTransientState(kbd *keyboard.Keyboard) {
	kbd.SetAutoCorrectionIndicator(s.autoCorrectionActive)
	kbd.SetShifted(false)
}

// OnAutoCorrectionStateChanged tracks whether the host will auto-correct the
// word being typed and redraws the indicator key when that changes.
func (s *Switcher) OnAutoCorrectionStateChanged(active bool) {
	if active == s.autoCorrectionActive {
		return
	}
	s.autoCorrectionActive = active
	if s.kbd != nil && s.kbd.SetAutoCorrectionIndicator(active) {
		s.view.InvalidateKey(keyboard.CodeSpace)
	}
}

// onPrefsChanged runs on the preference watcher goroutine; the real work is
// reposted to the host event thread.
func (s *Switcher) onPrefsChanged(changed []string) {
	keys := make([]string, len(changed))
	copy(keys, changed)
	if s.sched == nil {
		s.applyPrefsChange(keys)
		return
	}
	s.sched.Post(func() { s.applyPrefsChange(keys) })
}

func (s *Switcher) applyPrefsChange(changed []string) {
	for _, key := range changed {
		switch key {
		case prefs.KeyKeyboardLayout:
			layoutID := s.pref(prefs.KeyKeyboardLayout, prefs.DefaultLayoutID)
			if layoutID == s.layoutID {
				continue
			}
			s.logger.Infof("Switcher:prefs", "keyboard layout changed: %s -> %s", s.layoutID, layoutID)
			s.layoutID = layoutID
			// A theme change invalidates every constructed keyboard.
			s.cache.Purge()
			s.reload()
			s.host.ShowInputView()
		case prefs.KeySettingsKeyMode:
			s.hasSettingsKey = s.settingsKeyVisible()
			s.reload()
			s.host.ShowInputView()
		}
	}
}

// reload re-enters the load path with the current editor context, keeping
// the current symbols flag.
func (s *Switcher) reload() {
	if err := s.loadKeyboardInternal(s.mode, s.imeOptions, s.voiceKeyEnabled,
		s.voiceButtonOnPrimary, s.isSymbols); err != nil {
		s.logger.Warnf("Switcher:load", "keyboard reload failed: %v", err)
	}
}

func (s *Switcher) pref(key, def string) string {
	if s.store == nil {
		return def
	}
	return s.store.StringOr(key, def)
}

// LayoutID is the configured view theme identifier.
func (s *Switcher) LayoutID() string { return s.layoutID }

// Cache exposes the keyboard cache, mainly so hosts can hook Purge into
// their memory-pressure signal.
func (s *Switcher) Cache() *cache.Cache { return s.cache }

// CurrentKeyboard returns the displayed keyboard, or nil before the first
// successful load.
func (s *Switcher) CurrentKeyboard() *keyboard.Keyboard { return s.kbd }

// CurrentIdentity returns the displayed identity; ok is false before the
// first successful load.
func (s *Switcher) CurrentIdentity() (id keyboard.Identity, ok bool) {
	return s.current, s.hasCurrent
}

// Mode returns the current keyboard mode.
func (s *Switcher) Mode() keyboard.Mode { return s.mode }

// IsKeyboardAvailable reports whether a keyboard has been loaded into the
// view.
func (s *Switcher) IsKeyboardAvailable() bool { return s.view != nil && s.kbd != nil }

// IsInputViewShown reports whether the view is on screen.
func (s *Switcher) IsInputViewShown() bool { return s.view != nil && s.view.IsShown() }
