package prefs

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePrefs(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestOpenMissingFile(t *testing.T) {
	t.Parallel()

	s, err := Open(filepath.Join(t.TempDir(), "prefs.toml"), nil)
	require.NoError(t, err)

	assert.False(t, s.String(KeyKeyboardLayout).Valid)
	assert.Equal(t, DefaultLayoutID, s.StringOr(KeyKeyboardLayout, DefaultLayoutID))
	assert.Equal(t, SettingsKeyModeAuto, s.SettingsKeyMode())
}

func TestOpenLoadsValues(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "prefs.toml")
	writePrefs(t, path, "keyboard_layout = \"3\"\nsettings_key_mode = \"always_show\"\n")

	s, err := Open(path, nil)
	require.NoError(t, err)

	v := s.String(KeyKeyboardLayout)
	assert.True(t, v.Valid)
	assert.Equal(t, "3", v.String)
	assert.Equal(t, SettingsKeyModeAlwaysShow, s.SettingsKeyMode())
}

func TestOpenMalformedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "prefs.toml")
	writePrefs(t, path, "keyboard_layout = [not toml")

	_, err := Open(path, nil)
	require.Error(t, err)
}

func TestSettingsKeyModeParsing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  SettingsKeyMode
	}{
		{"auto", SettingsKeyModeAuto},
		{"always_show", SettingsKeyModeAlwaysShow},
		{"always_hide", SettingsKeyModeAlwaysHide},
		{"bogus", SettingsKeyModeAuto},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "prefs.toml")
			writePrefs(t, path, "settings_key_mode = \""+tt.value+"\"\n")
			s, err := Open(path, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.SettingsKeyMode())
		})
	}
}

func TestWatchNotifiesOnChange(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "prefs.toml")
	writePrefs(t, path, "settings_key_mode = \"auto\"\n")

	s, err := Open(path, nil)
	require.NoError(t, err)

	var mu sync.Mutex
	var changed []string
	s.Subscribe(func(keys []string) {
		mu.Lock()
		changed = append(changed, keys...)
		mu.Unlock()
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, s.Watch(ctx))
	defer func() { require.NoError(t, s.Close()) }()

	writePrefs(t, path, "settings_key_mode = \"always_show\"\n")

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		for _, k := range changed {
			if k == KeySettingsKeyMode {
				return true
			}
		}
		return false
	}, 5*time.Second, 10*time.Millisecond)

	assert.Equal(t, SettingsKeyModeAlwaysShow, s.SettingsKeyMode())
}
