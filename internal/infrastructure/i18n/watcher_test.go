package i18n

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestWatcherReloads(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	file := filepath.Join(dir, "razer.de.toml")
	require.NoError(t, os.WriteFile(file, []byte(`Off = "Aus"`), 0o644))

	tr, err := Load(context.Background(), DirSource{Path: dir}, "de")
	require.NoError(t, err)
	store := NewStore(tr)

	w, err := NewWatcher(dir, store, "de")
	require.NoError(t, err)
	w.debounce = 20 * time.Millisecond
	reloads := make(chan error, 64)
	w.OnReload(func(err error) {
		select {
		case reloads <- err:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	writeAtomic(t, file, `Off = "Ausgeschaltet"`)
	require.Eventually(t, func() bool {
		got, err := store.Localize("de", "Off")
		return err == nil && got == "Ausgeschaltet"
	}, 5*time.Second, 10*time.Millisecond)

	// a broken file must not replace working catalogs
	writeAtomic(t, file, `Off = `)
	deadline := time.After(5 * time.Second)
	for failed := false; !failed; {
		select {
		case err := <-reloads:
			failed = err != nil
		case <-deadline:
			t.Fatal("no failed reload after broken write")
		}
	}
	got, err := store.Localize("de", "Off")
	require.NoError(t, err)
	assert.Equal(t, "Ausgeschaltet", got)
}

func TestWatcherRestartsAfterCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	file := filepath.Join(dir, "razer.de.toml")
	require.NoError(t, os.WriteFile(file, []byte(`Off = "Aus"`), 0o644))
	tr, err := Load(context.Background(), DirSource{Path: dir}, "de")
	require.NoError(t, err)
	store := NewStore(tr)

	w, err := NewWatcher(dir, store, "de")
	require.NoError(t, err)
	w.debounce = 20 * time.Millisecond
	defer w.Stop()

	running := func() bool {
		w.mu.Lock()
		defer w.mu.Unlock()
		return w.running
	}

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))
	assert.True(t, running())
	cancel()
	require.Eventually(t, func() bool { return !running() }, 5*time.Second, 10*time.Millisecond)

	ctx2, cancel2 := context.WithCancel(context.Background())
	defer cancel2()
	require.NoError(t, w.Start(ctx2))
	assert.True(t, running())

	writeAtomic(t, file, `Off = "Ausgeschaltet"`)
	require.Eventually(t, func() bool {
		got, err := store.Localize("de", "Off")
		return err == nil && got == "Ausgeschaltet"
	}, 5*time.Second, 10*time.Millisecond)
}

func TestWatcherStopWithoutStart(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, err := NewWatcher(t.TempDir(), NewStore(nil), "en")
	require.NoError(t, err)
	w.Stop()
}

func TestWatcherMissingDir(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, err := NewWatcher(filepath.Join(t.TempDir(), "missing"), NewStore(nil), "en")
	require.NoError(t, err)
	assert.Error(t, w.Start(context.Background()))
	w.Stop()
}

func writeAtomic(t *testing.T, name, content string) {
	t.Helper()
	tmp := name + ".tmp"
	require.NoError(t, os.WriteFile(tmp, []byte(content), 0o644))
	require.NoError(t, os.Rename(tmp, name))
}
