package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kettlegym/zenithgen/internal/utils"
	"github.com/kettlegym/zenithgen/internal/utils/fileops"
)

func TestWatcher_RegeneratesOnSwiftChanges(t *testing.T) {
	dir := t.TempDir()
	view := filepath.Join(dir, "ChipView.swift")
	require.NoError(t, os.WriteFile(view, []byte("struct Chip {}"), 0644))

	files := fileops.NewFileOps(8)
	content, err := files.ReadFile(view)
	require.NoError(t, err)
	require.Equal(t, "struct Chip {}", content)

	var runs atomic.Int32
	var seen atomic.Value
	regenerate := func() error {
		c, err := files.ReadFile(view)
		if err != nil {
			return err
		}
		seen.Store(c)
		runs.Add(1)
		return nil
	}

	var buf bytes.Buffer
	w := NewWatcher(dir, files, regenerate, utils.NewDiagnosticSystemWithWriters(utils.DiagnosticSilent, &buf, &buf))
	w.SetDebounce(50 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// fsnotify needs the watch registered before the writes land
	time.Sleep(100 * time.Millisecond)

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(view, []byte("struct Chip { var title: String }"), 0644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("ignored"), 0644))

	require.Eventually(t, func() bool { return runs.Load() >= 1 }, 2*time.Second, 20*time.Millisecond)
	assert.Equal(t, "struct Chip { var title: String }", seen.Load())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestWatcher_RegenerationsNeverOverlap(t *testing.T) {
	dir := t.TempDir()
	view := filepath.Join(dir, "BadgeView.swift")
	require.NoError(t, os.WriteFile(view, []byte("struct Badge {}"), 0644))

	var active, maxActive, runs atomic.Int32
	regenerate := func() error {
		n := active.Add(1)
		for {
			m := maxActive.Load()
			if n <= m || maxActive.CompareAndSwap(m, n) {
				break
			}
		}
		time.Sleep(80 * time.Millisecond)
		runs.Add(1)
		active.Add(-1)
		return nil
	}

	var buf bytes.Buffer
	w := NewWatcher(dir, fileops.NewFileOps(8), regenerate, utils.NewDiagnosticSystemWithWriters(utils.DiagnosticSilent, &buf, &buf))
	w.SetDebounce(5 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)

	// Keep saving while regenerations are in progress
	stopWrites := make(chan struct{})
	writes := make(chan struct{})
	go func() {
		defer close(writes)
		for {
			select {
			case <-stopWrites:
				return
			case <-time.After(10 * time.Millisecond):
				_ = os.WriteFile(view, []byte("struct Badge { var count: Int }"), 0644)
			}
		}
	}()

	require.Eventually(t, func() bool { return runs.Load() >= 3 }, 5*time.Second, 10*time.Millisecond)
	close(stopWrites)
	<-writes

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}

	assert.Equal(t, int32(1), maxActive.Load())
	assert.Equal(t, int32(0), active.Load(), "a regeneration was still running after Run returned")

	settled := runs.Load()
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, settled, runs.Load())
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()

	var runs atomic.Int32
	var buf bytes.Buffer
	w := NewWatcher(dir, fileops.NewFileOps(8), func() error {
		runs.Add(1)
		return nil
	}, utils.NewDiagnosticSystemWithWriters(utils.DiagnosticSilent, &buf, &buf))
	w.SetDebounce(20 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("x"), 0644))

	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(0), runs.Load())
}

func TestWatcher_MissingDir(t *testing.T) {
	var buf bytes.Buffer
	w := NewWatcher(filepath.Join(t.TempDir(), "missing"), fileops.NewFileOps(8), func() error { return nil },
		utils.NewDiagnosticSystemWithWriters(utils.DiagnosticSilent, &buf, &buf))

	err := w.Run(context.Background())
	require.Error(t, err)
}
