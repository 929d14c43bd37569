package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	lvl, err := ParseLevel(" Line ")
	require.NoError(t, err)
	assert.Equal(t, LevelLine, lvl)
	_, err = ParseLevel("debug")
	assert.ErrorContains(t, err, "off|run|file|line|stack")

	mode, err := ParseMode("both")
	require.NoError(t, err)
	assert.Equal(t, ModeBoth, mode)
	assert.Equal(t, "both", mode.String())
	_, err = ParseMode("disk")
	assert.Error(t, err)

	f, err := ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatNDJSON, f)
	_, err = ParseFormat("xml")
	assert.Error(t, err)

	assert.Equal(t, FormatNDJSON, FormatForPath(FormatAuto, "out.ndjson"))
	assert.Equal(t, FormatText, FormatForPath(FormatAuto, "-"))
	assert.Equal(t, FormatNDJSON, FormatForPath(FormatNDJSON, "out.txt"))
}

func TestShouldEmit(t *testing.T) {
	tests := []struct {
		level Level
		deep  Scope // deepest recorded scope, 0 for none
	}{
		{LevelOff, 0},
		{LevelRun, ScopeRun},
		{LevelFile, ScopeFile},
		{LevelLine, ScopeLine},
		{LevelStack, ScopeStack},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			for s := ScopeRun; s <= ScopeStack; s++ {
				assert.Equal(t, s <= tt.deep, tt.level.ShouldEmit(s), s.String())
			}
		})
	}
}

func TestRingWrapsOldestFirst(t *testing.T) {
	ring := NewRingTracer(2, LevelStack)
	for _, name := range []string{"push", "pop", "retag"} {
		Point(ring, ScopeStack, name, "", 0)
	}
	events := ring.Snapshot()
	require.Len(t, events, 2)
	assert.Equal(t, "pop", events[0].Name)
	assert.Equal(t, "retag", events[1].Name)
	assert.Less(t, events[0].Seq, events[1].Seq)

	var buf bytes.Buffer
	require.NoError(t, ring.Dump(&buf, FormatText))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], "stack * pop"), lines[0])
}

func TestRingFiltersByLevel(t *testing.T) {
	ring := NewRingTracer(8, LevelFile)
	Point(ring, ScopeLine, "skipped", "", 0)
	Point(ring, ScopeFile, "kept", "", 0)
	events := ring.Snapshot()
	require.Len(t, events, 1)
	assert.Equal(t, "kept", events[0].Name)
}

func TestStreamNDJSON(t *testing.T) {
	var buf bytes.Buffer
	st := NewStreamTracer(&buf, LevelRun, FormatNDJSON)
	span := Begin(st, ScopeRun, "reindent", 0)
	span.Field("files", "3").End("done")

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	var begin, end map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &begin))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &end))
	assert.Equal(t, "begin", begin["kind"])
	assert.Equal(t, "run", begin["scope"])
	assert.Equal(t, "reindent", begin["name"])
	assert.Equal(t, "end", end["kind"])
	assert.Equal(t, "done", end["detail"])
	assert.Equal(t, map[string]any{"files": "3"}, end["fields"])
	assert.Equal(t, begin["span"], end["span"])
	require.NoError(t, st.Close())
}

func TestStreamText(t *testing.T) {
	var buf bytes.Buffer
	st := NewStreamTracer(&buf, LevelLine, FormatAuto)
	parent := Begin(st, ScopeFile, "file", 0).Field("path", "a.js")
	Point(st, ScopeLine, "query", "line 12", parent.ID())
	Point(st, ScopeStack, "push", "", parent.ID())
	parent.End("")

	out := buf.String()
	assert.Contains(t, out, "file  > file\n")
	assert.Contains(t, out, "line  * query (line 12)\n")
	assert.NotContains(t, out, "push")
	assert.Regexp(t, `file  < file path=a\.js \+\S+\n`, out)
}

func TestDisabledSpan(t *testing.T) {
	span := Begin(Nop, ScopeRun, "x", 0)
	assert.Nil(t, span)
	assert.Zero(t, span.ID())
	assert.Nil(t, span.Field("k", "v"))
	assert.Zero(t, span.End("ignored"))
	assert.False(t, Wants(nil, ScopeRun))
	Point(nil, ScopeRun, "x", "", 0)
}

func TestContext(t *testing.T) {
	assert.Equal(t, Nop, FromContext(context.Background()))
	ring := NewRingTracer(4, LevelStack)
	assert.Same(t, ring, FromContext(WithTracer(context.Background(), ring)))
	assert.Equal(t, Nop, FromContext(WithTracer(context.Background(), nil)))
}

func TestTee(t *testing.T) {
	var buf bytes.Buffer
	ring := NewRingTracer(4, LevelStack)
	tee := NewTee(NewStreamTracer(&buf, LevelRun, FormatText), ring)
	assert.Equal(t, LevelStack, tee.Level())

	Point(tee, ScopeStack, "pop", "", 0)
	assert.Empty(t, buf.String())
	assert.Len(t, ring.Snapshot(), 1)
	assert.Same(t, ring, Ring(tee))
	require.NoError(t, tee.Flush())
	require.NoError(t, tee.Close())
}

func TestNew(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	require.NoError(t, err)
	assert.Equal(t, Nop, tr)

	var buf bytes.Buffer
	tr, err = New(Config{Level: LevelRun, Mode: ModeBoth, Output: &buf})
	require.NoError(t, err)
	assert.IsType(t, &Tee{}, tr)
	assert.NotNil(t, Ring(tr))

	tr, err = New(Config{Level: LevelRun, Mode: ModeRing})
	require.NoError(t, err)
	assert.IsType(t, &RingTracer{}, tr)

	_, err = New(Config{Level: LevelRun})
	assert.Error(t, err)
	assert.Nil(t, Ring(Nop))
}

func TestNewOwnsFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.ndjson")
	tr, err := New(Config{Level: LevelRun, Mode: ModeStream, OutputPath: path})
	require.NoError(t, err)
	Point(tr, ScopeRun, "hello", "", 0)
	require.NoError(t, tr.Close())

	st, ok := tr.(*StreamTracer)
	require.True(t, ok)
	assert.Equal(t, FormatNDJSON, st.format)
	assert.Nil(t, st.closer)
}

func TestHeartbeat(t *testing.T) {
	assert.Nil(t, StartHeartbeat(Nop, time.Millisecond))
	var none *Heartbeat
	none.Stop()

	ring := NewRingTracer(16, LevelRun)
	hb := StartHeartbeat(ring, 2*time.Millisecond)
	require.NotNil(t, hb)
	require.Eventually(t, func() bool { return len(ring.Snapshot()) > 0 }, time.Second, time.Millisecond)
	hb.Stop()
	hb.Stop()

	ev := ring.Snapshot()[0]
	assert.Equal(t, KindHeartbeat, ev.Kind)
	assert.Equal(t, "#1", ev.Detail)
}
