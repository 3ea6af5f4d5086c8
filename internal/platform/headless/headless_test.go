package headless

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-explorer/internal/arena"
	"github.com/vovakirdan/space-explorer/internal/config"
	"github.com/vovakirdan/space-explorer/internal/core"
)

var quiet = log.New(io.Discard)

func newArena(t *testing.T, mode string, seed int64) *arena.Arena {
	t.Helper()
	cfg, ok := config.Default(mode)
	if !ok {
		t.Fatalf("no defaults for %q", mode)
	}
	a, err := arena.New(cfg, seed)
	if err != nil {
		t.Fatalf("arena.New() failed: %v", err)
	}
	return a
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"text", "json", "msgpack"} {
		if f, err := ParseFormat(s); err != nil || string(f) != s {
			t.Errorf("ParseFormat(%q) = %q, %v", s, f, err)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(xml) error = %v", err)
	}
	if _, err := NewSink(io.Discard, "xml"); err == nil {
		t.Error("NewSink() should reject an unknown format")
	}
}

func TestTextSink(t *testing.T) {
	var buf bytes.Buffer
	sink, err := NewSink(&buf, FormatText)
	if err != nil {
		t.Fatal(err)
	}

	b := arena.Batch{
		{Kind: arena.EventCreated, Tick: 3, EntityID: 7, Category: arena.CategoryHostile, Visual: arena.VisualHostile, Pos: core.V(10, 20), Radius: 17.5},
		{Kind: arena.EventEffect, Tick: 3, Effect: arena.Effect{Kind: arena.EffectScore, Amount: 20, Cause: 7}},
		{Kind: arena.EventStatus, Tick: 3, Status: arena.StatusEnded},
	}
	if err := sink.Write(3, b); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	if err := sink.Write(4, nil); err != nil {
		t.Fatalf("Write(empty) failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	for i, want := range []string{`#7 hostile "hostile" at (10.0, 20.0) r=17.5`, "score +20 by #7", "ended"} {
		if !strings.Contains(lines[i], want) {
			t.Errorf("line %d = %q, expected to contain %q", i, lines[i], want)
		}
	}
	if sink.Frames() != 1 || sink.Events() != 3 {
		t.Errorf("frames=%d events=%d", sink.Frames(), sink.Events())
	}
}

func TestEncodedStreamsDecode(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatMsgpack} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			sink, err := NewSink(&buf, format)
			if err != nil {
				t.Fatal(err)
			}

			a := newArena(t, config.ModeClassic, 5)
			sum, err := Run(context.Background(), a, sink, Options{Ticks: 120, Pilot: Autopilot{}, Logger: quiet})
			if err != nil {
				t.Fatalf("Run() failed: %v", err)
			}

			dec, err := NewDecoder(&buf, format)
			if err != nil {
				t.Fatal(err)
			}

			var frames, events int
			var first Frame
			for {
				f, err := dec.Next()
				if errors.Is(err, io.EOF) {
					break
				}
				if err != nil {
					t.Fatalf("Next() failed: %v", err)
				}
				if frames == 0 {
					first = f
				}
				frames++
				events += len(f.Events)
			}

			if frames != sum.Frames || events != sum.Events {
				t.Errorf("decoded %d frames/%d events, wrote %d/%d", frames, events, sum.Frames, sum.Events)
			}

			// The first frame is the initial state: player plus the 5x8 formation.
			created := 0
			for _, r := range first.Events {
				if r.Kind == "created" {
					created++
				}
			}
			if first.Tick != 0 || created != 41 {
				t.Errorf("first frame tick=%d created=%d", first.Tick, created)
			}
			last := first.Events[len(first.Events)-1]
			if last.Kind != "status" || last.Status != "running" {
				t.Errorf("first frame should end with the running status, got %+v", last)
			}
		})
	}
}

func TestNewDecoderRejectsText(t *testing.T) {
	if _, err := NewDecoder(strings.NewReader(""), FormatText); err == nil {
		t.Error("text streams should not be decodable")
	}
}

func TestRunDeterministic(t *testing.T) {
	run := func() string {
		var buf bytes.Buffer
		sink, _ := NewSink(&buf, FormatJSON)
		a := newArena(t, config.ModeExplorer, 77)
		if _, err := Run(context.Background(), a, sink, Options{Ticks: 400, Pilot: Autopilot{}, Logger: quiet}); err != nil {
			t.Fatal(err)
		}
		return buf.String()
	}

	if run() != run() {
		t.Error("same seed produced different streams")
	}
}

func TestRunStopsAtTickLimit(t *testing.T) {
	sink, _ := NewSink(io.Discard, FormatText)
	a := newArena(t, config.ModeExplorer, 1)

	sum, err := Run(context.Background(), a, sink, Options{Ticks: 50, Logger: quiet})
	if err != nil {
		t.Fatal(err)
	}
	if sum.Ticks != 50 || sum.Status != "running" {
		t.Errorf("summary = %+v", sum)
	}
}

func TestRunStopsWhenEnded(t *testing.T) {
	cfg := config.DefaultExplorerConfig()
	cfg.Gameplay.Lives = 1
	a, err := arena.New(cfg, 1)
	if err != nil {
		t.Fatal(err)
	}
	p, _ := a.Player()
	if _, err := a.Spawn(arena.Spec{Category: arena.CategoryHostile, Pos: p.Pos, Radius: 10}); err != nil {
		t.Fatal(err)
	}

	sink, _ := NewSink(io.Discard, FormatText)
	sum, err := Run(context.Background(), a, sink, Options{Logger: quiet})
	if err != nil {
		t.Fatal(err)
	}
	if sum.Ticks != 1 || sum.Status != "ended" || sum.Lives != 0 {
		t.Errorf("summary = %+v", sum)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sink, _ := NewSink(io.Discard, FormatText)
	a := newArena(t, config.ModeExplorer, 1)
	if _, err := Run(ctx, a, sink, Options{Logger: quiet}); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, expected context.Canceled", err)
	}
	if a.Tick() != 0 {
		t.Errorf("cancelled run advanced to tick %d", a.Tick())
	}
}

func TestAutopilotDodgesThreat(t *testing.T) {
	cfg := config.DefaultExplorerConfig()
	cfg.Hostile.SpawnChance = 0
	cfg.Collectible.SpawnChance = 0
	a, err := arena.New(cfg, 1)
	if err != nil {
		t.Fatal(err)
	}
	p, _ := a.Player()

	// A hostile shot just above and to the left of the player.
	if _, err := a.Spawn(arena.Spec{
		Category: arena.CategoryProjectile,
		Owner:    arena.OwnerHostile,
		Pos:      p.Pos.Add(core.V(-30, -60)),
		Vel:      core.V(0, 7),
		Radius:   2.5,
	}); err != nil {
		t.Fatal(err)
	}

	in := Autopilot{}.Decide(a)
	if !in.Move.Right || in.Move.Left || !in.Fire {
		t.Errorf("intent = %+v, expected to move right and fire", in)
	}
}

func TestAutopilotChasesCollectible(t *testing.T) {
	cfg := config.DefaultExplorerConfig()
	cfg.Hostile.SpawnChance = 0
	cfg.Collectible.SpawnChance = 0
	a, err := arena.New(cfg, 1)
	if err != nil {
		t.Fatal(err)
	}
	p, _ := a.Player()
	if _, err := a.Spawn(arena.Spec{Category: arena.CategoryCollectible, Pos: p.Pos.Add(core.V(-300, -300)), Radius: 20}); err != nil {
		t.Fatal(err)
	}

	in := Autopilot{}.Decide(a)
	if !in.Move.Left || !in.Move.Up {
		t.Errorf("intent = %+v, expected to head up-left", in)
	}
}
