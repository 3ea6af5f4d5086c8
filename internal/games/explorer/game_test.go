package explorer

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/space-explorer/internal/arena"
	"github.com/vovakirdan/space-explorer/internal/config"
	"github.com/vovakirdan/space-explorer/internal/core"
	"github.com/vovakirdan/space-explorer/internal/registry"
)

func newGame(t *testing.T, mode string, seed int64) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	g := New(mode)
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	if err := g.Reset(cfg); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	return g
}

func TestModesRegistered(t *testing.T) {
	for _, mode := range []string{config.ModeExplorer, config.ModeClassic} {
		if !registry.Exists(mode) {
			t.Errorf("mode %q not registered", mode)
			continue
		}
		g, err := registry.Create(mode)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", mode, err)
		}
		if g.ID() != mode || g.Title() == "" {
			t.Errorf("mode %q: id=%q title=%q", mode, g.ID(), g.Title())
		}
	}
}

func TestResetBadConfigPath(t *testing.T) {
	SetConfigPath("/nonexistent/explorer.yaml")
	defer SetConfigPath("")

	if err := New(config.ModeExplorer).Reset(core.DefaultConfig()); err == nil {
		t.Error("Reset() should fail for a missing config file")
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([][]core.Intent, 600)
	for i := range inputs {
		act := core.ActionFire
		switch {
		case i%50 < 10:
			act = core.ActionLeft
		case i%50 < 20:
			act = core.ActionRight
		}
		inputs[i] = []core.Intent{core.IntentFor(act)}
	}

	run := func() core.GameState {
		g := newGame(t, config.ModeExplorer, 12345)
		var st core.GameState
		for _, in := range inputs {
			st = g.Step(in, time.Second/60).State
			if st.GameOver {
				break
			}
		}
		return st
	}

	if a, b := run(), run(); a != b {
		t.Errorf("determinism failed: %+v vs %+v", a, b)
	}
}

func TestSceneMirrorsArena(t *testing.T) {
	g := newGame(t, config.ModeClassic, 7)

	if g.Scene().Len() != g.arena.Len() {
		t.Fatalf("after reset: scene has %d sprites, arena %d entities", g.Scene().Len(), g.arena.Len())
	}

	for i := range 300 {
		act := core.ActionFire
		if i%30 < 15 {
			act = core.ActionLeft
		}
		res := g.Step([]core.Intent{core.IntentFor(act)}, 0)
		if res.State.GameOver {
			break
		}
	}

	if g.Scene().Len() != g.arena.Len() {
		t.Errorf("scene has %d sprites, arena %d entities", g.Scene().Len(), g.arena.Len())
	}
	if g.Scene().HUD() != g.arena.HUD() {
		t.Errorf("scene HUD %+v, arena %+v", g.Scene().HUD(), g.arena.HUD())
	}
}

func TestPauseOverlay(t *testing.T) {
	g := newGame(t, config.ModeExplorer, 1)

	res := g.Step([]core.Intent{core.IntentFor(core.ActionPause)}, 0)
	if !res.State.Paused || res.Events != 1 {
		t.Fatalf("after pause: %+v", res)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused screen should show the PAUSED overlay")
	}
}

func TestSceneDrawsSprites(t *testing.T) {
	s := NewScene(core.Bounds{W: 800, H: 600}, false)
	s.Apply(arena.Batch{
		{Kind: arena.EventCreated, EntityID: 1, Category: arena.CategoryPlayer, Visual: arena.VisualPlayer, Pos: core.V(400, 300), Radius: 20},
		{Kind: arena.EventCreated, EntityID: 2, Category: arena.CategoryCollectible, Visual: arena.VisualCollectible, Pos: core.V(100, 0), Radius: 25},
		{Kind: arena.EventHUD, HUD: arena.HUD{Score: 20, Lives: 4, Collected: 1, Wave: 1}},
	})

	screen := core.NewScreen(80, 25)
	s.Draw(screen)

	// 800x600 maps onto 80x24 play rows: x/10, 1 + y/25.
	if got := screen.Row(13)[39:42]; got != "/^\\" {
		t.Errorf("player glyph = %q", got)
	}
	if got := screen.Row(1)[8:13]; got != "(ooo)" {
		t.Errorf("planet glyph = %q", got)
	}
	if hud := screen.Row(0); !strings.Contains(hud, "Score: 20") || !strings.Contains(hud, "Lives: 4") {
		t.Errorf("HUD row = %q", hud)
	}
	if strings.Contains(screen.Row(0), "Wave") {
		t.Error("wave counter should be hidden without a formation")
	}

	s.Apply(arena.Batch{
		{Kind: arena.EventMoved, EntityID: 1, Pos: core.V(500, 300)},
		{Kind: arena.EventDestroyed, EntityID: 2},
	})
	s.Draw(screen)
	if got := screen.Row(13)[49:52]; got != "/^\\" {
		t.Errorf("moved player glyph = %q", got)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", s.Len())
	}
}

func TestSceneBanner(t *testing.T) {
	s := NewScene(core.Bounds{W: 800, H: 600}, true)
	s.Apply(arena.Batch{{Kind: arena.EventEffect, Effect: arena.Effect{Kind: arena.EffectLifeGained, Amount: 1}}})

	if s.Banner() != "+1 LIFE!" {
		t.Fatalf("Banner() = %q", s.Banner())
	}

	screen := core.NewScreen(80, 24)
	s.Draw(screen)
	if !strings.Contains(screen.Row(0), "+1 LIFE!") {
		t.Error("banner should be drawn on the HUD row")
	}

	for range BannerTicks {
		s.Apply(nil)
	}
	if s.Banner() != "" {
		t.Errorf("banner still shown after %d ticks", BannerTicks)
	}

	s.Apply(arena.Batch{{Kind: arena.EventEffect, Effect: arena.Effect{Kind: arena.EffectWaveCleared, Amount: 3}}})
	if s.Banner() != "WAVE 3" {
		t.Errorf("Banner() = %q", s.Banner())
	}
}

func TestGameOverOverlay(t *testing.T) {
	s := NewScene(core.Bounds{W: 800, H: 600}, false)
	s.Apply(arena.Batch{
		{Kind: arena.EventHUD, HUD: arena.HUD{Score: 140}},
		{Kind: arena.EventStatus, Status: arena.StatusEnded},
	})

	screen := core.NewScreen(80, 24)
	s.Draw(screen)
	out := screen.String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "Score: 140") {
		t.Error("ended scene should show the game over box with the score")
	}
}

func TestRestartIntentRestartsRun(t *testing.T) {
	g := newGame(t, config.ModeClassic, 3)

	for range 240 {
		g.Step([]core.Intent{core.IntentFor(core.ActionFire), core.IntentFor(core.ActionRight)}, time.Second/60)
	}
	if g.arena.Tick() == 0 {
		t.Fatal("arena did not advance")
	}

	st := g.Step([]core.Intent{core.IntentFor(core.ActionRestart)}, time.Second/60).State

	if st.Score != 0 || st.Collected != 0 || st.Wave != 1 || st.GameOver || st.Lives != 3 {
		t.Errorf("state after restart = %+v", st)
	}
	if g.arena.Tick() != 1 {
		t.Errorf("Tick() = %d, expected the restart tick only", g.arena.Tick())
	}
	if g.Scene().Len() != g.arena.Len() {
		t.Errorf("scene holds %d sprites, arena %d entities", g.Scene().Len(), g.arena.Len())
	}
}
