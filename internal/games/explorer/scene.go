package explorer

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/vovakirdan/space-explorer/internal/arena"
	"github.com/vovakirdan/space-explorer/internal/core"
)

// BannerTicks is how long an effect banner stays on the HUD.
const BannerTicks = 90

// sprite is the scene's copy of one entity.
type sprite struct {
	category arena.Category
	visual   string
	pos      core.Vec2
	radius   float64
}

// glyph is how a visual tag is drawn.
type glyph struct {
	text  string
	color core.Color
}

var glyphs = map[string]glyph{
	arena.VisualPlayer:      {"/^\\", core.ColorCyan},
	arena.VisualHostile:     {"<W>", core.ColorRed},
	arena.VisualPlayerShot:  {"|", core.ColorYellow},
	arena.VisualHostileShot: {"*", core.ColorMagenta},
}

// Planet colors cycle by entity id.
var planetColors = []core.Color{
	core.ColorOrange, core.ColorBlue, core.ColorPurple, core.ColorBrown, core.ColorGold, core.ColorGreen,
}

// Scene is the terminal render sink. It applies render events to its own
// copy of the arena and never touches the simulation.
type Scene struct {
	bounds   core.Bounds
	showWave bool

	sprites map[arena.EntityID]sprite
	hud     arena.HUD
	status  arena.Status

	banner    string
	bannerTTL int
}

// NewScene creates an empty scene for an arena of the given size.
func NewScene(bounds core.Bounds, showWave bool) *Scene {
	return &Scene{
		bounds:   bounds,
		showWave: showWave,
		sprites:  make(map[arena.EntityID]sprite),
	}
}

// Apply consumes one batch of render events.
func (s *Scene) Apply(b arena.Batch) {
	if s.bannerTTL > 0 {
		s.bannerTTL--
	}

	for ev := range b.All() {
		switch ev.Kind {
		case arena.EventCreated:
			s.sprites[ev.EntityID] = sprite{
				category: ev.Category,
				visual:   ev.Visual,
				pos:      ev.Pos,
				radius:   ev.Radius,
			}
		case arena.EventMoved:
			if sp, ok := s.sprites[ev.EntityID]; ok {
				sp.pos = ev.Pos
				s.sprites[ev.EntityID] = sp
			}
		case arena.EventDestroyed:
			delete(s.sprites, ev.EntityID)
		case arena.EventHUD:
			s.hud = ev.HUD
		case arena.EventStatus:
			s.status = ev.Status
		case arena.EventEffect:
			s.applyEffect(ev.Effect)
		}
	}
}

func (s *Scene) applyEffect(ef arena.Effect) {
	switch ef.Kind {
	case arena.EffectLifeGained:
		s.showBanner("+1 LIFE!")
	case arena.EffectWaveCleared:
		s.showBanner(fmt.Sprintf("WAVE %d", ef.Amount))
	}
}

func (s *Scene) showBanner(text string) {
	s.banner = text
	s.bannerTTL = BannerTicks
}

// Len returns the number of sprites on screen.
func (s *Scene) Len() int { return len(s.sprites) }

// HUD returns the last reported counters.
func (s *Scene) HUD() arena.HUD { return s.hud }

// Status returns the last reported run state.
func (s *Scene) Status() arena.Status { return s.status }

// Banner returns the active banner text, or "" when none is shown.
func (s *Scene) Banner() string {
	if s.bannerTTL <= 0 {
		return ""
	}
	return s.banner
}

// Draw renders the scene. Row 0 holds the HUD; the arena is scaled into
// the remaining rows.
func (s *Scene) Draw(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w == 0 || h < 2 {
		return
	}

	sx := float64(w) / s.bounds.W
	sy := float64(h-1) / s.bounds.H

	// Draw in id order so overlapping sprites are stable between frames.
	for _, id := range slices.Sorted(maps.Keys(s.sprites)) {
		sp := s.sprites[id]
		cx := int(math.Floor(sp.pos.X * sx))
		cy := 1 + int(math.Floor(sp.pos.Y*sy))
		if cy < 1 {
			continue
		}
		g := s.glyphFor(id, sp, sx)
		dst.DrawTextColored(cx-len([]rune(g.text))/2, cy, g.text, g.color)
	}

	s.drawHUD(dst)

	switch s.status {
	case arena.StatusPaused:
		s.drawMessage(dst, "PAUSED", "Press P to resume")
	case arena.StatusEnded:
		s.drawMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", s.hud.Score))
	}
}

// glyphFor picks the glyph of a sprite. Planets widen with their radius.
func (s *Scene) glyphFor(id arena.EntityID, sp sprite, sx float64) glyph {
	if g, ok := glyphs[sp.visual]; ok {
		return g
	}
	if sp.category != arena.CategoryCollectible {
		return glyph{"?", core.ColorGray}
	}

	color := planetColors[int(id)%len(planetColors)]
	width := int(math.Round(2 * sp.radius * sx))
	if width < 3 {
		return glyph{"@", color}
	}
	return glyph{"(" + strings.Repeat("o", width-2) + ")", color}
}

func (s *Scene) drawHUD(dst *core.Screen) {
	text := fmt.Sprintf(" Score: %d  Lives: %d  Planets: %d", s.hud.Score, s.hud.Lives, s.hud.Collected)
	if s.showWave {
		text += fmt.Sprintf("  Wave: %d", s.hud.Wave)
	}
	dst.DrawTextColored(0, 0, text, core.ColorWhite)

	if b := s.Banner(); b != "" {
		dst.DrawTextColored(dst.Width()-len(b)-1, 0, b, core.ColorGreen)
	}
}

// drawMessage draws a boxed two-line message in the middle of the screen.
func (s *Scene) drawMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, title, core.ColorYellow)
	dst.DrawTextCentered(box.Y+3, subtitle, core.ColorDefault)
}
