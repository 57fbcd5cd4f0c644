//go:build ebiten

package app

import (
	"context"
	"time"

	"islandgen/internal/render"
	"islandgen/internal/ui"
	"islandgen/pkg/worldgen"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	hudWidth      = 240
	seaLevelStep  = 0.02
	roughnessStep = 0.05
)

type outcome struct {
	gen int
	res worldgen.Result
	err error
}

// Game shows generated worlds and regenerates them on request.
type Game struct {
	cfg     worldgen.Config
	style   render.Style
	painter *render.TerrainPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	scale int

	gen     int
	cancel  context.CancelFunc
	results chan outcome
	world   *worldgen.Result
}

// New constructs a Game and starts generating the first world.
func New(cfg worldgen.Config, scale int) *Game {
	style := render.DefaultStyle()
	g := &Game{
		cfg:     cfg,
		style:   style,
		painter: render.NewTerrainPainter(cfg.Width, cfg.Height),
		overlay: ui.NewOverlay(scale, style.Coast),
		hud:     ui.NewHUD(hudWidth),
		scale:   scale,
		results: make(chan outcome, 1),
	}
	g.Regenerate(cfg.Seed)
	return g
}

// Regenerate cancels any in-flight request and starts a new one with seed.
// A superseded request never reaches the screen.
func (g *Game) Regenerate(seed int64) {
	if g.cancel != nil {
		g.cancel()
	}
	g.cfg.Seed = seed
	g.gen++
	ctx, cancel := context.WithCancel(context.Background())
	g.cancel = cancel
	g.hud.SetStatus("generating...")

	gen, cfg := g.gen, g.cfg
	go func() {
		res, err := worldgen.Generate(ctx, cfg)
		select {
		case g.results <- outcome{gen: gen, res: res, err: err}:
		case <-ctx.Done():
		}
	}()
}

// Update handles per-frame input and collects finished worlds.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if g.cancel != nil {
			g.cancel()
		}
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Regenerate(g.cfg.Seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Regenerate(time.Now().UnixNano())
	}
	if g.stepOnKey(ebiten.KeyUp, "sea_level", seaLevelStep) ||
		g.stepOnKey(ebiten.KeyDown, "sea_level", -seaLevelStep) ||
		g.stepOnKey(ebiten.KeyRight, "roughness", roughnessStep) ||
		g.stepOnKey(ebiten.KeyLeft, "roughness", -roughnessStep) {
		g.Regenerate(g.cfg.Seed)
	}

	g.overlay.Update()

	select {
	case out := <-g.results:
		if out.gen != g.gen {
			break
		}
		if out.err != nil {
			g.hud.SetStatus(out.err.Error())
			break
		}
		g.world = &out.res
		g.painter.Update(out.res.Terrain, out.res.Heights, g.style)
		g.hud.SetWorld(out.res)
	default:
	}
	g.hud.Update(Parameters(g.cfg))
	return nil
}

func (g *Game) stepOnKey(key ebiten.Key, param string, delta float64) bool {
	if !inpututil.IsKeyJustPressed(key) {
		return false
	}
	return g.cfg.StepParameter(param, delta)
}

// Draw renders the current world, its outlines and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.world != nil {
		g.painter.Draw(screen, g.scale)
		g.overlay.Draw(screen, g.world)
	}
	g.hud.Draw(screen, g.cfg.Width*g.scale, g.cfg.Height*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width*g.scale + hudWidth, g.cfg.Height * g.scale
}
