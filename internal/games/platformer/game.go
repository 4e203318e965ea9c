// Package platformer provides the lava platformer campaign for the terminal.
// It drives the simulation core: player movement, the level tick, touch
// forwarding and the campaign of levels, lives and score.
package platformer

import (
	"fmt"
	"io"
	"math/rand"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	platformcore "github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// Package-level variables for configuration set via CLI
var (
	configPath         string
	difficultyPreset   config.DifficultyPreset
	selectedStartLevel int
	levelsDir          string
	levelUpdates       <-chan string
	logger             = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetStartLevel sets the starting level (1-indexed). 0 means start from beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// SetStartLevelID selects the playable campaign level with the given ID as
// the starting level.
func SetStartLevelID(id string) error {
	loader, campaign := openCampaign()
	lvl, err := loader.LoadByID(id)
	if err != nil {
		ids, _ := loader.ListIDs()
		return fmt.Errorf("%w (available: %s)", err, strings.Join(ids, ", "))
	}
	for i, c := range campaign {
		if c.ID == lvl.ID {
			SetStartLevel(i + 1)
			return nil
		}
	}
	return fmt.Errorf("level %s is not playable", id)
}

// SetLevelsDir makes the game load its campaign from dir instead of the
// built-in levels. An empty dir restores the built-in campaign.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// SetLevelUpdates sets a channel of changed level file paths. The game
// drains it every tick and reloads the campaign.
func SetLevelUpdates(ch <-chan string) {
	levelUpdates = ch
}

// SetLogger sets the logger for campaign events.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

func init() {
	registry.Register("platformer", func() registry.Game {
		return New()
	})
}

// Game implements the platformer campaign.
type Game struct {
	rng        *rand.Rand
	runtime    platformcore.RuntimeConfig
	cfg        config.PlatformerConfig
	difficulty *config.DifficultyManager

	// Campaign
	loader     *levels.Loader
	campaign   []levels.Level
	levelIndex int
	level      *core.Level
	updates    <-chan string

	// Run state
	tick       uint64
	levelTicks int
	score      int
	lives      int
	coins      int // Coins taken in the current attempt
	paused     bool
	gameOver   bool
	won        bool

	// Input hold counters, in ticks
	runLeft  int
	runRight int
	jumpHeld int

	// Viewport
	camX, camY float64
	tooSmall   bool
}

// New creates a new platformer game.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "platformer"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Lava Platformer"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime platformcore.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	cfg, err := config.LoadPlatformer(configPath)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultPlatformerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPlatformerPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	if difficultyPreset != "" {
		g.difficulty.ApplyPreset(difficultyPreset)
	}

	g.loadCampaign()
	g.updates = levelUpdates

	g.tick = 0
	g.score = 0
	g.lives = cfg.Player.Lives
	g.paused = false
	g.gameOver = false
	g.won = false

	g.levelIndex = 0
	if selectedStartLevel > 0 {
		g.levelIndex = max(0, min(selectedStartLevel-1, len(g.campaign)-1))
	}

	g.Resize(runtime.ScreenW, runtime.ScreenH)
	g.startLevel()
}

// Resize adapts the viewport to a new screen size without restarting.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.tooSmall = width < minScreenW || height < minScreenH
	if g.level != nil {
		g.updateCamera(true)
	}
}

// Campaign returns the playable levels in campaign order. Invalid levels
// are skipped; a custom directory without playable levels falls back to the
// built-in campaign.
func Campaign() []levels.Level {
	_, campaign := openCampaign()
	return campaign
}

func openCampaign() (*levels.Loader, []levels.Level) {
	if levelsDir != "" {
		loader := levels.NewLoader(levelsDir)
		if campaign := playable(loader); len(campaign) > 0 {
			return loader, campaign
		}
		logger.Warn("no playable levels, using built-in campaign", "dir", levelsDir)
	}
	loader := levels.NewCampaignLoader()
	return loader, playable(loader)
}

func (g *Game) loadCampaign() {
	g.loader, g.campaign = openCampaign()
}

func playable(loader *levels.Loader) []levels.Level {
	all, skipped, err := loader.LoadAll()
	if err != nil {
		logger.Error("loading levels", "root", loader.Root, "err", err)
		return nil
	}
	for _, err := range skipped {
		logger.Warn("skipping level file", "err", err)
	}

	valid := all[:0]
	for _, lvl := range all {
		if err := lvl.Validate(); err != nil {
			logger.Warn("skipping level", "err", err)
			continue
		}
		valid = append(valid, lvl)
	}
	return valid
}

// startLevel builds a fresh simulation of the current campaign level.
func (g *Game) startLevel() {
	g.levelTicks = 0
	g.coins = 0
	g.runLeft, g.runRight, g.jumpHeld = 0, 0, 0

	if len(g.campaign) == 0 {
		g.level = nil
		return
	}

	def := g.campaign[g.levelIndex]
	lvl, err := def.Build(g.rng)
	if err != nil {
		logger.Error("building level", "level", def.ID, "err", err)
		g.level = nil
		return
	}
	g.level = lvl
	g.updateCamera(true)

	logger.Debug("level started", "level", def.ID, "index", g.levelIndex, "lives", g.lives)
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.drainUpdates()

	if in.Has(platformcore.ActionRestart) && g.gameOver {
		g.Reset(g.runtime)
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.paused || g.gameOver || g.level == nil || g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	g.tick++
	g.levelTicks++
	g.holdInput(in)

	var finished *platformcore.LevelResult
	remaining := g.runtime.TickSeconds() * g.timeScale()
	for remaining > 1e-9 && finished == nil {
		dt := min(remaining, g.cfg.Physics.MaxStep)
		finished = g.advance(dt)
		remaining -= dt
	}

	g.releaseInput()
	if g.level != nil {
		g.updateCamera(false)
	}

	return platformcore.StepResult{State: g.State(), Finished: finished}
}

func (g *Game) timeScale() float64 {
	return g.difficulty.TimeScale(config.Progress{
		LevelIndex: g.levelIndex,
		Score:      g.score,
		Ticks:      int(g.tick), //#nosec G115 -- tick count stays small
	})
}

// advance runs one simulation step of at most MaxStep seconds.
// Returns the level result when the step ends the current attempt.
func (g *Game) advance(dt float64) *platformcore.LevelResult {
	lvl := g.level

	if lvl.Status() == core.StatusPlaying {
		if p := lvl.Player(); p != nil {
			g.movePlayer(lvl, p, dt)
		}
	}

	lvl.Step(dt)

	if lvl.Status() == core.StatusPlaying {
		g.touchActors(lvl)
	}

	if lvl.Status() == core.StatusPlaying {
		return nil
	}

	lvl.DecreaseFinishDelay(dt)
	if !lvl.IsFinished() {
		return nil
	}
	return g.finishLevel()
}

// touchActors forwards the first actor overlapping the player.
func (g *Game) touchActors(lvl *core.Level) {
	p := lvl.Player()
	if p == nil {
		return
	}
	other := lvl.ActorAt(p)
	if other == nil {
		return
	}

	touch := core.TouchForKind(other.Kind())
	if touch == core.TouchCoin {
		g.score += g.cfg.Scoring.CoinPoints
		g.coins++
	}
	lvl.PlayerTouched(touch, other)
}

// finishLevel records the outcome and moves the campaign on.
func (g *Game) finishLevel() *platformcore.LevelResult {
	def := g.campaign[g.levelIndex]
	result := &platformcore.LevelResult{
		LevelID: def.ID,
		Won:     g.level.Status() == core.StatusWon,
		Coins:   g.coins,
		Seconds: float64(g.levelTicks) * g.runtime.TickSeconds(),
	}

	if result.Won {
		g.score += g.cfg.Scoring.LevelBonus
		logger.Info("level cleared", "level", def.ID, "score", g.score, "seconds", result.Seconds)

		g.levelIndex++
		if g.levelIndex >= len(g.campaign) {
			g.levelIndex = len(g.campaign) - 1
			g.won = true
			g.gameOver = true
			logger.Info("campaign complete", "score", g.score)
			return result
		}
		g.startLevel()
		return result
	}

	g.lives--
	logger.Info("level lost", "level", def.ID, "lives", g.lives)
	if g.lives <= 0 {
		g.gameOver = true
		return result
	}
	g.startLevel()
	return result
}

// drainUpdates reloads the campaign for every pending level file change.
func (g *Game) drainUpdates() {
	for g.updates != nil {
		select {
		case path, ok := <-g.updates:
			if !ok {
				g.updates = nil
				return
			}
			g.reload(path)
		default:
			return
		}
	}
}

// reload re-reads the campaign after path changed. The current level is
// restarted only when its own file changed or it disappeared.
func (g *Game) reload(path string) {
	updated := playable(g.loader)
	if len(updated) == 0 {
		logger.Warn("reload produced no playable levels", "path", path)
		return
	}

	var currentID, currentFile string
	if len(g.campaign) > 0 {
		currentID = g.campaign[g.levelIndex].ID
		currentFile = g.campaign[g.levelIndex].FilePath
	}

	index := -1
	for i, lvl := range updated {
		if lvl.ID == currentID {
			index = i
			break
		}
	}

	g.campaign = updated
	logger.Info("levels reloaded", "path", path, "count", len(updated))

	switch {
	case index < 0:
		g.levelIndex = max(0, min(g.levelIndex, len(updated)-1))
	case sameFile(path, currentFile) || sameFile(path, updated[index].FilePath):
		g.levelIndex = index
	default:
		g.levelIndex = index
		return
	}

	if !g.gameOver {
		g.startLevel()
	}
}

func sameFile(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
		Won:      g.won,
	}
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.lives
}

// LevelIndex returns the 0-based index of the current campaign level.
func (g *Game) LevelIndex() int {
	return g.levelIndex
}

// LevelCount returns the number of playable campaign levels.
func (g *Game) LevelCount() int {
	return len(g.campaign)
}

// Level returns the running simulation, or nil if no level could be loaded.
func (g *Game) Level() *core.Level {
	return g.level
}
