package stellar

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/stellar-defender/internal/config"
	"github.com/vovakirdan/stellar-defender/internal/core"
)

const nominal = 16.67

func newTestSim(t *testing.T, seed int64) *Sim {
	t.Helper()
	return NewSim(config.DefaultStellarConfig(), ProfileFor(DeviceTerminal, false), 800, 480, seed)
}

func newPlayingSim(t *testing.T) *Sim {
	t.Helper()
	s := newTestSim(t, 1)
	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	s.result() // drain the start notifications
	return s
}

func TestNewSimStartsInMenu(t *testing.T) {
	s := newTestSim(t, 1)
	if s.Phase() != PhaseMenu {
		t.Errorf("phase = %v, want menu", s.Phase())
	}
	if s.Lives() != 3 || s.Wave() != 1 || s.Score() != 0 {
		t.Errorf("lives=%d wave=%d score=%d, want 3/1/0", s.Lives(), s.Wave(), s.Score())
	}
	if got := s.Player().Pos(); got != core.V(400, 380) {
		t.Errorf("player at %+v, want (400, 380)", got)
	}

	r := s.Step(nominal, core.NewInputFrame())
	if r.Continue {
		t.Error("menu frames should not continue the loop")
	}
	if s.frames != 0 {
		t.Error("menu frames should not advance the simulation")
	}
}

func TestSanitizeDelta(t *testing.T) {
	s := newTestSim(t, 1)
	tests := []struct {
		name string
		dt   float64
		want float64
	}{
		{"normal", 20, 20},
		{"zero", 0, 0},
		{"at max", 50, 50},
		{"too large", 51, nominal},
		{"negative", -5, nominal},
		{"NaN", math.NaN(), nominal},
		{"infinite", math.Inf(1), nominal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.sanitizeDelta(tt.dt); got != tt.want {
				t.Errorf("sanitizeDelta(%v) = %v, want %v", tt.dt, got, tt.want)
			}
		})
	}
}

func TestFrameDeltaFromClock(t *testing.T) {
	s := newPlayingSim(t)

	in := core.NewInputFrame()
	in.Time = 5000
	s.Frame(in)
	if !almostEqual(s.Elapsed(), nominal) {
		t.Errorf("first frame elapsed = %v, want nominal %v", s.Elapsed(), nominal)
	}

	in.Time = 5020
	s.Frame(in)
	if !almostEqual(s.Elapsed(), nominal+20) {
		t.Errorf("elapsed = %v, want %v", s.Elapsed(), nominal+20)
	}

	// A long stall is replaced by the nominal delta
	in.Time = 9000
	s.Frame(in)
	if !almostEqual(s.Elapsed(), 2*nominal+20) {
		t.Errorf("elapsed after stall = %v, want %v", s.Elapsed(), 2*nominal+20)
	}
}

func TestResumeUsesNominalDelta(t *testing.T) {
	s := newPlayingSim(t)
	in := core.NewInputFrame()
	in.Time = 1000
	s.Frame(in)

	if err := s.Pause(); err != nil {
		t.Fatal(err)
	}
	in.Time = 1030
	r := s.Frame(in)
	if r.Continue || s.frames != 1 {
		t.Error("paused frames should not advance")
	}

	if err := s.Resume(); err != nil {
		t.Fatal(err)
	}
	in.Time = 1045
	s.Frame(in)
	if !almostEqual(s.Elapsed(), 2*nominal) {
		t.Errorf("elapsed = %v, want %v after resume", s.Elapsed(), 2*nominal)
	}
}

func TestStartEvents(t *testing.T) {
	s := newTestSim(t, 1)
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	r := s.Step(nominal, core.NewInputFrame())

	if !r.Continue {
		t.Error("playing frame should continue")
	}
	if ev, ok := core.FindEvent(r.Events, core.EventLives); !ok || ev.Value != 3 {
		t.Errorf("lives event = %+v (found %v), want 3", ev, ok)
	}
	if core.CountEvents(r.Events, core.EventScore) != 1 {
		t.Error("every playing frame should report the score")
	}
	if n := core.CountEvents(r.Events, core.EventSound); n != 1 {
		t.Errorf("sound events = %d, want 1 for the opening volley", n)
	}

	r = s.Step(nominal, core.NewInputFrame())
	if core.CountEvents(r.Events, core.EventLives) != 0 {
		t.Error("lives should only be reported when they change")
	}
	if core.CountEvents(r.Events, core.EventSound) != 0 {
		t.Error("cooldown should suppress a second volley")
	}
}

func TestLifeLostAndRespawn(t *testing.T) {
	s := newPlayingSim(t)
	s.player.ApplyPowerUp(MultiShot)
	s.player.invincible = false

	for i := range 4 {
		placeEnemy(s, Meteor, s.player.Pos())
		s.resolveCollisions()
		if i < 3 && s.Lives() != 3 {
			t.Fatalf("hit %d: lives = %d, want 3", i, s.Lives())
		}
	}

	if s.Lives() != 2 {
		t.Errorf("lives = %d, want 2", s.Lives())
	}
	p := s.Player()
	if p.Health() != 100 || !p.Invincible() {
		t.Errorf("respawn health=%v invincible=%v, want 100/true", p.Health(), p.Invincible())
	}
	if p.Pos() != core.V(400, 380) {
		t.Errorf("respawn at %+v, want (400, 380)", p.Pos())
	}
	if !p.HasPowerUp(MultiShot) {
		t.Error("buffs should survive a respawn")
	}

	r := s.result()
	if ev, ok := core.FindEvent(r.Events, core.EventLives); !ok || ev.Value != 2 {
		t.Errorf("lives event = %+v (found %v), want 2", ev, ok)
	}
	if core.CountEvents(r.Events, core.EventGameOver) != 0 {
		t.Error("losing one life should not end the game")
	}
}

func TestGameOverEmittedOnce(t *testing.T) {
	s := newPlayingSim(t)
	s.lives = 1
	s.player.invincible = false
	s.player.health = 25
	placeEnemy(s, Meteor, s.player.Pos())

	r := s.Step(nominal, core.NewInputFrame())

	if s.Phase() != PhaseGameOver {
		t.Fatalf("phase = %v, want gameover", s.Phase())
	}
	if r.Continue || !r.State.GameOver {
		t.Errorf("result continue=%v gameOver=%v", r.Continue, r.State.GameOver)
	}
	if core.CountEvents(r.Events, core.EventGameOver) != 1 {
		t.Errorf("gameover events = %d, want 1", core.CountEvents(r.Events, core.EventGameOver))
	}
	if ev, ok := core.FindEvent(r.Events, core.EventLives); !ok || ev.Value != 0 {
		t.Errorf("lives event = %+v, want 0", ev)
	}
	if _, ok := core.FindEvent(r.Events, core.EventScore); !ok {
		t.Error("final score should be reported with the game over")
	}

	// Further hits after the session ended are ignored
	placeEnemy(s, Meteor, s.player.Pos())
	s.resolveCollisions()
	if s.Lives() != 0 {
		t.Errorf("lives = %d after game over, want 0", s.Lives())
	}

	// A stray effect is dropped, not reported on an idle frame
	s.sounds = append(s.sounds, core.SoundShoot)
	for range 5 {
		r = s.Step(nominal, core.NewInputFrame())
		if len(r.Events) != 0 {
			t.Errorf("events after game over: %+v", r.Events)
		}
	}
}

func TestRestartResetsSession(t *testing.T) {
	s := newPlayingSim(t)
	s.score = 42
	s.lives = 1
	s.spawner.wave = 5
	s.player.ApplyPowerUp(Shield)
	placeEnemy(s, Boss, core.V(100, 100))
	s.gameOver()

	if err := s.Restart(); err != nil {
		t.Fatal(err)
	}
	if s.Phase() != PhasePlaying {
		t.Errorf("phase = %v, want playing", s.Phase())
	}
	if s.Score() != 0 || s.Lives() != 3 || s.Wave() != 1 {
		t.Errorf("score=%d lives=%d wave=%d, want 0/3/1", s.Score(), s.Lives(), s.Wave())
	}
	if len(s.Enemies()) != 0 {
		t.Error("restart should clear enemies")
	}
	if s.player.HasPowerUp(Shield) {
		t.Error("restart should clear buffs")
	}
	r := s.result()
	if core.CountEvents(r.Events, core.EventGameOver) != 0 {
		t.Error("restart should drop a pending game over")
	}
}

func TestTransitions(t *testing.T) {
	type op func(*Sim) error
	start := (*Sim).Start
	pause := (*Sim).Pause
	resume := (*Sim).Resume
	restart := (*Sim).Restart
	stop := (*Sim).Stop

	tests := []struct {
		name    string
		from    Phase
		op      op
		want    Phase
		wantErr bool
	}{
		{"start from menu", PhaseMenu, start, PhasePlaying, false},
		{"start from gameover", PhaseGameOver, start, PhasePlaying, false},
		{"start while playing", PhasePlaying, start, PhasePlaying, true},
		{"start while paused", PhasePaused, start, PhasePaused, true},
		{"pause while playing", PhasePlaying, pause, PhasePaused, false},
		{"pause from menu", PhaseMenu, pause, PhaseMenu, true},
		{"pause while paused", PhasePaused, pause, PhasePaused, true},
		{"resume while paused", PhasePaused, resume, PhasePlaying, false},
		{"resume while playing", PhasePlaying, resume, PhasePlaying, true},
		{"resume from gameover", PhaseGameOver, resume, PhaseGameOver, true},
		{"restart from menu", PhaseMenu, restart, PhasePlaying, false},
		{"restart while paused", PhasePaused, restart, PhasePlaying, false},
		{"stop while playing", PhasePlaying, stop, PhaseMenu, false},
		{"stop from gameover", PhaseGameOver, stop, PhaseMenu, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSim(t, 1)
			s.phase = tt.from
			err := tt.op(s)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTransition) {
					t.Errorf("err = %v, want ErrInvalidTransition", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if s.Phase() != tt.want {
				t.Errorf("phase = %v, want %v", s.Phase(), tt.want)
			}
		})
	}
}

func TestPauseKeepsSession(t *testing.T) {
	s := newPlayingSim(t)
	for range 10 {
		s.Step(nominal, core.NewInputFrame())
	}
	before := s.Snapshot()

	if err := s.Pause(); err != nil {
		t.Fatal(err)
	}
	for range 10 {
		s.Step(nominal, core.NewInputFrame())
	}
	if err := s.Resume(); err != nil {
		t.Fatal(err)
	}

	after := s.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("pause and resume should leave the session untouched")
	}
}

func TestOffscreenCulling(t *testing.T) {
	s := newPlayingSim(t)
	shot := newProjectile(core.V(100, -49), core.V(0, -500), 25, true)
	s.projectiles = []*Projectile{shot}
	low := placeEnemy(s, Meteor, core.V(100, 529))

	s.Step(nominal, core.NewInputFrame())

	for _, p := range s.Projectiles() {
		if p == shot {
			t.Error("shot beyond the top slack should be culled")
		}
	}
	for _, e := range s.Enemies() {
		if e == low {
			t.Error("enemy beyond the bottom slack should be culled")
		}
	}
	if s.Score() != 0 || s.Lives() != 3 {
		t.Error("culling should not score or cost lives")
	}
}

func TestSpawnerFeedsEnemies(t *testing.T) {
	s := newPlayingSim(t)
	for range 70 {
		s.Step(nominal, core.NewInputFrame())
	}
	if len(s.Enemies()) == 0 {
		t.Error("an enemy should spawn after the first interval")
	}
	for _, e := range s.Enemies() {
		if e.Kind == Boss {
			t.Error("no boss should spawn in wave 1")
		}
	}
}

func TestWaveAdvancesWithPlayTime(t *testing.T) {
	s := newPlayingSim(t)
	s.spawner.waveTimer = 30000 - nominal/2
	s.Step(nominal, core.NewInputFrame())
	if s.Wave() != 2 {
		t.Errorf("wave = %d, want 2", s.Wave())
	}
	if s.State().Wave != 2 {
		t.Errorf("state wave = %d, want 2", s.State().Wave)
	}
}

func TestAimWinsOverDirections(t *testing.T) {
	s := newPlayingSim(t)
	in := core.NewInputFrame()
	in.Move.Right = true
	in.Aiming = true
	in.Aim = core.V(100, 380)

	s.Step(nominal, in)
	if s.player.Pos().X >= 400 {
		t.Errorf("player x = %v, should move toward the aim point", s.player.Pos().X)
	}

	in.Aiming = false
	x := s.player.Pos().X
	s.Step(nominal, in)
	if s.player.Pos().X <= x {
		t.Error("held direction should move the player without aim")
	}
}

func TestAimIsConstrained(t *testing.T) {
	s := newPlayingSim(t)
	in := core.NewInputFrame()
	in.Aiming = true
	in.Aim = core.V(400, -1000)

	for range 200 {
		s.Step(nominal, in)
	}
	if got := s.player.Pos().Y; math.Abs(got-65) > 5 {
		t.Errorf("player y = %v, want near the top of the safe area 65", got)
	}
}

func TestSetBoundsReclamps(t *testing.T) {
	s := newPlayingSim(t)
	s.player.pos = core.V(790, 470)

	s.SetBounds(BoundsFor(400, 300, s.Profile()))

	p := s.player.Pos()
	if p.X > 375 || p.Y > 275 {
		t.Errorf("player at %+v, want inside 400x300", p)
	}
	if len(s.stars) != s.Profile().Stars {
		t.Errorf("stars = %d, want %d", len(s.stars), s.Profile().Stars)
	}
	for _, st := range s.stars {
		if st.pos.X > 400 || st.pos.Y > 300 {
			t.Fatalf("star at %+v outside new bounds", st.pos)
		}
	}
}

func TestSetBoundsShrinksBottom(t *testing.T) {
	profile := ProfileFor(DeviceDesktop, false)
	s := NewSim(config.DefaultStellarConfig(), profile, 800, 600, 3)
	s.player.pos = core.V(400, 580)

	b := Bounds{Top: 100, Bottom: 400, Width: 500, Height: 450}
	for range 2 {
		s.SetBounds(b)
	}

	if got, want := s.player.Pos(), core.V(400, b.Bottom-25); got != want {
		t.Errorf("player at %+v, want %+v", got, want)
	}
	if len(s.stars) != profile.Stars {
		t.Errorf("stars = %d, want %d", len(s.stars), profile.Stars)
	}
	for _, st := range s.stars {
		if st.pos.X < 0 || st.pos.X > b.Width || st.pos.Y < 0 || st.pos.Y > b.Height {
			t.Fatalf("star at %+v outside %vx%v", st.pos, b.Width, b.Height)
		}
	}
}

func TestSceneOrderAndPlayer(t *testing.T) {
	s := newPlayingSim(t)
	placeEnemy(s, AlienShip, core.V(300, 200))
	s.projectiles = []*Projectile{newProjectile(core.V(300, 300), core.V(0, -500), 25, true)}

	items := s.Scene()
	rank := map[ItemKind]int{}
	for i, it := range items {
		if _, seen := rank[it.Kind]; !seen {
			rank[it.Kind] = i
		}
	}
	if rank[ItemStar] > rank[ItemAlien] || rank[ItemAlien] > rank[ItemShot] || rank[ItemShot] > rank[ItemPlayer] {
		t.Errorf("unexpected draw order: %v", rank)
	}

	s.player.health = 0
	for _, it := range s.Scene() {
		if it.Kind == ItemPlayer {
			t.Error("dead player should not be drawn")
		}
	}
}

func TestProfileBounds(t *testing.T) {
	tests := []struct {
		device string
		touch  bool
		top    float64
		bottom float64
		stars  int
	}{
		{DeviceDesktop, false, 100, 720, 200},
		{DeviceMobile, true, 60, 500, 50},
		{DeviceMobile, false, 60, 720, 50},
		{DeviceTablet, true, 90, 400, 100},
		{DeviceTerminal, false, 40, 720, 40},
		{"toaster", false, 100, 720, 200},
	}

	for _, tt := range tests {
		t.Run(tt.device, func(t *testing.T) {
			p := ProfileFor(tt.device, tt.touch)
			b := BoundsFor(1280, 720, p)
			if b.Top != tt.top || b.Bottom != tt.bottom || p.Stars != tt.stars {
				t.Errorf("top=%v bottom=%v stars=%d, want %v/%v/%d", b.Top, b.Bottom, p.Stars, tt.top, tt.bottom, tt.stars)
			}
		})
	}
}

func TestSimDeterminism(t *testing.T) {
	run := func(seed int64) Snapshot {
		s := newTestSim(t, seed)
		if err := s.Start(); err != nil {
			t.Fatal(err)
		}
		for i := range 1200 {
			in := core.NewInputFrame()
			switch {
			case i%120 < 40:
				in.Move.Left = true
			case i%120 < 80:
				in.Move.Right = true
			default:
				in.Aiming = true
				in.Aim = core.V(float64(i%800), 300)
			}
			s.Step(nominal, in)
		}
		return s.Snapshot()
	}

	a := run(12345)
	b := run(12345)
	if a.Hash() != b.Hash() {
		t.Errorf("same seed produced different hashes: %d vs %d", a.Hash(), b.Hash())
	}
	if a.Score != b.Score || a.EnemyCount != b.EnemyCount {
		t.Errorf("same seed diverged: score %d/%d enemies %d/%d", a.Score, b.Score, a.EnemyCount, b.EnemyCount)
	}
}
