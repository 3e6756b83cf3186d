package main

import (
	"math"
	"sort"

	"github.com/1siamBot/stackfire/engine/core"
	"github.com/1siamBot/stackfire/engine/systems"
	"github.com/1siamBot/stackfire/engine/weapons"
)

const (
	benchStep  = 1.0 / 60
	arenaSize  = 800.0
	targetRing = 80.0 // inside every family's reach
)

// Result is what one build did over a bench run
type Result struct {
	Build  string
	Damage float64
	DPS    float64
	Kills  int
	Shots  uint64
}

// Run simulates one build against a ring of stationary targets that reset
// when killed
func Run(b weapons.Build, cfg Config) (Result, error) {
	w := core.NewWorld(arenaSize, arenaSize, core.SandboxMode(), cfg.Seed)
	systems.Install(w)
	slot, err := systems.Equip(w, b.Weapon)
	if err != nil {
		return Result{}, err
	}
	w.SetPicks(b.Weapon, b.Picks)

	center := w.Player.Pos
	for i := 0; i < cfg.Targets; i++ {
		a := 2 * math.Pi * float64(i) / float64(cfg.Targets)
		w.AddEnemy(&core.Entity{
			Pos:    center.Add(core.FromAngle(a, targetRing)),
			Radius: core.DefaultEnemy.Radius,
			HP:     cfg.HP,
			MaxHP:  cfg.HP,
		})
	}

	res := Result{Build: b.String()}
	w.Bus.On(core.EvtEnemyDamaged, func(e core.Event) { res.Damage += e.Amount })
	w.Bus.On(core.EvtEnemyReset, func(core.Event) { res.Kills++ })

	gl := core.NewGameLoop(w, nil)
	steps := int(math.Round(cfg.Seconds / benchStep))
	for i := 0; i < steps; i++ {
		gl.Step(benchStep)
	}
	res.Shots = slot.Shots
	res.DPS = res.Damage / w.Time
	return res, nil
}

// RunAll benches every build and orders the results by DPS, best first
func RunAll(builds []weapons.Build, cfg Config) ([]Result, error) {
	out := make([]Result, 0, len(builds))
	for _, b := range builds {
		r, err := Run(b, cfg)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DPS > out[j].DPS })
	return out, nil
}
