package system

import "github.com/lixenwraith/side-fighter/engine"

// RegisterAll adds every simulation system to the world
func RegisterAll(w *engine.World) {
	w.AddSystem(NewStarfieldSystem(w))
	w.AddSystem(NewEffectSystem(w))
	w.AddSystem(NewSpawnSystem(w))
	w.AddSystem(NewPlayerSystem(w))
	w.AddSystem(NewAlienFireSystem(w))
	w.AddSystem(NewFighterSystem(w))
	w.AddSystem(NewClipSystem(w))
	w.AddSystem(NewBulletSystem(w))
	w.AddSystem(NewCullSystem(w))
	w.AddSystem(NewStageSystem(w))
}
