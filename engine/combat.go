package engine

import (
	"github.com/nathoo/deadgrid/engine/events"
	"github.com/nathoo/deadgrid/engine/state"
	"github.com/nathoo/deadgrid/types"
)

// HitChance returns base less the fatigue penalty, floored at zero. The
// penalty scales linearly from nothing at full fatigue to maxPenalty at zero.
func HitChance(base float64, fatigue int, maxPenalty float64) float64 {
	penalty := float64(state.MaxStat-fatigue) / state.MaxStat * maxPenalty
	if c := base - penalty; c > 0 {
		return c
	}
	return 0
}

// selectWeapon picks the ranged weapon when it is carried and loaded,
// otherwise the melee fallback.
func (e *Engine) selectWeapon() (types.WeaponDef, bool) {
	cb := e.Config.Combat
	if e.State.HasItem(cb.Ranged.Name) && e.State.Ammo > 0 {
		return cb.Ranged, true
	}
	return cb.Melee, false
}

// attack resolves the player striking zombie i. The player never moves.
func (e *Engine) attack(res *types.Result, i int) {
	s := e.State
	cb := e.Config.Combat
	w, ranged := e.selectWeapon()

	if ranged {
		s.AddAmmo(-w.AmmoCost)
	}

	chance := HitChance(w.HitChance, s.Fatigue, cb.FatiguePenalty)
	if e.RNG.Chance(chance) {
		damage := e.RNG.Range(w.MinDamage, w.MaxDamage)
		s.Zombies[i].HP -= damage
		data := map[string]any{"weapon": w.Name, "damage": damage, "hp": s.Zombies[i].HP}
		if s.Zombies[i].HP <= 0 {
			s.RemoveZombie(i)
			e.say(res, "Your %s drops the zombie (%d damage).", w.Name, damage)
			emit(res, events.ZombieKilled, data)
		} else {
			e.say(res, "You hit the zombie with your %s for %d.", w.Name, damage)
			emit(res, events.Attack, data)
		}
	} else {
		s.Adjust(state.StatHealth, -cb.MissDamage)
		e.say(res, "You miss with your %s and it claws you (-%d health).", w.Name, cb.MissDamage)
		emit(res, events.Attack, map[string]any{"weapon": w.Name, "miss": true})
	}

	s.Pay(cb.AttackCost)
}
