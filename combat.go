package crunchbang

import (
	"go.uber.org/zap"
)

// Attack makes attacker hit target with its hit die. The damage is reduced
// by the target's defense and is never negative.
func (g *Game) Attack(attacker, target Character) {
	if attacker.Stats().IsDead() || target.Stats().IsDead() {
		return
	}
	dmg := max(0, g.RNG.RollDice(attacker.Stats().HitDie)-target.Stats().Defense())
	g.logAttack(attacker, target, dmg)
	g.TakeDamage(target, dmg, attacker)
}

func (g *Game) logAttack(attacker, target Character, dmg int) {
	ea, et := attacker.Base(), target.Base()
	switch {
	case dmg == 0 && ea.Kind == KindPlayer:
		g.Log.Messagef(ChannelCombat, "You hit the %s but do no damage.", et.Name)
	case dmg == 0 && et.Kind == KindPlayer:
		g.Log.Messagef(ChannelCombat, "The %s hits you but does no damage.", ea.Name)
	case dmg == 0:
		g.Log.Messagef(ChannelCombat, "The %s hits the %s but does no damage.", ea.Name, et.Name)
	case ea.Kind == KindPlayer:
		g.Log.Messagef(ChannelCombat, "You hit the %s (%d dmg).", et.Name, dmg)
	case et.Kind == KindPlayer:
		g.Log.Messagef(ChannelCombat, "The %s hits you (%d dmg).", ea.Name, dmg)
	default:
		g.Log.Messagef(ChannelCombat, "The %s hits the %s (%d dmg).", ea.Name, et.Name, dmg)
	}
}

// TakeDamage decrements the target's hit points by amount. Hit points never
// go below zero. When they reach zero the target dies: it is removed from
// its tile and level, and the source, if any, gains its experience. Damage
// to a dead target is ignored.
func (g *Game) TakeDamage(target Character, amount int, source Character) {
	st := target.Stats()
	if st.IsDead() || amount <= 0 {
		return
	}
	st.adjustHP(-amount)
	if st.HP > 0 {
		return
	}
	g.kill(target, source)
}

// kill handles the death of a character. It is called exactly once per
// character.
func (g *Game) kill(c Character, source Character) {
	st := c.Stats()
	st.State = Dead
	e := c.Base()
	g.logger.Debug("character died",
		zap.Int32("id", int32(e.ID)),
		zap.String("name", e.Name),
		zap.Int("turn", g.Turn))
	if e.Kind == KindPlayer {
		g.Log.Message(ChannelCombat, "You die...")
		g.State = Finished
	} else {
		g.Log.Messagef(ChannelCombat, "The %s dies.", e.Name)
	}
	g.removeFromLevel(c)
	if source == nil || source.Stats().IsDead() {
		return
	}
	if n := source.Stats().gainXP(st.XPValue); n > 0 && source.Base().Kind == KindPlayer {
		g.Log.Messagef(ChannelGame, "You feel more experienced (level %d).", source.Stats().XPLevel)
	}
}

// TakeHeal increments the target's hit points by amount, up to its maximum.
// Dead targets cannot be healed.
func (g *Game) TakeHeal(target Character, amount int, source Character) {
	st := target.Stats()
	if st.IsDead() || amount <= 0 {
		return
	}
	healed := st.adjustHP(amount)
	if target.Base().Kind == KindPlayer {
		if healed > 0 {
			g.Log.Messagef(ChannelMagic, "You feel better (+%d HP).", healed)
		} else {
			g.Log.Message(ChannelMagic, "You feel no change (+0 HP).")
		}
	}
}
