package content

import (
	"github.com/Shopify/go-lua"

	"github.com/louisbranch/tilequest/internal/services/game/domain/entity"
	"github.com/louisbranch/tilequest/internal/services/game/domain/stats"
)

// luaAction calls the action function captured under key in the registry
// at load time, so later changes to the script's tables do not affect it.
// Script errors are logged and leave the game state as the script left it.
func (a *Adventure) luaAction(name, key string) entity.Action {
	return func(engine entity.Engine, hero entity.Character) {
		state := a.state
		top := state.Top()
		defer state.SetTop(top)

		state.Field(lua.RegistryIndex, key)
		pushEngine(state, engine)
		pushHero(state, hero)
		if err := state.ProtectedCall(2, 0, 0); err != nil {
			a.logger.Printf("ally %s action: %v", name, err)
		}
	}
}

func pushEngine(state *lua.State, engine entity.Engine) {
	state.NewTable()
	lua.SetFunctions(state, []lua.RegistryFunction{
		{Name: "notify", Function: func(l *lua.State) int {
			engine.Notify(lua.CheckString(l, 1))
			return 0
		}},
		{Name: "score", Function: func(l *lua.State) int {
			l.PushInteger(engine.Score())
			return 1
		}},
		{Name: "add_score", Function: func(l *lua.State) int {
			engine.SetScore(engine.Score() + lua.CheckInteger(l, 1))
			return 0
		}},
	}, 0)
}

func pushHero(state *lua.State, hero entity.Character) {
	state.NewTable()
	lua.SetFunctions(state, []lua.RegistryFunction{
		{Name: "gold", Function: func(l *lua.State) int {
			l.PushInteger(hero.Gold())
			return 1
		}},
		{Name: "add_gold", Function: func(l *lua.State) int {
			hero.SetGold(hero.Gold() + lua.CheckInteger(l, 1))
			return 0
		}},
		{Name: "hp", Function: func(l *lua.State) int {
			l.PushInteger(hero.HP())
			return 1
		}},
		{Name: "set_hp", Function: func(l *lua.State) int {
			hero.SetHP(lua.CheckInteger(l, 1))
			return 0
		}},
		{Name: "max_hp", Function: func(l *lua.State) int {
			l.PushInteger(hero.MaxHP())
			return 1
		}},
		{Name: "exp", Function: func(l *lua.State) int {
			l.PushInteger(hero.Exp())
			return 1
		}},
		{Name: "add_exp", Function: func(l *lua.State) int {
			hero.SetExp(hero.Exp() + lua.CheckInteger(l, 1))
			return 0
		}},
		{Name: "level", Function: func(l *lua.State) int {
			l.PushInteger(hero.Level())
			return 1
		}},
		{Name: "stat", Function: func(l *lua.State) int {
			l.PushInteger(hero.Stats().Get(stats.Attribute(lua.CheckString(l, 1))))
			return 1
		}},
	}, 0)
}
