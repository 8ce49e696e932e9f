package input

import "github.com/tatianab/road-of-life/internal/engine"

// Controller is the part of the engine an adapter drives.
type Controller interface {
	View() engine.View
	Start() (engine.View, error)
	SelectChoice(choice int) (engine.View, error)
	Advance() (engine.View, error)
	Restart() (engine.View, error)
}

// Dispatch applies one event. Clicks are hit-tested against layout; keys are
// read relative to the current screen. At most one engine call is made. quit is
// set when the player asked to leave; the engine is not touched in that case.
// Errors are the engine's and leave its state unchanged.
func Dispatch(ev Event, layout Layout, ctl Controller) (view engine.View, quit bool, err error) {
	var b Button
	switch ev.Kind {
	case KindClick:
		hit, ok := layout.Hit(ev.X, ev.Y)
		if !ok {
			return ctl.View(), false, nil
		}
		b = hit
	case KindKey:
		b = keyButton(ev.Key, ctl.View().Screen)
	}

	switch b.Action {
	case ActionStart:
		view, err = ctl.Start()
	case ActionAdvance:
		view, err = ctl.Advance()
	case ActionChoose:
		view, err = ctl.SelectChoice(b.Choice)
	case ActionRestart:
		view, err = ctl.Restart()
	case ActionQuit:
		return ctl.View(), true, nil
	default:
		view = ctl.View()
	}
	return view, false, err
}

func keyButton(k Key, screen engine.Screen) Button {
	switch k {
	case KeyQuit:
		return Button{Action: ActionQuit}
	case KeyConfirm:
		switch screen {
		case engine.ScreenMenu:
			return Button{Action: ActionStart}
		case engine.ScreenSceneIntro, engine.ScreenResult, engine.ScreenHistory:
			return Button{Action: ActionAdvance}
		}
	case KeyRestart:
		if screen.Terminal() {
			return Button{Action: ActionRestart}
		}
	case KeyChoice1, KeyChoice2, KeyChoice3:
		if screen == engine.ScreenAwaitingChoice {
			return Button{Action: ActionChoose, Choice: int(k - KeyChoice1)}
		}
	}
	return Button{}
}
