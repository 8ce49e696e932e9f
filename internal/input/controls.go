package input

import "github.com/tatianab/road-of-life/internal/engine"

// Controls lists the buttons a view offers, top to bottom. Rects are left
// zero; each adapter places them.
func Controls(v engine.View) []Button {
	switch v.Screen {
	case engine.ScreenMenu:
		return []Button{
			{Label: "Start", Action: ActionStart},
			{Label: "Quit", Action: ActionQuit},
		}
	case engine.ScreenSceneIntro:
		return []Button{{Label: "Begin", Action: ActionAdvance}}
	case engine.ScreenAwaitingChoice:
		if v.Scene == nil {
			return nil
		}
		buttons := make([]Button, len(v.Scene.Choices))
		for i, c := range v.Scene.Choices {
			buttons[i] = Button{Label: c, Action: ActionChoose, Choice: i}
		}
		return buttons
	case engine.ScreenResult, engine.ScreenHistory:
		return []Button{{Label: "Continue", Action: ActionAdvance}}
	case engine.ScreenVictory, engine.ScreenGameOver:
		return []Button{
			{Label: "Play again", Action: ActionRestart},
			{Label: "Quit", Action: ActionQuit},
		}
	}
	return nil
}
