package game

import (
	"strconv"
	"strings"
)

// Scene naming conventions. Level scenes are "Level_<difficulty>";
// sessions without saved progress start from the intro cutscene.
const (
	CutsceneScene    = "Cutscene"
	levelScenePrefix = "Level_"
)

// SceneForDifficulty returns the scene name for a level difficulty.
func SceneForDifficulty(difficulty int) string {
	return levelScenePrefix + strconv.Itoa(difficulty)
}

// DifficultyFromScene extracts the level difficulty from a scene name.
// Returns false for non-level scenes (menus, cutscenes) and for level
// names that do not carry a positive number.
func DifficultyFromScene(scene string) (int, bool) {
	suffix, ok := strings.CutPrefix(scene, levelScenePrefix)
	if !ok {
		return 0, false
	}
	d, err := strconv.Atoi(suffix)
	if err != nil || d < 1 {
		return 0, false
	}
	return d, true
}

// IsLevelScene reports whether the scene name refers to a playable level.
func IsLevelScene(scene string) bool {
	_, ok := DifficultyFromScene(scene)
	return ok
}
