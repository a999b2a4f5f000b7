package game

// State carries the active session's runtime context between scene
// loads: which session is playing, which level it occupies, and where
// the player should appear. It is an explicitly constructed value owned
// by the caller, not a global.
type State struct {
	// SessionID is the active save slot, 0 when no session is loaded.
	SessionID int64

	// LevelDifficulty is the level the session last occupied.
	LevelDifficulty int

	// HasSeenDialogue records whether the level's intro dialogue
	// already played for this session.
	HasSeenDialogue bool

	// pending is the start position restored from saved progress.
	// Nil when the session has never been saved.
	pending *Position
}

// ApplyLoaded installs saved progress into the runtime state.
func (s *State) ApplyLoaded(pos Position, difficulty int, seenDialogue bool) {
	p := pos
	s.pending = &p
	s.LevelDifficulty = difficulty
	s.HasSeenDialogue = seenDialogue
}

// HasSavedProgress reports whether saved progress was applied.
func (s *State) HasSavedProgress() bool {
	return s.pending != nil
}

// StartPosition returns where the player should spawn: the restored
// checkpoint if one was loaded, the fixed spawn otherwise.
func (s *State) StartPosition() Position {
	if s.pending != nil {
		return *s.pending
	}
	return DefaultSpawn
}

// StartScene returns the scene to load for this session: the saved
// level, or the intro cutscene for a never-saved session.
func (s *State) StartScene() string {
	if s.pending != nil {
		return SceneForDifficulty(s.LevelDifficulty)
	}
	return CutsceneScene
}

// Clear resets the runtime state when leaving a session.
func (s *State) Clear() {
	s.SessionID = 0
	s.LevelDifficulty = 0
	s.HasSeenDialogue = false
	s.pending = nil
}
