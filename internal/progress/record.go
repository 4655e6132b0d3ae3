package progress

// Gameplay toggle names stored in Settings.
const (
	SettingDifficultyHints  = "difficulty_hints"
	SettingShowExplanations = "show_explanations"
)

// Record is the durable per-player progress. TotalScore and
// MaxLevelReached only ever grow; Badges has set semantics and is kept
// sorted.
type Record struct {
	TotalScore      int             `json:"total_score"`
	MaxLevelReached int             `json:"max_level_reached"`
	Badges          []string        `json:"badges"`
	Settings        map[string]bool `json:"settings"`
}

// Default returns a fresh record for a new player.
func Default() Record {
	return Record{
		TotalScore:      0,
		MaxLevelReached: 1,
		Badges:          []string{},
		Settings:        DefaultSettings(),
	}
}

// DefaultSettings returns the gameplay toggles a new player starts
// with. Unknown toggles found in a save file are preserved as is.
func DefaultSettings() map[string]bool {
	return map[string]bool{
		SettingDifficultyHints:  true,
		SettingShowExplanations: true,
	}
}

// Setting returns the named toggle, falling back to its default when
// the record does not carry the key.
func (r Record) Setting(name string) bool {
	if v, ok := r.Settings[name]; ok {
		return v
	}
	return DefaultSettings()[name]
}

// HasBadge reports whether the badge id is already held.
func (r Record) HasBadge(id string) bool {
	for _, b := range r.Badges {
		if b == id {
			return true
		}
	}
	return false
}

// clone deep-copies the record so Apply can stay pure.
func clone(r Record) Record {
	out := r
	out.Badges = append([]string(nil), r.Badges...)
	out.Settings = make(map[string]bool, len(r.Settings))
	for k, v := range r.Settings {
		out.Settings[k] = v
	}
	return out
}

// sanitize repairs records decoded from disk: missing keys fall back
// to defaults and impossible values are clamped into range.
func sanitize(r Record) Record {
	if r.TotalScore < 0 {
		r.TotalScore = 0
	}
	if r.MaxLevelReached < 1 {
		r.MaxLevelReached = 1
	}
	if r.Badges == nil {
		r.Badges = []string{}
	}
	if r.Settings == nil {
		r.Settings = DefaultSettings()
	} else {
		for k, v := range DefaultSettings() {
			if _, ok := r.Settings[k]; !ok {
				r.Settings[k] = v
			}
		}
	}
	return r
}
