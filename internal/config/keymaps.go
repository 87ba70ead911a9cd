package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Tasks
	AddTask       string `yaml:"add_task"`
	DeleteTask    string `yaml:"delete_task"`
	MoveTaskLeft  string `yaml:"move_task_left"`
	MoveTaskRight string `yaml:"move_task_right"`
	MoveTask      string `yaml:"move_task"`
	ViewTask      string `yaml:"view_task"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevTask   string `yaml:"prev_task"`
	NextTask   string `yaml:"next_task"`

	// Filters
	Search        string `yaml:"search"`
	CyclePriority string `yaml:"cycle_priority"`
	CycleTag      string `yaml:"cycle_tag"`
	ClearFilters  string `yaml:"clear_filters"`

	// Other
	Quit string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Tasks
		AddTask:       "n",
		DeleteTask:    "d",
		MoveTaskLeft:  "H",
		MoveTaskRight: "L",
		MoveTask:      "m",
		ViewTask:      "enter",

		// Navigation
		PrevColumn: "h",
		NextColumn: "l",
		PrevTask:   "k",
		NextTask:   "j",

		// Filters
		Search:        "/",
		CyclePriority: "p",
		CycleTag:      "t",
		ClearFilters:  "esc",

		// Other
		Quit: "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&k.AddTask, defaults.AddTask)
	fill(&k.DeleteTask, defaults.DeleteTask)
	fill(&k.MoveTaskLeft, defaults.MoveTaskLeft)
	fill(&k.MoveTaskRight, defaults.MoveTaskRight)
	fill(&k.MoveTask, defaults.MoveTask)
	fill(&k.ViewTask, defaults.ViewTask)
	fill(&k.PrevColumn, defaults.PrevColumn)
	fill(&k.NextColumn, defaults.NextColumn)
	fill(&k.PrevTask, defaults.PrevTask)
	fill(&k.NextTask, defaults.NextTask)
	fill(&k.Search, defaults.Search)
	fill(&k.CyclePriority, defaults.CyclePriority)
	fill(&k.CycleTag, defaults.CycleTag)
	fill(&k.ClearFilters, defaults.ClearFilters)
	fill(&k.Quit, defaults.Quit)
}
