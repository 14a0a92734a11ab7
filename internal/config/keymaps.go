package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Projects
	CreateProject string `yaml:"create_project"`
	EditProject   string `yaml:"edit_project"`
	DeleteProject string `yaml:"delete_project"`
	OpenProject   string `yaml:"open_project"`

	// Tasks
	AddTask     string `yaml:"add_task"`
	EditTask    string `yaml:"edit_task"`
	DeleteTask  string `yaml:"delete_task"`
	CycleStatus string `yaml:"cycle_status"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Navigation
	PrevRow string `yaml:"prev_row"`
	NextRow string `yaml:"next_row"`
	Back    string `yaml:"back"`

	// Data
	SaveData   string `yaml:"save_data"`
	BackupPage string `yaml:"backup_page"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Projects
		CreateProject: "n",
		EditProject:   "e",
		DeleteProject: "d",
		OpenProject:   "enter",

		// Tasks
		AddTask:     "a",
		EditTask:    "e",
		DeleteTask:  "d",
		CycleStatus: "s",

		// Forms
		SaveForm: "ctrl+s",

		// Navigation
		PrevRow: "k",
		NextRow: "j",
		Back:    "esc",

		// Data
		SaveData:   "ctrl+s",
		BackupPage: "b",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.CreateProject == "" {
		k.CreateProject = defaults.CreateProject
	}
	if k.EditProject == "" {
		k.EditProject = defaults.EditProject
	}
	if k.DeleteProject == "" {
		k.DeleteProject = defaults.DeleteProject
	}
	if k.OpenProject == "" {
		k.OpenProject = defaults.OpenProject
	}
	if k.AddTask == "" {
		k.AddTask = defaults.AddTask
	}
	if k.EditTask == "" {
		k.EditTask = defaults.EditTask
	}
	if k.DeleteTask == "" {
		k.DeleteTask = defaults.DeleteTask
	}
	if k.CycleStatus == "" {
		k.CycleStatus = defaults.CycleStatus
	}
	if k.SaveForm == "" {
		k.SaveForm = defaults.SaveForm
	}
	if k.PrevRow == "" {
		k.PrevRow = defaults.PrevRow
	}
	if k.NextRow == "" {
		k.NextRow = defaults.NextRow
	}
	if k.Back == "" {
		k.Back = defaults.Back
	}
	if k.SaveData == "" {
		k.SaveData = defaults.SaveData
	}
	if k.BackupPage == "" {
		k.BackupPage = defaults.BackupPage
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
