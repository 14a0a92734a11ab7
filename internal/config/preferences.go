package config

// Preferences holds behavioral settings that are not key bindings or colors
type Preferences struct {
	// AutoSave writes the backing file after every successful mutation.
	// When disabled, data is only written on explicit save or quit.
	AutoSave *bool `yaml:"auto_save"`

	// BackupFolder is the folder name used on the backup destination
	BackupFolder string `yaml:"backup_folder"`

	// DescriptionWidth caps project descriptions on the dashboard, in runes
	DescriptionWidth int `yaml:"description_width"`
}

const (
	defaultBackupFolder     = "ProjectManager_Backups"
	defaultDescriptionWidth = 50
)

// DefaultPreferences returns the default behavioral settings
func DefaultPreferences() Preferences {
	autoSave := true
	return Preferences{
		AutoSave:         &autoSave,
		BackupFolder:     defaultBackupFolder,
		DescriptionWidth: defaultDescriptionWidth,
	}
}

// AutoSaveEnabled reports the auto-save setting, defaulting to on
func (p Preferences) AutoSaveEnabled() bool {
	return p.AutoSave == nil || *p.AutoSave
}

// applyDefaults fills in missing preferences with defaults
func (p *Preferences) applyDefaults() {
	defaults := DefaultPreferences()

	if p.AutoSave == nil {
		p.AutoSave = defaults.AutoSave
	}
	if p.BackupFolder == "" {
		p.BackupFolder = defaults.BackupFolder
	}
	if p.DescriptionWidth <= 0 {
		p.DescriptionWidth = defaults.DescriptionWidth
	}
}
