package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/scrollscene/config"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the debug settings stored on disk
type SavedSettings struct {
	MaterialColor string `json:"materialColor"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "scrollscene",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ApplySavedSettingsGlobal applies loaded settings to the configuration
// before the first scene is created.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil || saved.MaterialColor == "" {
		return
	}
	if _, err := cfg.ParseHexColor(saved.MaterialColor); err != nil {
		log.Printf("Warning: Ignoring saved material color: %v", err)
		return
	}
	cfg.Material.Color = saved.MaterialColor
}
