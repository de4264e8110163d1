package systems

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/locomotion/components"
	"github.com/automoto/locomotion/tags"
	"github.com/quasilyte/gdata"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
)

const settingsKey = "settings"

// ItemStore is the subset of *gdata.Manager used for settings.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	LookSensitivityH float64 `json:"lookSensitivityH"`
	LookSensitivityV float64 `json:"lookSensitivityV"`
	HoldToSprint     bool    `json:"holdToSprint"`
}

// OpenSettingsStore opens the per-user gdata store for appName.
func OpenSettingsStore(appName string) (ItemStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open settings store: %w", err)
	}
	return m, nil
}

// LoadSettings returns nil without error when nothing has been saved yet.
func LoadSettings(store ItemStore) (*SavedSettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(settingsKey)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse saved settings: %w", err)
	}
	if settings.LookSensitivityH < 0 || settings.LookSensitivityV < 0 {
		log.Warn().
			Float64("h", settings.LookSensitivityH).
			Float64("v", settings.LookSensitivityV).
			Msg("ignoring saved negative look sensitivity")
		return nil, nil
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(store ItemStore, s *SavedSettings) error {
	if store == nil || s == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}

	if err := store.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// CurrentSettings reads the settings of the first character in w.
func CurrentSettings(w donburi.World) (*SavedSettings, bool) {
	e, ok := tags.Character.First(w)
	if !ok {
		return nil, false
	}
	rotation := components.Rotation.Get(e)
	input := components.Input.Get(e)
	return &SavedSettings{
		LookSensitivityH: rotation.Look.LookSensitivityH,
		LookSensitivityV: rotation.Look.LookSensitivityV,
		HoldToSprint:     input.HoldToSprint,
	}, true
}

// ApplySavedSettings applies loaded settings to every character.
func ApplySavedSettings(w donburi.World, saved *SavedSettings) {
	if saved == nil {
		return
	}

	tags.Character.Each(w, func(e *donburi.Entry) {
		rotation := components.Rotation.Get(e)
		rotation.Look.LookSensitivityH = saved.LookSensitivityH
		rotation.Look.LookSensitivityV = saved.LookSensitivityV

		input := components.Input.Get(e)
		if input.HoldToSprint != saved.HoldToSprint {
			input.HoldToSprint = saved.HoldToSprint
			input.SprintOn = false
		}
	})
}
