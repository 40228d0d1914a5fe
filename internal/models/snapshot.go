package models

import "time"

// SnapshotVersion tags the serialized layout. Bump it when the layout changes.
const SnapshotVersion = 1

// Snapshot is the serialized copy of the store used for persistence
type Snapshot struct {
	Version int       `json:"version"`
	SavedAt time.Time `json:"savedAt"`
	Tasks   []Task    `json:"tasks"`
	Auth    AuthState `json:"auth"`
	View    ViewState `json:"view"`
}

// ViewState is the persisted display selection
type ViewState struct {
	CurrentView    View   `json:"currentView"`
	SelectedTaskID string `json:"selectedTaskId,omitempty"`
	StatusFilter   Status `json:"statusFilter,omitempty"`
}

// WeatherInfo is the display value returned by the weather lookup
type WeatherInfo struct {
	TemperatureCelsius float64 `json:"temperature"`
	Condition          string  `json:"condition"`
	IconURL            string  `json:"icon"`
}
