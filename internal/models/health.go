package models

// ComponentStatus - состояние одной внешней зависимости
type ComponentStatus struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}
