package models

import "time"

// StateDocument is the persisted application state: the player roster in
// display order and every recorded game in insertion order.
type StateDocument struct {
	Players []string `json:"players"`
	Games   []Game   `json:"games"`
}

// ExportDocument is the portable form of the state document. On import a
// nil Players or Games field leaves the corresponding state unchanged.
type ExportDocument struct {
	Players    []string  `json:"players"`
	Games      []Game    `json:"games"`
	ExportDate time.Time `json:"exportDate"`
}
