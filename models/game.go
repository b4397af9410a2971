package models

import "time"

// DateLayout is the calendar date format used throughout the application.
// Dates carry no time component; lexicographic order equals chronological order.
const DateLayout = "2006-01-02"

// Game represents one recorded round with one score per player.
// Games are immutable once recorded; the only mutation is deletion.
type Game struct {
	ID     string         `json:"id"`
	Date   string         `json:"date"`
	Scores map[string]int `json:"scores"`
}

// Score returns the player's score in this game, treating an absent
// entry as 0.
func (g Game) Score(player string) int {
	return g.Scores[player]
}

// Year returns the calendar year of the game's date, or 0 if the date
// cannot be parsed.
func (g Game) Year() int {
	t, err := time.Parse(DateLayout, g.Date)
	if err != nil {
		return 0
	}
	return t.Year()
}
