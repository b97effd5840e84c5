package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case HealthResult:
		o.printHealthResult(v)
	case RoomInfo:
		o.printRoomInfo(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// RoomInfo response type (matches API)
type RoomInfo struct {
	Code        string       `json:"roomId"`
	Settings    RoomSettings `json:"settings"`
	Players     int          `json:"playerCount"`
	Spectators  int          `json:"spectatorCount"`
	GameStarted bool         `json:"gameStarted"`
	Round       int          `json:"round"`
	CreatedAt   time.Time    `json:"createdAt"`
	PlayerNames []string     `json:"playerNames"`
}

// RoomSettings response type
type RoomSettings struct {
	MaxRounds int `json:"maxRounds"`
	RoundTime int `json:"roundTime"`
	TotalTime int `json:"totalTime"`
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}

func (o *Output) printRoomInfo(r RoomInfo) {
	state := "lobby"
	if r.GameStarted {
		state = fmt.Sprintf("round %d of %d", r.Round, r.Settings.MaxRounds)
	}
	fmt.Printf("Room: %s\n", r.Code)
	fmt.Printf("State: %s\n", state)
	fmt.Printf("Round Time: %ds\n", r.Settings.RoundTime)
	fmt.Printf("Created: %s\n", r.CreatedAt.Format(time.RFC3339))
	fmt.Printf("Spectators: %d\n", r.Spectators)
	fmt.Printf("Players (%d):\n", r.Players)
	if len(r.PlayerNames) > 0 {
		fmt.Printf("  %s\n", strings.Join(r.PlayerNames, ", "))
	}
}
