package monitor

import "time"

type Status struct {
	PostgreSQL    bool      `json:"postgresql"`
	Redis         bool      `json:"redis"`
	Journal       bool      `json:"journal"`
	JournalSize   int       `json:"journal_size"`
	ActiveService bool      `json:"active_service"`
	ClientService bool      `json:"client_service"`
	LastCheck     time.Time `json:"last_check"`
}
