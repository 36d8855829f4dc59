package model

import "time"

// Форматы снапшотов
const (
	SnapshotFormatJSON = "json"
	SnapshotFormatXML  = "xml"
)

// Snapshot — сохранённый документ системы в архиве Postgres.
type Snapshot struct {
	ID        int64     `json:"id"`
	Format    string    `json:"format"` // "json" или "xml"
	Payload   []byte    `json:"payload"`
	CreatedAt time.Time `json:"created_at"`
}
