package store

import "encoding/json"

// DefaultDBPath is the default relative path for the SQLite DB
// (per-workspace). Open() creates the parent dir (e.g. .liuyao).
const DefaultDBPath = ".liuyao/liuyao.db"

// Reading is one saved divination: the inputs, the pillar key of the moment,
// and the full evaluated chart as JSON.
type Reading struct {
	ID        int64
	CreatedAt string // RFC3339 UTC
	Question  string
	DateInput string // the raw date-time string, if the reading came from one
	Code      string // main hexagram, 6-bit
	Changed   string // changed hexagram, empty for static readings
	Lines     []int  // changing-line positions
	BaZiKey   string // four-pillar key, e.g. 乙巳_丁亥_甲子_甲戌
	SanHeJu   string
	Chart     json.RawMessage // full engine.Chart payload
}

// Store is the persistence facade for reading history. CLI and MCP layers
// use only this interface; implementation is SQLite or in-memory.
type Store interface {
	SaveReading(r *Reading) (int64, error)
	GetReading(id int64) (*Reading, error)
	// ListReadings returns the most recent readings, newest first, without
	// the chart payload. limit <= 0 means no limit.
	ListReadings(limit int) ([]*Reading, error)
	DeleteReading(id int64) error
	Close() error
}
