// pkg/api/results_v1.go
package api

// HitV1 is the stable JSON/JSONL schema for one reported HSP.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type HitV1 struct {
	Rank       int     `json:"rank"` // 1-based
	SequenceID string  `json:"sequence_id"`
	Species    string  `json:"species"`
	Score      int     `json:"score"`
	Identity   float64 `json:"identity"` // percent
	DBStart    int     `json:"db_start"`
	DBEnd      int     `json:"db_end"` // inclusive
	QStart     int     `json:"q_start"`
	QEnd       int     `json:"q_end"` // inclusive
	DBAligned  string  `json:"db_aligned,omitempty"`
	MatchLine  string  `json:"match_line,omitempty"`
	QAligned   string  `json:"q_aligned,omitempty"`
}

// QueryResultV1 groups the hits reported for one query.
type QueryResultV1 struct {
	Query       string  `json:"query"`
	QueryLength int     `json:"query_length"`
	BestSpecies string  `json:"best_species,omitempty"`
	Candidates  int     `json:"candidates,omitempty"` // HSPs before merging
	Merged      int     `json:"merged,omitempty"`     // HSPs after merging
	Hits        []HitV1 `json:"hits"`
}

// IndexStatsV1 is the schema of `kblast index -o json`.
type IndexStatsV1 struct {
	File      string `json:"file"`
	K         int    `json:"k"`
	Sequences int    `json:"sequences"`
	Bases     int    `json:"bases"`
	Windows   int    `json:"windows"`
	Indexed   int    `json:"indexed"`
	Skipped   int    `json:"skipped"`
	Keys      int    `json:"keys"`
}
