package logging

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// CaseLog is one judged accusation as stored in the journal.
type CaseLog struct {
	ID        int       `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	SessionID string    `json:"session_id"`
	Scenario  string    `json:"scenario"`
	Accused   string    `json:"accused"`
	Count     int       `json:"clue_count"`
	Sustained bool      `json:"sustained"`
	Clues     []string  `json:"clues"`
	Trail     []string  `json:"trail"`
}

type CaseLogger struct {
	db *sql.DB
}

func NewCaseLogger(path string) (*CaseLogger, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	logger := &CaseLogger{db: db}
	if err := logger.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return logger, nil
}

func (cl *CaseLogger) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS cases (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		session_id TEXT NOT NULL,
		scenario TEXT NOT NULL,
		accused TEXT NOT NULL,
		clue_count INTEGER NOT NULL,
		sustained INTEGER NOT NULL,
		clues TEXT NOT NULL,
		trail TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_cases_timestamp ON cases(timestamp);
	CREATE INDEX IF NOT EXISTS idx_cases_session ON cases(session_id);
	`

	_, err := cl.db.Exec(schema)
	return err
}

func (cl *CaseLogger) LogVerdict(entry CaseLog) error {
	cluesJSON, err := json.Marshal(nonNil(entry.Clues))
	if err != nil {
		return fmt.Errorf("failed to marshal clues: %w", err)
	}

	trailJSON, err := json.Marshal(nonNil(entry.Trail))
	if err != nil {
		return fmt.Errorf("failed to marshal trail: %w", err)
	}

	_, err = cl.db.Exec(`
		INSERT INTO cases (session_id, scenario, accused, clue_count, sustained, clues, trail)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, entry.SessionID, entry.Scenario, entry.Accused, entry.Count, entry.Sustained, string(cluesJSON), string(trailJSON))

	return err
}

func (cl *CaseLogger) GetRecentCases(limit int) ([]CaseLog, error) {
	rows, err := cl.db.Query(`
		SELECT id, timestamp, session_id, scenario, accused, clue_count, sustained, clues, trail
		FROM cases
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cases []CaseLog
	for rows.Next() {
		var c CaseLog
		var clues, trail string
		err := rows.Scan(&c.ID, &c.Timestamp, &c.SessionID, &c.Scenario, &c.Accused,
			&c.Count, &c.Sustained, &clues, &trail)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(clues), &c.Clues); err != nil {
			return nil, fmt.Errorf("case %d: failed to parse clues: %w", c.ID, err)
		}
		if err := json.Unmarshal([]byte(trail), &c.Trail); err != nil {
			return nil, fmt.Errorf("case %d: failed to parse trail: %w", c.ID, err)
		}
		cases = append(cases, c)
	}

	return cases, rows.Err()
}

func (cl *CaseLogger) Close() error {
	return cl.db.Close()
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
