package activitylog

import (
	"context"
	"encoding/json"
	"os"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/lexiqai/tts-server/internal/observability"
)

// ActivityType tags which endpoint produced an entry
type ActivityType string

const (
	TypeTTS       ActivityType = "tts"
	TypeTTSBase64 ActivityType = "tts_base64"
)

// Status is the recorded outcome of one request attempt
type Status string

const (
	StatusSuccess         Status = "success"
	StatusInvalidArgument Status = "invalid_argument"
	StatusAPIError        Status = "api_error"
	StatusError           Status = "error"
)

// Entry is one activity log row. Request and Response are JSON-serialized
// snapshots; entries are written once and never mutated.
type Entry struct {
	ServiceName  string
	ActivityType ActivityType
	Request      any
	Response     any
	Status       Status
	User         string // optional, empty means NULL
}

const insertSQL = `
INSERT INTO activity_log (service_name, activity_type, request, response, status, "user", host)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

// inserter is the slice of pgxpool.Pool the recorder needs; Exec acquires a
// pooled connection for the duration of one statement and releases it
type inserter interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Recorder writes activity log entries on a best-effort basis. Record never
// returns an error: failures are logged internally and swallowed so the
// parent request is unaffected. A Recorder without a pool is a no-op.
type Recorder struct {
	db     inserter
	logger zerolog.Logger
}

// NewRecorder creates a Recorder backed by the given pool. A nil pool yields
// a no-op Recorder, matching a deployment with activity logging disabled.
func NewRecorder(pool *pgxpool.Pool) *Recorder {
	r := &Recorder{logger: observability.GetLogger()}
	if pool != nil {
		r.db = pool
	}
	return r
}

// Record writes one entry. All failures (serialization, connection
// acquisition, insert) are contained here.
func (r *Recorder) Record(ctx context.Context, entry Entry) {
	if r.db == nil {
		r.logger.Warn().
			Str("activity_type", string(entry.ActivityType)).
			Msg("Activity log pool not initialized, skipping entry")
		observability.RecordActivityLogWrite("skipped")
		return
	}

	// encoding/json preserves non-ASCII runes, which the log consumers rely on
	requestJSON, err := json.Marshal(entry.Request)
	if err != nil {
		r.logger.Error().Err(err).Msg("Failed to serialize activity log request snapshot")
		observability.RecordActivityLogWrite("error")
		return
	}
	responseJSON, err := json.Marshal(entry.Response)
	if err != nil {
		r.logger.Error().Err(err).Msg("Failed to serialize activity log response snapshot")
		observability.RecordActivityLogWrite("error")
		return
	}

	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}

	var user any
	if entry.User != "" {
		user = entry.User
	}

	_, err = r.db.Exec(ctx, insertSQL,
		entry.ServiceName,
		string(entry.ActivityType),
		string(requestJSON),
		string(responseJSON),
		string(entry.Status),
		user,
		host,
	)
	if err != nil {
		r.logger.Error().Err(err).
			Str("activity_type", string(entry.ActivityType)).
			Str("status", string(entry.Status)).
			Msg("Failed to write activity log entry")
		observability.RecordActivityLogWrite("error")
		return
	}

	observability.RecordActivityLogWrite("ok")
}
