package task

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var documentSchemaJSON string

var documentSchema = jsonschema.MustCompileString("schema.json", documentSchemaJSON)

// timestampLayouts are tried in order when reading timestamps. Layouts
// without a zone are interpreted in local time.
var timestampLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// storedTask mirrors Task with every field optional so that missing keys
// can be told apart from zero values.
type storedTask struct {
	ID          *int           `json:"id"`
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	CreatedDate *string        `json:"created_date"`
	ExpiryDate  *string        `json:"expiry_date"`
	Priority    *string        `json:"priority"`
	Status      *string        `json:"status"`
	Bullets     []storedBullet `json:"bullets"`
}

type storedBullet struct {
	Text *string `json:"text"`
	Done *bool   `json:"done"`
}

// Encode serializes tasks as the JSON document stored on disk.
func Encode(tasks []Task) ([]byte, error) {
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: encode tasks: %w", ErrPersistence, err)
	}
	return append(data, '\n'), nil
}

// Decode parses a stored document. Empty input yields no tasks. Missing
// fields fall back to their defaults, with timestamps defaulting to now.
func Decode(data []byte, now time.Time) ([]Task, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	if err := validateDocument(data); err != nil {
		return nil, err
	}

	var stored []storedTask
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("%w: parse tasks: %w", ErrPersistence, err)
	}

	tasks := make([]Task, 0, len(stored))
	for i, item := range stored {
		t, err := item.toTask(now)
		if err != nil {
			return nil, fmt.Errorf("%w: task %d: %w", ErrPersistence, i+1, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func validateDocument(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var document any
	if err := decoder.Decode(&document); err != nil {
		return fmt.Errorf("%w: parse tasks: %w", ErrPersistence, err)
	}

	err := documentSchema.Validate(document)
	if err == nil {
		return nil
	}
	var ve *jsonschema.ValidationError
	if errors.As(err, &ve) {
		leaf := firstLeafError(ve)
		location := leaf.InstanceLocation
		if location == "" {
			location = "/"
		}
		return fmt.Errorf("%w: invalid document at %s: %s", ErrPersistence, location, leaf.Message)
	}
	return fmt.Errorf("%w: validate tasks: %w", ErrPersistence, err)
}

func firstLeafError(err *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(err.Causes) > 0 {
		err = err.Causes[0]
	}
	return err
}

func (s storedTask) toTask(now time.Time) (Task, error) {
	t := Task{
		Title:       DefaultTitle,
		Description: DefaultDescription,
		CreatedAt:   now,
		ExpiresAt:   now,
		Priority:    PriorityLow,
		Status:      StatusNotStarted,
		Bullets:     []Bullet{},
	}

	if s.ID != nil {
		t.ID = *s.ID
	}
	if s.Title != nil {
		t.Title = *s.Title
	}
	if s.Description != nil {
		t.Description = *s.Description
	}
	if s.CreatedDate != nil {
		created, err := ParseTimestamp(*s.CreatedDate)
		if err != nil {
			return Task{}, fmt.Errorf("created_date: %w", err)
		}
		t.CreatedAt = created
	}
	if s.ExpiryDate != nil {
		expires, err := ParseTimestamp(*s.ExpiryDate)
		if err != nil {
			return Task{}, fmt.Errorf("expiry_date: %w", err)
		}
		t.ExpiresAt = expires
	}
	if s.Priority != nil {
		if priority, err := ParsePriority(*s.Priority); err == nil {
			t.Priority = priority
		}
	}
	if s.Status != nil {
		if status, err := ParseStatus(*s.Status); err == nil {
			t.Status = status
		}
	}
	for _, b := range s.Bullets {
		bullet := Bullet{}
		if b.Text != nil {
			bullet.Text = *b.Text
		}
		if b.Done != nil {
			bullet.Done = *b.Done
		}
		t.Bullets = append(t.Bullets, bullet)
	}

	return t, nil
}

// ParseTimestamp parses an ISO-8601 timestamp. Values without a zone are
// read in local time.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if parsed, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return parsed, nil
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", value)
}
