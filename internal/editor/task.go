package editor

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/amonks/tt/task"
)

// localDatetimeLayout matches a TOML local date-time. Fractional seconds
// are written only when present.
const localDatetimeLayout = "2006-01-02T15:04:05.999999999"

// TaskData represents the data used to render the TOML template.
type TaskData struct {
	// IsUpdate is true when editing an existing task.
	IsUpdate bool
	// ID is the task ID (only for updates).
	ID int
	// Title is the task title.
	Title string
	// Priority is the task priority (low, medium, high).
	Priority string
	// ExpiresAt is the task deadline.
	ExpiresAt time.Time
	// Status is the current status (only for updates, read-only).
	Status string
	// Bullets is the checklist. Only editable on create.
	Bullets []task.Bullet
	// Description is the task description.
	Description string
}

// DefaultCreateData returns TaskData with default values for creating a new
// task. The deadline defaults to one day after now.
func DefaultCreateData(now time.Time) TaskData {
	return TaskData{
		Priority:  string(task.PriorityLow),
		ExpiresAt: now.Add(24 * time.Hour).Truncate(time.Minute),
	}
}

// DataFromTask creates TaskData from an existing task for editing.
func DataFromTask(t *task.Task) TaskData {
	return TaskData{
		IsUpdate:    true,
		ID:          t.ID,
		Title:       t.Title,
		Priority:    string(t.Priority),
		ExpiresAt:   t.ExpiresAt,
		Status:      string(t.Status),
		Bullets:     t.Bullets,
		Description: t.Description,
	}
}

var taskTemplate = template.Must(template.New("task").Funcs(template.FuncMap{
	"datetime": func(t time.Time) string {
		return t.In(time.Local).Format(localDatetimeLayout)
	},
	"checkbox": func(done bool) string {
		if done {
			return "x"
		}
		return " "
	},
}).Parse(`title = {{ printf "%q" .Title }}
priority = {{ printf "%q" .Priority }} # low, medium, high
expires = {{ datetime .ExpiresAt }}
{{- if .IsUpdate }}
# status: {{ .Status }}
{{- range $i, $b := .Bullets }}
# [{{ checkbox $b.Done }}] {{ $b.Text }}
{{- end }}
{{- else }}
{{- range .Bullets }}

[[bullets]]
text = {{ printf "%q" .Text }}
{{- else }}

# [[bullets]]
# text = "first step"
{{- end }}
{{- end }}
---
{{ .Description }}
`))

// RenderTaskTOML renders the task data as a TOML string for editing.
func RenderTaskTOML(data TaskData) (string, error) {
	var buf bytes.Buffer
	if err := taskTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

// ParsedBullet is a checklist item read from the editor.
type ParsedBullet struct {
	Text string `toml:"text"`
}

// ParsedTask represents the parsed result from the TOML editor output.
type ParsedTask struct {
	Title       string         `toml:"title"`
	Priority    string         `toml:"priority"`
	Expires     time.Time      `toml:"expires"`
	Bullets     []ParsedBullet `toml:"bullets"`
	Description string         `toml:"-"`
}

// ParseTaskTOML parses the TOML content from the editor.
func ParseTaskTOML(content string) (*ParsedTask, error) {
	frontmatter, body := splitFrontmatter(content)

	var parsed ParsedTask
	meta, err := toml.Decode(frontmatter, &parsed)
	if err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}
	parsed.Description = strings.TrimSpace(body)

	if err := task.ValidateTitle(parsed.Title); err != nil {
		return nil, err
	}
	if strings.TrimSpace(parsed.Priority) == "" {
		parsed.Priority = string(task.PriorityLow)
	}
	priority, err := task.ParsePriority(parsed.Priority)
	if err != nil {
		return nil, err
	}
	parsed.Priority = string(priority)
	if !meta.IsDefined("expires") {
		return nil, task.ErrMissingExpiry
	}
	parsed.Expires = asLocal(parsed.Expires)
	for _, b := range parsed.Bullets {
		if err := task.ValidateBulletText(b.Text); err != nil {
			return nil, err
		}
	}

	return &parsed, nil
}

// asLocal reinterprets a zoneless TOML date-time as wall-clock time in the
// local zone. Values carrying an explicit offset are kept as is.
func asLocal(t time.Time) time.Time {
	if name, _ := t.Zone(); !strings.HasPrefix(name, "datetime-local") {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.Local)
}

func splitFrontmatter(content string) (string, string) {
	content = strings.TrimLeft(content, "\n")
	if content == "" {
		return "", ""
	}

	lines := strings.Split(content, "\n")
	separatorIndex := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "---" {
			separatorIndex = i
			break
		}
	}
	if separatorIndex == -1 {
		return content, ""
	}

	frontmatter := strings.Join(lines[:separatorIndex], "\n")
	body := strings.Join(lines[separatorIndex+1:], "\n")
	return frontmatter, body
}

func createTaskTempFile() (*os.File, error) {
	return os.CreateTemp("", "tt-task-*.md")
}

// EditTaskWithData opens the editor with pre-populated data and returns the parsed result.
func EditTaskWithData(data TaskData) (*ParsedTask, error) {
	content, err := RenderTaskTOML(data)
	if err != nil {
		return nil, err
	}

	tmpfile, err := createTaskTempFile()
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpfile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpfile.WriteString(content); err != nil {
		tmpfile.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	if err := Edit(tmpPath); err != nil {
		return nil, err
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("read edited file: %w", err)
	}

	return ParseTaskTOML(string(edited))
}

// ToAddOptions converts a ParsedTask to task.AddOptions.
func (p *ParsedTask) ToAddOptions() task.AddOptions {
	bullets := make([]task.Bullet, 0, len(p.Bullets))
	for _, b := range p.Bullets {
		bullets = append(bullets, task.Bullet{Text: b.Text})
	}
	return task.AddOptions{
		Description: p.Description,
		ExpiresAt:   p.Expires,
		Priority:    task.Priority(p.Priority),
		Bullets:     bullets,
	}
}

// ToEditOptions converts a ParsedTask to task.EditOptions. Bullets are
// ignored; the checklist of an existing task only grows through AddBullet.
func (p *ParsedTask) ToEditOptions() task.EditOptions {
	priority := task.Priority(p.Priority)
	expires := p.Expires
	return task.EditOptions{
		Title:       &p.Title,
		Description: &p.Description,
		ExpiresAt:   &expires,
		Priority:    &priority,
	}
}
