package storage

import (
	"database/sql"
	"encoding/json"
	"time"

	_ "embed"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/tgienger/ideavault/internal/errs"
	"github.com/tgienger/ideavault/internal/models"
)

//go:embed schema.sql
var schema string

// timeLayout keeps full timestamp precision through the TEXT columns.
const timeLayout = time.RFC3339Nano

// SQLiteStore is the alternate backend, one table per collection. Saves
// rewrite the whole table inside a transaction; row order is insertion
// order, so load order matches save order via rowid.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database file and initializes the
// schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, errs.Storagef(err, "open database %s", path)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errs.Storagef(err, "initialize schema")
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func encodeJSON(v any) string {
	b, _ := json.Marshal(v)
	return string(b)
}

func decodeTags(raw string) ([]string, error) {
	tags := []string{}
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func decodeUUIDs(raw string) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func nullUUID(id *uuid.UUID) any {
	if id == nil {
		return nil
	}
	return id.String()
}

func scanUUID(ns sql.NullString) (*uuid.UUID, error) {
	if !ns.Valid {
		return nil, nil
	}
	id, err := uuid.Parse(ns.String)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func nullTime(ts *time.Time) any {
	if ts == nil {
		return nil
	}
	return ts.UTC().Format(timeLayout)
}

func scanTime(ns sql.NullString) (*time.Time, error) {
	if !ns.Valid {
		return nil, nil
	}
	ts, err := time.Parse(timeLayout, ns.String)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

// LoadIdeas returns all persisted ideas in saved order.
func (s *SQLiteStore) LoadIdeas() ([]models.Idea, error) {
	rows, err := s.db.Query(`
		SELECT id, title, description, tags, status, project_id, created_at, updated_at
		FROM ideas ORDER BY rowid
	`)
	if err != nil {
		return nil, errs.Storagef(err, "query ideas")
	}
	defer rows.Close()

	ideas := []models.Idea{}
	for rows.Next() {
		var (
			i                    models.Idea
			id, created, updated string
			tags                 string
			projectID            sql.NullString
		)
		if err := rows.Scan(&id, &i.Title, &i.Description, &tags, &i.Status, &projectID, &created, &updated); err != nil {
			return nil, errs.Storagef(err, "scan idea row")
		}
		if err := fillIdea(&i, id, tags, projectID, created, updated); err != nil {
			return nil, errs.Storagef(err, "decode idea row")
		}
		ideas = append(ideas, i)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Storagef(err, "iterate ideas")
	}
	return ideas, nil
}

func fillIdea(i *models.Idea, id, tags string, projectID sql.NullString, created, updated string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	i.ID = parsed
	if i.Tags, err = decodeTags(tags); err != nil {
		return err
	}
	if i.ProjectID, err = scanUUID(projectID); err != nil {
		return err
	}
	if i.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
		return err
	}
	i.UpdatedAt, err = time.Parse(timeLayout, updated)
	return err
}

// SaveIdeas replaces the persisted idea collection.
func (s *SQLiteStore) SaveIdeas(ideas []models.Idea) error {
	tx, err := s.db.Begin()
	if err != nil {
		return errs.Storagef(err, "begin transaction")
	}
	defer tx.Rollback()

	if err := saveIdeasTx(tx, ideas); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return errs.Storagef(err, "commit ideas")
	}
	return nil
}

func saveIdeasTx(tx *sql.Tx, ideas []models.Idea) error {
	if _, err := tx.Exec("DELETE FROM ideas"); err != nil {
		return errs.Storagef(err, "clear ideas")
	}
	for _, i := range ideas {
		_, err := tx.Exec(`
			INSERT INTO ideas (id, title, description, tags, status, project_id, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, i.ID.String(), i.Title, i.Description, encodeJSON(i.Tags), string(i.Status),
			nullUUID(i.ProjectID), i.CreatedAt.UTC().Format(timeLayout), i.UpdatedAt.UTC().Format(timeLayout))
		if err != nil {
			return errs.Storagef(err, "insert idea %s", i.ID)
		}
	}
	return nil
}

// LoadProjects returns all persisted projects in saved order.
func (s *SQLiteStore) LoadProjects() ([]models.Project, error) {
	rows, err := s.db.Query(`
		SELECT id, title, description, milestone, url, repo, tags, status, idea_ids, created_at, updated_at
		FROM projects ORDER BY rowid
	`)
	if err != nil {
		return nil, errs.Storagef(err, "query projects")
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		var (
			p                 models.Project
			id, tags, ideaIDs string
			created, updated  string
		)
		if err := rows.Scan(&id, &p.Title, &p.Description, &p.Milestone, &p.URL, &p.Repo,
			&tags, &p.Status, &ideaIDs, &created, &updated); err != nil {
			return nil, errs.Storagef(err, "scan project row")
		}
		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, errs.Storagef(err, "decode project id")
		}
		p.ID = parsed
		if p.Tags, err = decodeTags(tags); err != nil {
			return nil, errs.Storagef(err, "decode project tags")
		}
		if p.IdeaIDs, err = decodeUUIDs(ideaIDs); err != nil {
			return nil, errs.Storagef(err, "decode project idea links")
		}
		if p.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
			return nil, errs.Storagef(err, "decode project created_at")
		}
		if p.UpdatedAt, err = time.Parse(timeLayout, updated); err != nil {
			return nil, errs.Storagef(err, "decode project updated_at")
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Storagef(err, "iterate projects")
	}
	return projects, nil
}

// SaveProjects replaces the persisted project collection.
func (s *SQLiteStore) SaveProjects(projects []models.Project) error {
	tx, err := s.db.Begin()
	if err != nil {
		return errs.Storagef(err, "begin transaction")
	}
	defer tx.Rollback()

	if err := saveProjectsTx(tx, projects); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return errs.Storagef(err, "commit projects")
	}
	return nil
}

func saveProjectsTx(tx *sql.Tx, projects []models.Project) error {
	if _, err := tx.Exec("DELETE FROM projects"); err != nil {
		return errs.Storagef(err, "clear projects")
	}
	for _, p := range projects {
		_, err := tx.Exec(`
			INSERT INTO projects (id, title, description, milestone, url, repo, tags, status, idea_ids, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, p.ID.String(), p.Title, p.Description, p.Milestone, p.URL, p.Repo,
			encodeJSON(p.Tags), string(p.Status), encodeJSON(p.IdeaIDs),
			p.CreatedAt.UTC().Format(timeLayout), p.UpdatedAt.UTC().Format(timeLayout))
		if err != nil {
			return errs.Storagef(err, "insert project %s", p.ID)
		}
	}
	return nil
}

// LoadTasks returns all persisted tasks in saved order.
func (s *SQLiteStore) LoadTasks() ([]models.Task, error) {
	rows, err := s.db.Query(`
		SELECT id, title, description, status, priority, due_date, project_id, idea_id, tags, created_at, updated_at
		FROM tasks ORDER BY rowid
	`)
	if err != nil {
		return nil, errs.Storagef(err, "query tasks")
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var (
			t                      models.Task
			id, tags               string
			due, projectID, ideaID sql.NullString
			created, updated       string
		)
		if err := rows.Scan(&id, &t.Title, &t.Description, &t.Status, &t.Priority,
			&due, &projectID, &ideaID, &tags, &created, &updated); err != nil {
			return nil, errs.Storagef(err, "scan task row")
		}
		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, errs.Storagef(err, "decode task id")
		}
		t.ID = parsed
		if t.Tags, err = decodeTags(tags); err != nil {
			return nil, errs.Storagef(err, "decode task tags")
		}
		if t.DueDate, err = scanTime(due); err != nil {
			return nil, errs.Storagef(err, "decode task due date")
		}
		if t.ProjectID, err = scanUUID(projectID); err != nil {
			return nil, errs.Storagef(err, "decode task project link")
		}
		if t.IdeaID, err = scanUUID(ideaID); err != nil {
			return nil, errs.Storagef(err, "decode task idea link")
		}
		if t.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
			return nil, errs.Storagef(err, "decode task created_at")
		}
		if t.UpdatedAt, err = time.Parse(timeLayout, updated); err != nil {
			return nil, errs.Storagef(err, "decode task updated_at")
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Storagef(err, "iterate tasks")
	}
	return tasks, nil
}

// SaveTasks replaces the persisted task collection.
func (s *SQLiteStore) SaveTasks(tasks []models.Task) error {
	tx, err := s.db.Begin()
	if err != nil {
		return errs.Storagef(err, "begin transaction")
	}
	defer tx.Rollback()

	if err := saveTasksTx(tx, tasks); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return errs.Storagef(err, "commit tasks")
	}
	return nil
}

func saveTasksTx(tx *sql.Tx, tasks []models.Task) error {
	if _, err := tx.Exec("DELETE FROM tasks"); err != nil {
		return errs.Storagef(err, "clear tasks")
	}
	for _, t := range tasks {
		_, err := tx.Exec(`
			INSERT INTO tasks (id, title, description, status, priority, due_date, project_id, idea_id, tags, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, t.ID.String(), t.Title, t.Description, string(t.Status), string(t.Priority),
			nullTime(t.DueDate), nullUUID(t.ProjectID), nullUUID(t.IdeaID), encodeJSON(t.Tags),
			t.CreatedAt.UTC().Format(timeLayout), t.UpdatedAt.UTC().Format(timeLayout))
		if err != nil {
			return errs.Storagef(err, "insert task %s", t.ID)
		}
	}
	return nil
}

// SaveAll rewrites all three collections inside a single transaction.
func (s *SQLiteStore) SaveAll(ideas []models.Idea, projects []models.Project, tasks []models.Task) error {
	tx, err := s.db.Begin()
	if err != nil {
		return errs.Storagef(err, "begin transaction")
	}
	defer tx.Rollback()

	if err := saveIdeasTx(tx, ideas); err != nil {
		return err
	}
	if err := saveProjectsTx(tx, projects); err != nil {
		return err
	}
	if err := saveTasksTx(tx, tasks); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return errs.Storagef(err, "commit collections")
	}
	return nil
}
