package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"img2cal/internal/announcement"
	"img2cal/internal/announcement/repository"
	"img2cal/internal/model"
	pkgLog "img2cal/pkg/log"
)

// Store is the SQLite-backed announcement repository.
type Store struct {
	db *sqlx.DB
	l  pkgLog.Logger
}

// New creates a new Store backed by the given database.
func New(db *sqlx.DB, l pkgLog.Logger) *Store {
	return &Store{db: db, l: l}
}

type announcementRow struct {
	ID                    string         `db:"id"`
	Title                 string         `db:"title"`
	URL                   string         `db:"url"`
	PostedAt              string         `db:"posted_at"`
	Body                  string         `db:"body"`
	Approved              sql.NullBool   `db:"approved"`
	CalendarData          sql.NullString `db:"calendar_data"`
	Reason                string         `db:"reason"`
	RevalidationRequested bool           `db:"revalidation_requested"`
}

type imageRow struct {
	AnnouncementID string `db:"announcement_id"`
	Idx            int    `db:"idx"`
	URL            string `db:"url"`
	OCRText        string `db:"ocr_text"`
}

func (r announcementRow) toModel() (model.Announcement, error) {
	a := model.Announcement{
		ID:                    r.ID,
		Title:                 r.Title,
		URL:                   r.URL,
		PostedAt:              r.PostedAt,
		Body:                  r.Body,
		Reason:                r.Reason,
		RevalidationRequested: r.RevalidationRequested,
	}

	if r.Approved.Valid {
		approved := r.Approved.Bool
		a.Approved = &approved
	}

	if r.CalendarData.Valid && r.CalendarData.String != "" {
		var cd model.CalendarData
		if err := json.Unmarshal([]byte(r.CalendarData.String), &cd); err != nil {
			return model.Announcement{}, fmt.Errorf("failed to decode calendar data for %s: %w", r.ID, err)
		}
		a.CalendarData = &cd
	}

	return a, nil
}

// Create stores a new announcement with its image list.
func (s *Store) Create(ctx context.Context, a model.Announcement) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO announcements (id, title, url, posted_at, body, reason) VALUES (?, ?, ?, ?, ?, ?)`,
		a.ID, a.Title, a.URL, a.PostedAt, a.Body, a.Reason,
	)
	if err != nil {
		return fmt.Errorf("failed to insert announcement %s: %w", a.ID, err)
	}

	for i, img := range a.Images {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO announcement_images (announcement_id, idx, url, ocr_text) VALUES (?, ?, ?, ?)`,
			a.ID, i, img.URL, img.OCRText,
		)
		if err != nil {
			return fmt.Errorf("failed to insert image %d of %s: %w", i, a.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit announcement %s: %w", a.ID, err)
	}

	return nil
}

// Exists reports whether an announcement with the given ID is stored.
func (s *Store) Exists(ctx context.Context, id string) (bool, error) {
	var n int
	err := s.db.GetContext(ctx, &n, `SELECT COUNT(1) FROM announcements WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to check announcement %s: %w", id, err)
	}
	return n > 0, nil
}

// Get loads one announcement with its images in index order.
func (s *Store) Get(ctx context.Context, id string) (model.Announcement, error) {
	var row announcementRow
	err := s.db.GetContext(ctx, &row, `SELECT * FROM announcements WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Announcement{}, announcement.ErrNotFound
	}
	if err != nil {
		return model.Announcement{}, fmt.Errorf("failed to load announcement %s: %w", id, err)
	}

	a, err := row.toModel()
	if err != nil {
		return model.Announcement{}, err
	}

	var images []imageRow
	err = s.db.SelectContext(ctx, &images,
		`SELECT * FROM announcement_images WHERE announcement_id = ? ORDER BY idx`, id)
	if err != nil {
		return model.Announcement{}, fmt.Errorf("failed to load images of %s: %w", id, err)
	}

	a.Images = make([]model.Image, 0, len(images))
	for _, img := range images {
		a.Images = append(a.Images, model.Image{URL: img.URL, OCRText: img.OCRText})
	}

	return a, nil
}

// List returns a full snapshot of all announcements with their images.
func (s *Store) List(ctx context.Context) ([]model.Announcement, error) {
	var rows []announcementRow
	if err := s.db.SelectContext(ctx, &rows, `SELECT * FROM announcements ORDER BY id`); err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}

	var images []imageRow
	err := s.db.SelectContext(ctx, &images,
		`SELECT * FROM announcement_images ORDER BY announcement_id, idx`)
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}

	imagesByID := make(map[string][]model.Image)
	for _, img := range images {
		imagesByID[img.AnnouncementID] = append(imagesByID[img.AnnouncementID], model.Image{
			URL:     img.URL,
			OCRText: img.OCRText,
		})
	}

	out := make([]model.Announcement, 0, len(rows))
	for _, row := range rows {
		a, err := row.toModel()
		if err != nil {
			// One corrupt record must not sink the snapshot.
			s.l.Errorf(ctx, "List: skipping %s: %v", row.ID, err)
			continue
		}
		a.Images = imagesByID[a.ID]
		out = append(out, a)
	}

	return out, nil
}

// SetImageOCRText stores OCR text for one image. The WHERE clause keeps a
// populated value from ever being rewritten.
func (s *Store) SetImageOCRText(ctx context.Context, id string, index int, ocrText string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE announcement_images SET ocr_text = ?
		 WHERE announcement_id = ? AND idx = ? AND ocr_text = ''`,
		ocrText, id, index,
	)
	if err != nil {
		return fmt.Errorf("failed to store ocr text for %s image %d: %w", id, index, err)
	}
	return nil
}

// SetVerification applies one round's verification decision.
func (s *Store) SetVerification(ctx context.Context, id string, opt repository.VerificationUpdate) error {
	var calendarJSON sql.NullString
	if opt.CalendarData != nil {
		data, err := json.Marshal(opt.CalendarData)
		if err != nil {
			return fmt.Errorf("failed to encode calendar data for %s: %w", id, err)
		}
		calendarJSON = sql.NullString{String: string(data), Valid: true}
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE announcements
		 SET approved = ?, calendar_data = ?, reason = ?, revalidation_requested = ?
		 WHERE id = ?`,
		opt.Approved, calendarJSON, opt.Reason, opt.RevalidationRequested, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update verification for %s: %w", id, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return announcement.ErrNotFound
	}

	return nil
}
