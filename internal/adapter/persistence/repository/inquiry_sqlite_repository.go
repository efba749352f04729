package repository

import (
	"context"
	"database/sql"
	"time"

	"plotsite/internal/domain/entities"
	"plotsite/internal/usecase/interfaces"
)

// InquirySQLiteRepository appends leads to a local SQLite table. It backs
// single-host deployments and the CLI.
type InquirySQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.IInquiryRepository = (*InquirySQLiteRepository)(nil)

func NewInquirySQLiteRepository(db *sql.DB) *InquirySQLiteRepository {
	return &InquirySQLiteRepository{db: db}
}

func (r *InquirySQLiteRepository) EnsureSchema(ctx context.Context) error {
	const createTable = `
CREATE TABLE IF NOT EXISTS inquiries (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL DEFAULT '',
  phone TEXT NOT NULL,
  message TEXT NOT NULL DEFAULT '',
  plot_number TEXT NOT NULL DEFAULT '',
  parcel_id INTEGER,
  created_at TEXT NOT NULL
);
`
	if _, err := r.db.ExecContext(ctx, createTable); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_inquiries_created_at ON inquiries(created_at);`)
	return err
}

func (r *InquirySQLiteRepository) Create(ctx context.Context, i entities.Inquiry) (entities.Inquiry, error) {
	var parcelID sql.NullInt64
	if i.ParcelID != nil {
		parcelID = sql.NullInt64{Int64: int64(*i.ParcelID), Valid: true}
	}
	_, err := r.db.ExecContext(ctx, `
INSERT INTO inquiries (id, name, email, phone, message, plot_number, parcel_id, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		i.ID, i.Name, i.Email, i.Phone, i.Message, i.PlotNumber(), parcelID,
		i.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return entities.Inquiry{}, err
	}
	return i, nil
}

// ListRecent returns the newest leads first. Used by the CLI for the sales
// desk; the HTTP API never reads leads back.
func (r *InquirySQLiteRepository) ListRecent(ctx context.Context, limit int) ([]entities.Inquiry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, email, phone, message, parcel_id, created_at
FROM inquiries
ORDER BY created_at DESC, id
LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entities.Inquiry
	for rows.Next() {
		var (
			i         entities.Inquiry
			parcelID  sql.NullInt64
			createdAt string
		)
		if err := rows.Scan(&i.ID, &i.Name, &i.Email, &i.Phone, &i.Message, &parcelID, &createdAt); err != nil {
			return nil, err
		}
		if parcelID.Valid {
			id := int(parcelID.Int64)
			i.ParcelID = &id
		}
		i.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		out = append(out, i)
	}
	return out, rows.Err()
}
