package chart

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/admin/astro-services/kundli-api/internal/domain"
	"github.com/admin/astro-services/kundli-api/internal/ports/persistence"
	"github.com/admin/astro-services/kundli-api/internal/ports/repository"
)

// chartColumns имена колонок таблицы charts
type chartColumns struct {
	ID          string
	Name        string
	BirthDate   string
	Latitude    string
	Longitude   string
	Timezone    string
	Gender      string
	Ayanamsa    string
	HouseSystem string
	NodeMode    string
	Chart       string
	GeneratedAt string
	CreatedAt   string

	TableName string
}

var columns = chartColumns{
	ID:          "id",
	Name:        "name",
	BirthDate:   "birth_date",
	Latitude:    "latitude",
	Longitude:   "longitude",
	Timezone:    "timezone",
	Gender:      "gender",
	Ayanamsa:    "ayanamsa",
	HouseSystem: "house_system",
	NodeMode:    "node_mode",
	Chart:       "chart",
	GeneratedAt: "generated_at",
	CreatedAt:   "created_at",

	TableName: "charts",
}

func (c chartColumns) allColumns() string {
	return strings.Join([]string{
		c.ID, c.Name, c.BirthDate, c.Latitude, c.Longitude, c.Timezone, c.Gender,
		c.Ayanamsa, c.HouseSystem, c.NodeMode, c.Chart, c.GeneratedAt, c.CreatedAt,
	}, ", ")
}

// chartRow строка таблицы charts
type chartRow struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	BirthDate   time.Time `db:"birth_date"`
	Latitude    float64   `db:"latitude"`
	Longitude   float64   `db:"longitude"`
	Timezone    string    `db:"timezone"`
	Gender      string    `db:"gender"`
	Ayanamsa    string    `db:"ayanamsa"`
	HouseSystem string    `db:"house_system"`
	NodeMode    string    `db:"node_mode"`
	Chart       []byte    `db:"chart"`
	GeneratedAt time.Time `db:"generated_at"`
	CreatedAt   time.Time `db:"created_at"`
}

type Repository struct {
	db      persistence.Persistence
	Log     *slog.Logger
	columns chartColumns
}

func New(db persistence.Persistence, log *slog.Logger) repository.IChartRepo {
	return &Repository{
		db:      db,
		Log:     log,
		columns: columns,
	}
}

// Create сохраняет рассчитанную карту, снимок целиком кладётся в JSONB
func (r *Repository) Create(ctx context.Context, chart *domain.KundliData) error {
	payload, err := json.Marshal(chart)
	if err != nil {
		return fmt.Errorf("marshal chart %s: %w", chart.ID, err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, r.columns.TableName,
		r.columns.ID, r.columns.Name, r.columns.BirthDate, r.columns.Latitude,
		r.columns.Longitude, r.columns.Timezone, r.columns.Gender, r.columns.Ayanamsa,
		r.columns.HouseSystem, r.columns.NodeMode, r.columns.Chart, r.columns.GeneratedAt,
	)

	err = r.db.Exec(ctx, query,
		chart.ID,
		chart.Birth.Name,
		chart.Birth.BirthDate,
		chart.Birth.Latitude,
		chart.Birth.Longitude,
		chart.Birth.Timezone,
		chart.Birth.Gender,
		string(chart.Settings.Ayanamsa),
		string(chart.Settings.HouseSystem),
		string(chart.Settings.NodeMode),
		payload,
		chart.GeneratedAt,
	)
	if err != nil {
		return fmt.Errorf("insert chart %s: %w", chart.ID, err)
	}

	return nil
}

// GetByID возвращает карту по идентификатору
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.KundliData, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		r.columns.allColumns(), r.columns.TableName, r.columns.ID)

	var row chartRow
	if err := r.db.Get(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrChartNotFound
		}
		return nil, fmt.Errorf("select chart %s: %w", id, err)
	}

	return unmarshalRow(&row)
}

// ListRecent возвращает последние сохранённые карты
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]domain.KundliData, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s DESC LIMIT $1`,
		r.columns.allColumns(), r.columns.TableName, r.columns.CreatedAt)

	var rows []chartRow
	if err := r.db.Select(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("select recent charts: %w", err)
	}

	charts := make([]domain.KundliData, 0, len(rows))
	for i := range rows {
		chart, err := unmarshalRow(&rows[i])
		if err != nil {
			return nil, err
		}
		charts = append(charts, *chart)
	}

	return charts, nil
}

// DeleteOlderThan удаляет карты, созданные раньше cutoff, и возвращает количество удалённых
func (r *Repository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s < $1`,
		r.columns.TableName, r.columns.CreatedAt)

	deleted, err := r.db.ExecWithResult(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete old charts: %w", err)
	}

	return deleted, nil
}

func unmarshalRow(row *chartRow) (*domain.KundliData, error) {
	var chart domain.KundliData
	if err := json.Unmarshal(row.Chart, &chart); err != nil {
		return nil, fmt.Errorf("unmarshal chart %s: %w", row.ID, err)
	}
	return &chart, nil
}
