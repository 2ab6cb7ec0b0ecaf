package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/moyan78641/memoria/internal/model"
)

// MemorialFilter narrows List results. Zero values mean "no filter".
type MemorialFilter struct {
	Keyword      string // matches name or person, substring
	MemorialType string
	Group        string
}

// MemorialRepository handles CRUD for memorials.
type MemorialRepository struct {
	db *gorm.DB
}

func NewMemorialRepository(db *gorm.DB) *MemorialRepository {
	return &MemorialRepository{db: db}
}

func (r *MemorialRepository) Create(ctx context.Context, m *model.Memorial) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("create memorial: %w", err)
	}
	return nil
}

func (r *MemorialRepository) List(ctx context.Context, filter MemorialFilter) ([]model.Memorial, error) {
	q := r.db.WithContext(ctx).Model(&model.Memorial{})
	if filter.Keyword != "" {
		like := "%" + filter.Keyword + "%"
		q = q.Where("name LIKE ? OR person LIKE ?", like, like)
	}
	if filter.MemorialType != "" {
		q = q.Where("memorial_type = ?", filter.MemorialType)
	}
	if filter.Group != "" {
		q = q.Where("group_name = ?", filter.Group)
	}

	var memorials []model.Memorial
	if err := q.Order("created_at DESC").Find(&memorials).Error; err != nil {
		return nil, fmt.Errorf("list memorials: %w", err)
	}
	return memorials, nil
}

func (r *MemorialRepository) FindByID(ctx context.Context, id uint) (*model.Memorial, error) {
	var m model.Memorial
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MemorialRepository) Update(ctx context.Context, m *model.Memorial) error {
	// Save writes all fields so cleared optionals (person, note, ...) persist as NULL.
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return fmt.Errorf("update memorial: %w", err)
	}
	return nil
}

// Delete removes a memorial and all of its reminder rules in one transaction.
func (r *MemorialRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("memorial_id = ?", id).Delete(&model.Reminder{}).Error; err != nil {
			return fmt.Errorf("delete reminders: %w", err)
		}
		res := tx.Delete(&model.Memorial{}, id)
		if res.Error != nil {
			return fmt.Errorf("delete memorial: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// ListGroups returns the distinct non-empty group labels in use.
func (r *MemorialRepository) ListGroups(ctx context.Context) ([]string, error) {
	var groups []string
	err := r.db.WithContext(ctx).Model(&model.Memorial{}).
		Where("group_name IS NOT NULL AND group_name != ''").
		Distinct("group_name").
		Order("group_name").
		Pluck("group_name", &groups).Error
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return groups, nil
}

// ListWithReminders returns all memorials ordered by name, each with its
// reminder rules preloaded ordered by lead time.
func (r *MemorialRepository) ListWithReminders(ctx context.Context) ([]model.Memorial, error) {
	var memorials []model.Memorial
	err := r.db.WithContext(ctx).
		Preload("Reminders", func(db *gorm.DB) *gorm.DB {
			return db.Order("days_before")
		}).
		Order("name").
		Find(&memorials).Error
	if err != nil {
		return nil, fmt.Errorf("list memorials with reminders: %w", err)
	}
	return memorials, nil
}

// CountByType returns memorial counts grouped by memorial_type.
func (r *MemorialRepository) CountByType(ctx context.Context) (map[string]int64, error) {
	type row struct {
		MemorialType string
		Count        int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&model.Memorial{}).
		Select("memorial_type, COUNT(*) as count").
		Group("memorial_type").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count by type: %w", err)
	}
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.MemorialType] = r.Count
	}
	return counts, nil
}

// CountByCondition counts memorials matching an arbitrary where clause.
func (r *MemorialRepository) CountByCondition(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&model.Memorial{})
	if query != "" {
		q = q.Where(query, args...)
	}
	if err := q.Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count memorials: %w", err)
	}
	return n, nil
}

// CountGroups counts the distinct non-empty group labels.
func (r *MemorialRepository) CountGroups(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Memorial{}).
		Where("group_name IS NOT NULL AND group_name != ''").
		Distinct("group_name").
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count groups: %w", err)
	}
	return n, nil
}

// CountSolarByMonth returns, for each month 1..12, how many solar-mode
// memorials fall in it.
func (r *MemorialRepository) CountSolarByMonth(ctx context.Context) (map[int]int64, error) {
	type row struct {
		Month int
		Count int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&model.Memorial{}).
		Select("CAST(SUBSTR(solar_date, 1, 2) AS INTEGER) as month, COUNT(*) as count").
		Where("date_mode = ? AND solar_date IS NOT NULL", model.DateModeSolar).
		Group("month").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count by month: %w", err)
	}
	counts := make(map[int]int64, len(rows))
	for _, r := range rows {
		counts[r.Month] = r.Count
	}
	return counts, nil
}
