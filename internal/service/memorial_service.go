package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/moyan78641/memoria/internal/model"
	"github.com/moyan78641/memoria/internal/repository"
)

// ErrInvalidInput marks validation failures so handlers can answer 400.
var ErrInvalidInput = errors.New("invalid input")

// MemorialInput carries the user-editable fields of a memorial.
type MemorialInput struct {
	Name         string  `json:"name"`
	MemorialType string  `json:"memorial_type"`
	DateMode     string  `json:"date_mode"`
	SolarDate    *string `json:"solar_date"`
	LunarMonth   *int    `json:"lunar_month"`
	LunarDay     *int    `json:"lunar_day"`
	LunarLeap    bool    `json:"lunar_leap"`
	StartYear    *int    `json:"start_year"`
	Person       *string `json:"person"`
	GroupName    *string `json:"group_name"`
	Note         *string `json:"note"`
	Recurring    *bool   `json:"recurring"`
}

// MemorialService wraps memorial CRUD with the date-mode invariant: exactly
// one of solar_date or lunar_month+lunar_day is populated, matching date_mode.
type MemorialService struct {
	repo *repository.MemorialRepository
}

func NewMemorialService(repo *repository.MemorialRepository) *MemorialService {
	return &MemorialService{repo: repo}
}

func (s *MemorialService) Create(ctx context.Context, input MemorialInput) (*model.Memorial, error) {
	m := model.Memorial{Recurring: true}
	if err := applyInput(&m, input); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *MemorialService) Update(ctx context.Context, id uint, input MemorialInput) (*model.Memorial, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyInput(m, input); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MemorialService) Get(ctx context.Context, id uint) (*model.Memorial, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *MemorialService) List(ctx context.Context, filter repository.MemorialFilter) ([]model.Memorial, error) {
	return s.repo.List(ctx, filter)
}

// Delete removes the memorial and cascades to its reminder rules.
func (s *MemorialService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *MemorialService) Groups(ctx context.Context) ([]string, error) {
	return s.repo.ListGroups(ctx)
}

func applyInput(m *model.Memorial, input MemorialInput) error {
	if input.Name == "" {
		return fmt.Errorf("%w: 名称不能为空", ErrInvalidInput)
	}
	m.Name = input.Name

	m.MemorialType = input.MemorialType
	if m.MemorialType == "" {
		m.MemorialType = model.TypeCustom
	}

	m.DateMode = input.DateMode
	if m.DateMode == "" {
		m.DateMode = model.DateModeSolar
	}

	switch m.DateMode {
	case model.DateModeSolar:
		if input.SolarDate == nil {
			return fmt.Errorf("%w: 阳历模式需要 solar_date", ErrInvalidInput)
		}
		if _, _, err := parseMonthDay(*input.SolarDate); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		m.SolarDate = input.SolarDate
		m.LunarMonth = nil
		m.LunarDay = nil
		m.LunarLeap = false
	case model.DateModeLunar:
		if input.LunarMonth == nil || input.LunarDay == nil {
			return fmt.Errorf("%w: 农历模式需要 lunar_month 和 lunar_day", ErrInvalidInput)
		}
		if *input.LunarMonth < 1 || *input.LunarMonth > 12 {
			return fmt.Errorf("%w: 农历月份无效", ErrInvalidInput)
		}
		if *input.LunarDay < 1 || *input.LunarDay > 30 {
			return fmt.Errorf("%w: 农历日期无效", ErrInvalidInput)
		}
		m.LunarMonth = input.LunarMonth
		m.LunarDay = input.LunarDay
		m.LunarLeap = input.LunarLeap
		m.SolarDate = nil
	default:
		return fmt.Errorf("%w: date_mode 仅支持 solar / lunar", ErrInvalidInput)
	}

	m.StartYear = input.StartYear
	m.Person = input.Person
	m.GroupName = input.GroupName
	m.Note = input.Note
	if input.Recurring != nil {
		m.Recurring = *input.Recurring
	}
	return nil
}
