package repository

import (
	"context"

	"agriassist/internal/domain/entity"
)

// ExpertFilter narrows an expert listing. Empty fields impose no constraint;
// the supplied ones are ANDed.
type ExpertFilter struct {
	District       string // exact match
	Specialization string // membership in Expert.Specialization
	Language       string // membership in Expert.Languages
}

// IsEmpty reports whether the filter constrains nothing.
func (f ExpertFilter) IsEmpty() bool {
	return f.District == "" && f.Specialization == "" && f.Language == ""
}

// ExpertRepository defines the persistence operations for experts.
type ExpertRepository interface {
	CreateExpert(ctx context.Context, expert entity.Expert) (*entity.Expert, error)
	FindExpertByID(ctx context.Context, id string) (*entity.Expert, bool)
	ListExperts(ctx context.Context) []*entity.Expert
	ListExpertsByFilter(ctx context.Context, filter ExpertFilter) []*entity.Expert
}
