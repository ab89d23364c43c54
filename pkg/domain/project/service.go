// Package project serves project reads through the cache and keeps the
// cache coherent with the store on every write.
package project

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	kcache "github.com/Nucmaan/Task-Manager-Backend/pkg/cache"
	"github.com/Nucmaan/Task-Manager-Backend/pkg/domain"
	domerr "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/errors"
	kproject "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/project/db"
	"github.com/Nucmaan/Task-Manager-Backend/pkg/domain/user"
	xe "github.com/Nucmaan/Task-Manager-Backend/pkg/errors"
)

// Detail is a project with its creator's live display attributes.
// This is the shape cached under "projects" / "project:{id}".
type Detail struct {
	Id           int        `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Deadline     time.Time  `json:"deadline"`
	Status       string     `json:"status"`
	Priority     string     `json:"priority"`
	Progress     int        `json:"progress"`
	ProjectImage *string    `json:"project_image"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	CreatorId    int        `json:"creator_id"`
	CreatorName  string     `json:"creator_name"`
	CreatorEmail string     `json:"creator_email,omitempty"`
	CreatorRole  string     `json:"creator_role,omitempty"`
}

type Service struct {
	store     kproject.Interface
	cache     kcache.Client
	validator user.Validator
	logger    *log.Logger
}

func New(store kproject.Interface, cache kcache.Client, validator user.Validator, logger *log.Logger) *Service {
	return &Service{store: store, cache: cache, validator: validator, logger: logger}
}

// GetAll is cache-aside over the "projects" key. Cache failures fall through
// to the store; a read never fails because the cache is down.
func (s *Service) GetAll(ctx context.Context) ([]Detail, error) {
	key := kcache.KeyProjects()
	if raw, ok, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Printf("cache read failed for %s: %s", key, err)
	} else if ok {
		details := []Detail{}
		if err := json.Unmarshal(raw, &details); err == nil {
			return details, nil
		}
		s.logger.Printf("broken cache entry for %s, falling back to store", key)
	}

	projects, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]Detail, 0, len(projects))
	profiles := map[int]*domain.UserProfile{}
	for _, p := range projects {
		details = append(details, s.compose(ctx, p, profiles))
	}

	s.populate(ctx, key, details)
	return details, nil
}

// Get is cache-aside over the "project:{id}" key.
func (s *Service) Get(ctx context.Context, projectId int) (Detail, error) {
	key := kcache.KeyProject(projectId)
	if raw, ok, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Printf("cache read failed for %s: %s", key, err)
	} else if ok {
		detail := Detail{}
		if err := json.Unmarshal(raw, &detail); err == nil {
			return detail, nil
		}
		s.logger.Printf("broken cache entry for %s, falling back to store", key)
	}

	project, err := s.store.Get(ctx, projectId)
	if err != nil {
		return Detail{}, err
	}

	detail := s.compose(ctx, project, map[int]*domain.UserProfile{})
	s.populate(ctx, key, detail)
	return detail, nil
}

// NewProjectSpec is the validated-on-entry input of Create.
type NewProjectSpec struct {
	Name         string
	Description  string
	Deadline     time.Time
	CreatedBy    int
	Status       string // default "Pending"
	Priority     string // default "Medium"
	Progress     *int
	ProjectImage *string
}

func (s *Service) Create(ctx context.Context, spec NewProjectSpec) (domain.Project, error) {
	if spec.Name == "" || spec.Description == "" || spec.Deadline.IsZero() || spec.CreatedBy == 0 {
		return domain.Project{}, fmt.Errorf(
			"%w: name, description, deadline and created_by are required", domerr.ErrInvalid,
		)
	}

	status := domain.ProjectPending
	if spec.Status != "" {
		st, err := domain.AsProjectStatus(spec.Status)
		if err != nil {
			return domain.Project{}, fmt.Errorf("%w: %s", domerr.ErrInvalid, err)
		}
		status = st
	}

	priority := domain.PriorityMedium
	if spec.Priority != "" {
		pr, err := domain.AsProjectPriority(spec.Priority)
		if err != nil {
			return domain.Project{}, fmt.Errorf("%w: %s", domerr.ErrInvalid, err)
		}
		priority = pr
	}

	progress := 0
	if spec.Progress != nil {
		if *spec.Progress < 0 || 100 < *spec.Progress {
			return domain.Project{}, fmt.Errorf(
				"%w: progress should be between 0 and 100", domerr.ErrInvalid,
			)
		}
		progress = *spec.Progress
	}

	// remote validation happens before any write; it cannot be rolled back.
	_, outcome, lookErr := s.validator.Lookup(ctx, spec.CreatedBy)
	switch outcome {
	case user.Present:
	case user.Absent:
		return domain.Project{}, fmt.Errorf("user %d: %w", spec.CreatedBy, domerr.ErrMissing)
	default:
		if lookErr != nil {
			s.logger.Printf("creator lookup failed for user %d: %s", spec.CreatedBy, lookErr)
		}
		return domain.Project{}, fmt.Errorf("user %d: %w", spec.CreatedBy, domerr.ErrUnavailable)
	}

	project, err := s.store.Create(ctx, kproject.NewProject{
		Name:         spec.Name,
		Description:  spec.Description,
		Deadline:     spec.Deadline,
		CreatedBy:    spec.CreatedBy,
		Status:       status,
		Priority:     priority,
		Progress:     progress,
		ProjectImage: spec.ProjectImage,
	})
	if err != nil {
		return domain.Project{}, err
	}

	if err := s.cache.Del(ctx, kcache.KeyProjects()); err != nil {
		return domain.Project{}, xe.WrapWithNote("cache invalidation failed after project create", err)
	}
	return project, nil
}

func (s *Service) Update(ctx context.Context, projectId int, change kproject.ProjectChange) (domain.Project, error) {
	if change.Status != nil {
		if _, err := domain.AsProjectStatus(string(*change.Status)); err != nil {
			return domain.Project{}, fmt.Errorf("%w: %s", domerr.ErrInvalid, err)
		}
	}
	if change.Priority != nil {
		if _, err := domain.AsProjectPriority(string(*change.Priority)); err != nil {
			return domain.Project{}, fmt.Errorf("%w: %s", domerr.ErrInvalid, err)
		}
	}
	if change.Progress != nil && (*change.Progress < 0 || 100 < *change.Progress) {
		return domain.Project{}, fmt.Errorf("%w: progress should be between 0 and 100", domerr.ErrInvalid)
	}

	project, err := s.store.Update(ctx, projectId, change)
	if err != nil {
		return domain.Project{}, err
	}

	if err := s.cache.Del(ctx, kcache.KeyProject(projectId), kcache.KeyProjects()); err != nil {
		return domain.Project{}, xe.WrapWithNote("cache invalidation failed after project update", err)
	}
	return project, nil
}

func (s *Service) Delete(ctx context.Context, projectId int) error {
	deleted, err := s.store.Delete(ctx, projectId)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("project %d: %w", projectId, domerr.ErrMissing)
	}

	if err := s.cache.Del(ctx, kcache.KeyProject(projectId), kcache.KeyProjects()); err != nil {
		return xe.WrapWithNote("cache invalidation failed after project delete", err)
	}
	return nil
}

// compose attaches the creator's live profile. profiles memoizes lookups,
// nil meaning "looked up, not found", so a listing asks the user service
// once per distinct creator.
func (s *Service) compose(ctx context.Context, p domain.Project, profiles map[int]*domain.UserProfile) Detail {
	detail := Detail{
		Id:           p.Id,
		Name:         p.Name,
		Description:  p.Description,
		Deadline:     p.Deadline,
		Status:       string(p.Status),
		Priority:     string(p.Priority),
		Progress:     p.Progress,
		ProjectImage: p.ProjectImage,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		CreatorId:    p.CreatedBy,
		CreatorName:  "Unknown User",
	}

	profile, ok := profiles[p.CreatedBy]
	if !ok {
		looked, outcome, err := s.validator.Lookup(ctx, p.CreatedBy)
		if outcome == user.Present {
			profile = &looked
		} else if err != nil {
			// reads never fail on enrichment; show the placeholder.
			s.logger.Printf("creator lookup failed for user %d: %s", p.CreatedBy, err)
		}
		profiles[p.CreatedBy] = profile
	}
	if profile == nil {
		return detail
	}

	detail.CreatorName = profile.Name
	detail.CreatorEmail = profile.Email
	detail.CreatorRole = profile.Role
	return detail
}

func (s *Service) populate(ctx context.Context, key string, val any) {
	raw, err := json.Marshal(val)
	if err != nil {
		s.logger.Printf("cannot serialize cache entry for %s: %s", key, err)
		return
	}
	if err := s.cache.Set(ctx, key, raw); err != nil {
		s.logger.Printf("cache populate failed for %s: %s", key, err)
	}
}
