package hr

import (
	"fmt"

	"ecotech/internal/apperror"
	"ecotech/internal/model"
	"ecotech/internal/validate"
)

// CreateProject creates a project. Description may be empty.
func (s *HRService) CreateProject(name, description string) (*model.Project, error) {
	if !validate.NonEmpty(name) {
		return nil, apperror.New(apperror.CodeValidation, "project name must not be empty")
	}

	project, err := s.store.InsertProject(name, description)
	if err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	s.logger.Info("project created", "id", project.ID, "name", project.Name)
	return project, nil
}

// GetProject returns the project with the given ID.
func (s *HRService) GetProject(id int64) (*model.Project, error) {
	project, err := s.store.FindProjectByID(id)
	if err != nil {
		return nil, fmt.Errorf("finding project: %w", err)
	}
	if project == nil {
		return nil, apperror.Newf(apperror.CodeNotFound, "project %d not found", id)
	}
	return project, nil
}

// ListProjects returns all projects.
func (s *HRService) ListProjects() ([]*model.Project, error) {
	return s.store.ListProjects()
}

// UpdateProject rewrites a project's name and description.
func (s *HRService) UpdateProject(id int64, name, description string) error {
	if !validate.NonEmpty(name) {
		return apperror.New(apperror.CodeValidation, "project name must not be empty")
	}

	if _, err := s.GetProject(id); err != nil {
		return err
	}

	if err := s.store.UpdateProject(id, name, description); err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	return nil
}

// DeleteProject removes a project together with its memberships and time
// entries. The cleanup runs as best-effort sequential commits: first
// memberships, then time entries, then the project row.
func (s *HRService) DeleteProject(id int64) error {
	if _, err := s.GetProject(id); err != nil {
		return err
	}

	if err := s.store.DeleteMembershipsByProject(id); err != nil {
		return fmt.Errorf("deleting project memberships: %w", err)
	}
	if err := s.store.DeleteTimeEntriesByProject(id); err != nil {
		return fmt.Errorf("deleting project time entries: %w", err)
	}
	if err := s.store.DeleteProject(id); err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}

	s.logger.Info("project deleted", "id", id)
	return nil
}
