package services

import (
	"context"
	"fmt"

	"github.com/berk/parentportal/internal/app/models"
)

// announcementStore lists published announcements
type announcementStore interface {
	GetAll(ctx context.Context) ([]models.Announcement, error)
}

// AnnouncementService defines the interface for announcement reads
type AnnouncementService interface {
	GetAnnouncements(ctx context.Context) ([]models.Announcement, error)
}

// announcementServiceImpl implements the AnnouncementService interface
type announcementServiceImpl struct {
	announcements announcementStore
}

// NewAnnouncementService creates a new announcement service instance
func NewAnnouncementService(announcements announcementStore) AnnouncementService {
	return &announcementServiceImpl{announcements: announcements}
}

// GetAnnouncements retrieves all announcements, newest first
func (s *announcementServiceImpl) GetAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	announcements, err := s.announcements.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving announcements: %w", err)
	}
	return announcements, nil
}
