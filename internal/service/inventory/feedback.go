package inventory

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/founty-inventory/internal/domain"
)

// LeaveFeedback stores a free-text note from a user.
func (s *Service) LeaveFeedback(ctx context.Context, input LeaveFeedbackInput) (*domain.FeedbackNote, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	note, err := s.feedback.Insert(ctx, input.UserID, strings.TrimSpace(input.Text))
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "feedback left", slog.Int64("user_id", input.UserID))
	return note, nil
}

// RecentFeedback returns the latest notes with author names, newest first.
func (s *Service) RecentFeedback(ctx context.Context) ([]*domain.FeedbackWithUser, error) {
	return s.feedback.ListRecent(ctx, RecentFeedbackLimit)
}
