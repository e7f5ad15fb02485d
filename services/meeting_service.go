package services

import (
	"context"

	"roundtable/domain"
	"roundtable/runtime"
)

type IMeetingService interface {
	StartSession(ctx context.Context, topic string, participants []domain.Participant) error
	SubmitUtterance(ctx context.Context, text string) error
	ConfirmRound2(ctx context.Context) error
	DeclineRound2(ctx context.Context) error
	EndSession(ctx context.Context) error
	ResumeSession(ctx context.Context, meetingID string) error
	Phase() domain.Phase
	Transcript() []domain.Message
}

type MeetingService struct {
	session *runtime.Session
}

func NewMeetingService(s *runtime.Session) *MeetingService {
	return &MeetingService{session: s}
}

func (s *MeetingService) StartSession(ctx context.Context, topic string, participants []domain.Participant) error {
	return s.session.StartSession(ctx, topic, participants)
}

func (s *MeetingService) SubmitUtterance(ctx context.Context, text string) error {
	return s.session.SubmitUtterance(ctx, text)
}

func (s *MeetingService) ConfirmRound2(ctx context.Context) error {
	return s.session.ConfirmRound2(ctx)
}

func (s *MeetingService) DeclineRound2(ctx context.Context) error {
	return s.session.DeclineRound2(ctx)
}

func (s *MeetingService) EndSession(ctx context.Context) error {
	return s.session.EndSession(ctx)
}

func (s *MeetingService) ResumeSession(ctx context.Context, meetingID string) error {
	return s.session.ResumeSession(ctx, meetingID)
}

func (s *MeetingService) Phase() domain.Phase {
	return s.session.Phase()
}

func (s *MeetingService) Transcript() []domain.Message {
	return s.session.Transcript()
}
