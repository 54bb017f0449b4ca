package app

import (
	"context"
	"errors"
	"fmt"

	"college_records/internal/domain/student"
	"college_records/internal/infra/memory"

	"github.com/sirupsen/logrus"
)

// AdminService holds the teacher portal operations. Every method requires a
// teacher session.
type AdminService struct {
	studentRepo student.Repository
	logger      *logrus.Entry
}

func NewAdminService(sr student.Repository, logger *logrus.Entry) *AdminService {
	return &AdminService{
		studentRepo: sr,
		logger:      logger,
	}
}

func (s *AdminService) sessionLogger(sess *Session) *logrus.Entry {
	return s.logger.WithFields(sess.Fields())
}

// EnrollStudent adds a student on behalf of a teacher.
func (s *AdminService) EnrollStudent(ctx context.Context, sess *Session, sapID, password, name string) (*student.Student, error) {
	if !sess.is(RoleTeacher) {
		return nil, ErrNotAuthorized
	}
	logCtx := s.sessionLogger(sess).WithField("sap_id", sapID)

	st, err := s.studentRepo.Add(ctx, sapID, password, name)
	if err != nil {
		logCtx.WithError(err).Warn("Failed to enroll student")
		return nil, err
	}
	logCtx.Info("Student enrolled")
	return st, nil
}

// RemoveStudent deletes a student record; the remaining roster keeps its order.
func (s *AdminService) RemoveStudent(ctx context.Context, sess *Session, sapID string) (*student.Student, error) {
	if !sess.is(RoleTeacher) {
		return nil, ErrNotAuthorized
	}
	logCtx := s.sessionLogger(sess).WithField("sap_id", sapID)

	removed, err := s.studentRepo.Remove(ctx, sapID)
	if err != nil {
		if errors.Is(err, memory.ErrStudentNotFound) {
			logCtx.Warn("Student to remove not found")
			return nil, memory.ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to remove student: %w", err)
	}
	logCtx.WithField("student_count", s.studentRepo.Count(ctx)).Info("Student removed")
	return removed, nil
}

func (s *AdminService) ListStudents(ctx context.Context, sess *Session) ([]student.Summary, error) {
	if !sess.is(RoleTeacher) {
		return nil, ErrNotAuthorized
	}
	return s.studentRepo.List(ctx), nil
}

func (s *AdminService) GetStudent(ctx context.Context, sess *Session, sapID string) (*student.Student, error) {
	if !sess.is(RoleTeacher) {
		return nil, ErrNotAuthorized
	}
	return s.studentRepo.FindByID(ctx, sapID)
}

// UpdateScore sets one mark or attendance value. Values outside 0-100 are
// rejected and the stored value is left as it was.
func (s *AdminService) UpdateScore(ctx context.Context, sess *Session, sapID string, field student.Field, value int) (*student.Student, error) {
	if !sess.is(RoleTeacher) {
		return nil, ErrNotAuthorized
	}
	logCtx := s.sessionLogger(sess).WithFields(logrus.Fields{
		"sap_id":  sapID,
		"subject": field.Subject.String(),
		"kind":    field.Kind.String(),
		"value":   value,
	})

	st, err := s.studentRepo.UpdateField(ctx, sapID, field, value)
	if err != nil {
		logCtx.WithError(err).Warn("Score update rejected")
		return nil, err
	}
	logCtx.Info("Score updated")
	return st, nil
}

// CheckNewSAPID reports whether sapID may be used for a new enrollment.
func (s *AdminService) CheckNewSAPID(ctx context.Context, sess *Session, sapID string) error {
	if !sess.is(RoleTeacher) {
		return ErrNotAuthorized
	}
	return s.studentRepo.ValidateNewID(ctx, sapID)
}

// Seats returns the number of enrolled students and the store capacity.
func (s *AdminService) Seats(ctx context.Context) (int, int) {
	return s.studentRepo.Count(ctx), s.studentRepo.Capacity()
}
