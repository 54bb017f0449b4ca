package app

import (
	"context"
	"errors"
	"fmt"

	"college_records/internal/domain/student"
	"college_records/internal/domain/teacher"
	"college_records/internal/infra/memory"

	"github.com/sirupsen/logrus"
)

// Custom application-level errors
var ErrAuthFailed = fmt.Errorf("invalid credentials")
var ErrNotAuthorized = fmt.Errorf("session is not authorized for this operation")

// AccountService backs the home menu: logins, the student self-service view
// and self-registration of new student and teacher IDs.
type AccountService struct {
	studentRepo student.Repository
	teacherRepo teacher.Repository
	logger      *logrus.Entry
}

func NewAccountService(sr student.Repository, tr teacher.Repository, logger *logrus.Entry) *AccountService {
	return &AccountService{
		studentRepo: sr,
		teacherRepo: tr,
		logger:      logger,
	}
}

// LoginStudent opens a student session when both SAP ID and password match exactly.
func (s *AccountService) LoginStudent(ctx context.Context, sapID, password string) (*Session, error) {
	logCtx := s.logger.WithField("sap_id", sapID)

	st, err := s.studentRepo.Authenticate(ctx, sapID, password)
	if err != nil {
		if errors.Is(err, memory.ErrStudentAuthFailed) {
			logCtx.Warn("Student login failed")
			return nil, ErrAuthFailed
		}
		return nil, fmt.Errorf("failed to authenticate student: %w", err)
	}

	sess := newSession(RoleStudent, st.SAPID)
	logCtx.WithFields(sess.Fields()).Info("Student logged in")
	return sess, nil
}

// LoginTeacher opens a teacher session when both username and password match exactly.
func (s *AccountService) LoginTeacher(ctx context.Context, username, password string) (*Session, error) {
	logCtx := s.logger.WithField("username", username)

	t, err := s.teacherRepo.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, memory.ErrTeacherAuthFailed) {
			logCtx.Warn("Teacher login failed")
			return nil, ErrAuthFailed
		}
		return nil, fmt.Errorf("failed to authenticate teacher: %w", err)
	}

	sess := newSession(RoleTeacher, t.Username)
	logCtx.WithFields(sess.Fields()).Info("Teacher logged in")
	return sess, nil
}

// StudentRecord returns the logged-in student's own record.
func (s *AccountService) StudentRecord(ctx context.Context, sess *Session) (*student.Student, error) {
	if !sess.is(RoleStudent) {
		return nil, ErrNotAuthorized
	}
	// ErrStudentNotFound here means a teacher removed the record mid-session.
	return s.studentRepo.FindByID(ctx, sess.Principal)
}

// CheckNewSAPID reports whether sapID may be used for a new student.
func (s *AccountService) CheckNewSAPID(ctx context.Context, sapID string) error {
	return s.studentRepo.ValidateNewID(ctx, sapID)
}

// CreateStudent registers a new student with zeroed marks and attendance.
func (s *AccountService) CreateStudent(ctx context.Context, sapID, password, name string) (*student.Student, error) {
	logCtx := s.logger.WithField("sap_id", sapID)

	st, err := s.studentRepo.Add(ctx, sapID, password, name)
	if err != nil {
		logCtx.WithError(err).Warn("Failed to create student")
		return nil, err
	}
	logCtx.WithField("student_count", s.studentRepo.Count(ctx)).Info("Student created")
	return st, nil
}

// CheckNewUsername reports whether username is still free.
func (s *AccountService) CheckNewUsername(ctx context.Context, username string) error {
	return s.teacherRepo.ValidateNewUsername(ctx, username)
}

// CreateTeacher registers a new teacher account.
func (s *AccountService) CreateTeacher(ctx context.Context, username, password string) (*teacher.Teacher, error) {
	logCtx := s.logger.WithField("username", username)

	t, err := s.teacherRepo.Add(ctx, username, password)
	if err != nil {
		logCtx.WithError(err).Warn("Failed to create teacher")
		return nil, err
	}
	logCtx.WithField("teacher_count", s.teacherRepo.Count(ctx)).Info("Teacher created")
	return t, nil
}

// StudentSeats returns the number of stored students and the store capacity.
func (s *AccountService) StudentSeats(ctx context.Context) (int, int) {
	return s.studentRepo.Count(ctx), s.studentRepo.Capacity()
}

// TeacherSeats returns the number of stored teachers and the store capacity.
func (s *AccountService) TeacherSeats(ctx context.Context) (int, int) {
	return s.teacherRepo.Count(ctx), s.teacherRepo.Capacity()
}
