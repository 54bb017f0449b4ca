package app

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Role tells which portal a session was opened for.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// Session is the result of a successful login. It lives until the user
// returns to the home menu; nothing about it outlives the process.
type Session struct {
	ID        uuid.UUID
	Role      Role
	Principal string // SAP ID for students, username for teachers
	StartedAt time.Time
}

func newSession(role Role, principal string) *Session {
	return &Session{
		ID:        uuid.New(),
		Role:      role,
		Principal: principal,
		StartedAt: time.Now(),
	}
}

// Fields returns the log fields that tie entries to this session.
func (s *Session) Fields() logrus.Fields {
	return logrus.Fields{
		"session_id": s.ID.String(),
		"role":       string(s.Role),
		"principal":  s.Principal,
	}
}

func (s *Session) is(role Role) bool {
	return s != nil && s.Role == role
}
