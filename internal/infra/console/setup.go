package console

import (
	"context"
	"errors"
	"fmt"

	"college_records/internal/domain/teacher"
	"college_records/internal/infra/memory"

	"github.com/sirupsen/logrus"
)

// initialSetup populates both stores before the home menu is shown.
// Every requested teacher and student is stored: a duplicate username or
// SAP ID re-prompts for that field instead of being skipped.
func (c *Console) initialSetup(ctx context.Context) error {
	setupLogger := c.logger.WithField("handler", "initial_setup")

	c.printf("\n--- INITIAL SYSTEM SETUP ---\n")
	c.printf("This data is NOT saved permanently and will reset on exit.\n")

	_, teacherCapacity := c.accounts.TeacherSeats(ctx)
	numTeachers, err := c.readCount(
		fmt.Sprintf("\nHow many initial Teacher Accounts do you want to create (Max %d)? ", teacherCapacity),
		teacherCapacity)
	if err != nil {
		return err
	}

	c.printf("\n--- Initial Teacher Accounts (%d) ---\n", numTeachers)
	for i := 0; i < numTeachers; i++ {
		if count, capacity := c.accounts.TeacherSeats(ctx); count >= capacity {
			break
		}
		c.printf("Entering Teacher %d/%d details...\n", i+1, numTeachers)
		if err := c.collectInitialTeacher(ctx); err != nil {
			return err
		}
	}

	_, studentCapacity := c.accounts.StudentSeats(ctx)
	numStudents, err := c.readCount(
		fmt.Sprintf("\nHow many initial Student Accounts do you want to create (Max %d)? ", studentCapacity),
		studentCapacity)
	if err != nil {
		return err
	}

	c.printf("\n--- Initial Student Accounts (%d) ---\n", numStudents)
	for i := 0; i < numStudents; i++ {
		if count, capacity := c.accounts.StudentSeats(ctx); count >= capacity {
			break
		}
		c.printf("Entering Student %d/%d details...\n", i+1, numStudents)
		if _, err := c.collectStudent(ctx, "Enter Student Name: ", c.accounts.CheckNewSAPID, c.accounts.CreateStudent); err != nil {
			return err
		}
	}

	students, _ := c.accounts.StudentSeats(ctx)
	teachers, _ := c.accounts.TeacherSeats(ctx)
	setupLogger.WithFields(logrus.Fields{
		"students": students,
		"teachers": teachers,
	}).Info("Initial setup complete")
	c.printf("\nInitial data setup complete! The system is now ready with %d students and %d teachers.\n", students, teachers)
	return nil
}

func (c *Console) collectInitialTeacher(ctx context.Context) error {
	var username string
	for {
		name, err := c.readToken("Enter Username (no spaces): ", teacher.MaxUsernameLength)
		if err != nil {
			return err
		}
		err = c.accounts.CheckNewUsername(ctx, name)
		if err == nil {
			username = name
			break
		}
		c.printf("Error: %s\n", userMessage(err))
	}

	password, err := c.readToken("Enter Password (no spaces): ", teacher.MaxPasswordLength)
	if err != nil {
		return err
	}

	if _, err := c.accounts.CreateTeacher(ctx, username, password); err != nil {
		if !errors.Is(err, memory.ErrTeacherCapacityExceeded) {
			c.logger.WithError(err).Error("Failed to store initial teacher")
		}
		c.printf("Error: %s\n", userMessage(err))
	}
	return nil
}
