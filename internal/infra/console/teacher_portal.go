package console

import (
	"context"
	"errors"
	"fmt"

	"college_records/internal/app"
	"college_records/internal/domain/student"
	"college_records/internal/infra/memory"
)

func (c *Console) teacherPortal(ctx context.Context, sess *app.Session) error {
	for {
		count, _ := c.admin.Seats(ctx)
		c.printf("\n%s\n", banner)
		c.printf("         TEACHER PORTAL - Menu          \n")
		c.printf("%s\n", banner)
		c.printf("Total students currently registered: %d\n", count)
		c.printf("1. Manage Student Enrollment (Add/Remove)\n")
		c.printf("2. Edit Student Marks and Attendance\n")
		c.printf("0. Logout\n")

		choice, ok, err := c.readInt("Enter choice: ")
		if err != nil {
			return err
		}
		if !ok {
			choice = -1
		}

		switch choice {
		case 1:
			err = c.manageEnrollment(ctx, sess)
		case 2:
			err = c.editRecord(ctx, sess)
		case 0:
			c.logger.WithFields(sess.Fields()).Info("Teacher logged out")
			c.printf("\nLogging out from Teacher Portal. Goodbye!\n")
			return nil
		default:
			c.printf("Invalid choice. Please try again.\n")
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) manageEnrollment(ctx context.Context, sess *app.Session) error {
	for {
		count, capacity := c.admin.Seats(ctx)
		c.printf("\n--- Manage Students ---\n")
		c.printf("Total students registered: %d/%d\n", count, capacity)
		c.printf("1. Add a new Student\n")
		c.printf("2. Remove a Student\n")
		c.printf("3. View all Students\n")
		c.printf("0. Back to Teacher Portal\n")

		choice, ok, err := c.readInt("Enter choice: ")
		if err != nil {
			return err
		}
		if !ok {
			choice = -1
		}

		switch choice {
		case 1:
			err = c.addStudent(ctx, sess)
		case 2:
			err = c.removeStudent(ctx, sess)
		case 3:
			err = c.listStudents(ctx, sess)
		case 0:
			return nil
		default:
			c.printf("Invalid choice.\n")
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) addStudent(ctx context.Context, sess *app.Session) error {
	if count, capacity := c.admin.Seats(ctx); count >= capacity {
		c.printf("Error: Maximum student capacity reached (%d). Cannot add more students.\n", capacity)
		return nil
	}

	c.printf("\n--- Adding New Student ---\n")
	check := func(ctx context.Context, sapID string) error {
		return c.admin.CheckNewSAPID(ctx, sess, sapID)
	}
	enroll := func(ctx context.Context, sapID, password, name string) (*student.Student, error) {
		return c.admin.EnrollStudent(ctx, sess, sapID, password, name)
	}
	st, err := c.collectStudent(ctx, "Enter Student Name: ", check, enroll)
	if err != nil {
		return err
	}
	if st != nil {
		c.printf("\nStudent %s (ID: %s) successfully added.\n", st.Name, st.SAPID)
	}
	return nil
}

func (c *Console) removeStudent(ctx context.Context, sess *app.Session) error {
	c.printf("\n--- Remove Student ---\n")
	sapID, err := c.readToken("Enter SAP ID of student to remove: ", 0)
	if err != nil {
		return err
	}

	removed, err := c.admin.RemoveStudent(ctx, sess, sapID)
	if err != nil {
		if errors.Is(err, memory.ErrStudentNotFound) {
			c.printf("Error: Student with SAP ID %s not found.\n", sapID)
			return nil
		}
		c.logger.WithFields(sess.Fields()).WithError(err).Error("Failed to remove student")
		c.printf("Error: %s\n", userMessage(err))
		return nil
	}

	count, _ := c.admin.Seats(ctx)
	c.printf("Removing student: %s (SAP ID: %s)\n", removed.Name, removed.SAPID)
	c.printf("Student successfully removed. Total students: %d\n", count)
	return nil
}

func (c *Console) listStudents(ctx context.Context, sess *app.Session) error {
	roster, err := c.admin.ListStudents(ctx, sess)
	if err != nil {
		c.printf("Error: %s\n", userMessage(err))
		return nil
	}
	renderRoster(c.out, roster)
	if len(roster) == 0 {
		return nil
	}
	_, err = c.readLine("\nPress Enter to continue...")
	return err
}

// editRecord edits one student until "Finish Editing" is chosen.
func (c *Console) editRecord(ctx context.Context, sess *app.Session) error {
	c.printf("\n--- Edit Student Record ---\n")
	sapID, err := c.readToken("Enter SAP ID of student to modify: ", 0)
	if err != nil {
		return err
	}

	st, err := c.admin.GetStudent(ctx, sess, sapID)
	if err != nil {
		if errors.Is(err, memory.ErrStudentNotFound) {
			c.printf("Error: Student with SAP ID %s not found.\n", sapID)
			return nil
		}
		c.printf("Error: %s\n", userMessage(err))
		return nil
	}

	for {
		c.printf("\nEditing Record for: %s (SAP ID: %s)\n", st.Name, st.SAPID)
		c.printf("1. Update Marks\n")
		c.printf("2. Update Attendance\n")
		c.printf("3. View Current Data\n")
		c.printf("0. Finish Editing\n")

		choice, ok, err := c.readInt("Enter choice: ")
		if err != nil {
			return err
		}
		if !ok {
			choice = -1
		}

		switch choice {
		case 1:
			st, err = c.updateScore(ctx, sess, st, student.Marks)
		case 2:
			st, err = c.updateScore(ctx, sess, st, student.Attendance)
		case 3:
			renderStudentDetails(c.out, st)
		case 0:
			c.printf("Finishing editing and returning to Teacher Portal.\n")
			return nil
		default:
			c.printf("Invalid choice.\n")
		}
		if err != nil {
			return err
		}
	}
}

// updateScore prompts for a subject and a new value and returns the record as
// it stands afterwards.
func (c *Console) updateScore(ctx context.Context, sess *app.Session, st *student.Student, kind student.FieldKind) (*student.Student, error) {
	renderScoreChoices(c.out, st, kind)
	choice, ok, err := c.readInt(fmt.Sprintf("Enter subject choice (1-%d): ", len(student.Subjects)))
	if err != nil {
		return st, err
	}
	subj, valid := student.SubjectFromChoice(choice)
	if !ok || !valid {
		c.printf("Invalid subject choice.\n")
		return st, nil
	}

	suffix := ""
	if kind == student.Attendance {
		suffix = "%"
	}
	value, ok, err := c.readInt(fmt.Sprintf("Enter new %s for %s (0-100%s): ", kind, subj, suffix))
	if err != nil {
		return st, err
	}
	if !ok {
		c.printf("Invalid input or %s outside 0-100%s range.\n", kind, suffix)
		return st, nil
	}

	updated, err := c.admin.UpdateScore(ctx, sess, st.SAPID, student.Field{Subject: subj, Kind: kind}, value)
	if err != nil {
		switch {
		case errors.Is(err, memory.ErrScoreOutOfRange):
			c.printf("Invalid input or %s outside 0-100%s range.\n", kind, suffix)
		default:
			c.printf("Error: %s\n", userMessage(err))
		}
		return st, nil
	}
	c.printf("%s %s updated.\n", subj, kind)
	return updated, nil
}
