package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"college_records/internal/app"
	"college_records/internal/domain/student"
	"college_records/internal/domain/teacher"
	"college_records/internal/infra/memory"

	"github.com/sirupsen/logrus"
)

// Console drives the whole interactive session over a line-oriented stream.
// Every store mutation happens synchronously between two reads.
type Console struct {
	in       *bufio.Reader
	out      io.Writer
	accounts *app.AccountService
	admin    *app.AdminService
	logger   *logrus.Entry
}

func New(in io.Reader, out io.Writer, accounts *app.AccountService, admin *app.AdminService, logger *logrus.Entry) *Console {
	return &Console{
		in:       bufio.NewReader(in),
		out:      out,
		accounts: accounts,
		admin:    admin,
		logger:   logger,
	}
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Run performs the initial setup and then serves the home menu until the user
// exits or the input ends. Running out of input is not an error.
func (c *Console) Run(ctx context.Context) error {
	c.printf("Starting system with fresh memory (non-persistent mode).\n")

	err := c.initialSetup(ctx)
	if err == nil {
		err = c.homeMenu(ctx)
	}
	if errors.Is(err, ErrInputClosed) {
		c.logger.Info("Input closed, ending session")
		c.printf("\n\nEnd of input. Exiting the system. All current data is lost.\n")
		return nil
	}
	return err
}

func (c *Console) homeMenu(ctx context.Context) error {
	for {
		c.printf("\n%s\n", banner)
		c.printf("   COLLEGE ATTENDANCE & GRADING SYSTEM  \n")
		c.printf("%s\n", banner)
		c.printf("Home Page Options:\n")
		c.printf("1. Login as Student\n")
		c.printf("2. Login as Teacher\n")
		c.printf("3. Create New Student ID\n")
		c.printf("4. Create New Teacher ID\n")
		c.printf("0. Exit System\n")

		choice, ok, err := c.readInt("Enter your choice: ")
		if err != nil {
			return err
		}
		if !ok {
			choice = -1
		}

		switch choice {
		case 1:
			err = c.studentLogin(ctx)
		case 2:
			err = c.teacherLogin(ctx)
		case 3:
			err = c.createStudentID(ctx)
		case 4:
			err = c.createTeacherID(ctx)
		case 0:
			c.logger.Info("Exit selected")
			c.printf("\nExiting the system. All current data is lost.\n")
			return nil
		default:
			c.printf("Invalid choice. Please select an option from 0 to 4.\n")
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) studentLogin(ctx context.Context) error {
	c.printf("\n--- Student Login ---\n")
	sapID, err := c.readToken(fmt.Sprintf("Enter %d-digit SAP ID: ", student.SAPIDLength), 0)
	if err != nil {
		return err
	}
	password, err := c.readToken("Enter Password: ", student.MaxPasswordLength)
	if err != nil {
		return err
	}

	sess, err := c.accounts.LoginStudent(ctx, sapID, password)
	if err != nil {
		if !errors.Is(err, app.ErrAuthFailed) {
			c.logger.WithError(err).Error("Student login failed unexpectedly")
		}
		c.printf("\nLogin Failed: Invalid SAP ID or Password.\n")
		return nil
	}
	return c.studentPortal(ctx, sess)
}

func (c *Console) teacherLogin(ctx context.Context) error {
	c.printf("\n--- Teacher Login ---\n")
	username, err := c.readToken("Enter Username: ", teacher.MaxUsernameLength)
	if err != nil {
		return err
	}
	password, err := c.readToken("Enter Password: ", teacher.MaxPasswordLength)
	if err != nil {
		return err
	}

	sess, err := c.accounts.LoginTeacher(ctx, username, password)
	if err != nil {
		if !errors.Is(err, app.ErrAuthFailed) {
			c.logger.WithError(err).Error("Teacher login failed unexpectedly")
		}
		c.printf("\nLogin Failed: Invalid Username or Password.\n")
		return nil
	}
	c.printf("\nLogin Successful! Welcome, Teacher %s.\n", sess.Principal)
	return c.teacherPortal(ctx, sess)
}

func (c *Console) createStudentID(ctx context.Context) error {
	if count, capacity := c.accounts.StudentSeats(ctx); count >= capacity {
		c.printf("\nError: Maximum student capacity reached (%d). Cannot create new student ID.\n", capacity)
		return nil
	}

	c.printf("\n--- Create New Student ID ---\n")
	st, err := c.collectStudent(ctx, "Enter Full Name: ", c.accounts.CheckNewSAPID, c.accounts.CreateStudent)
	if err != nil {
		return err
	}
	if st != nil {
		c.printf("\nStudent ID created successfully! Use SAP ID: %s to login.\n", st.SAPID)
	}
	return nil
}

func (c *Console) createTeacherID(ctx context.Context) error {
	if count, capacity := c.accounts.TeacherSeats(ctx); count >= capacity {
		c.printf("\nError: Maximum teacher capacity reached (%d). Cannot create new teacher ID.\n", capacity)
		return nil
	}

	c.printf("\n--- Create New Teacher ID ---\n")
	username, err := c.readToken("Enter new Username (no spaces): ", teacher.MaxUsernameLength)
	if err != nil {
		return err
	}
	password, err := c.readToken("Enter new Password (no spaces): ", teacher.MaxPasswordLength)
	if err != nil {
		return err
	}

	t, err := c.accounts.CreateTeacher(ctx, username, password)
	if err != nil {
		c.printf("\nError: %s\n", userMessage(err))
		return nil
	}
	c.printf("\nTeacher ID created successfully! Username: %s.\n", t.Username)
	return nil
}

type sapIDCheck func(ctx context.Context, sapID string) error
type studentAdder func(ctx context.Context, sapID, password, name string) (*student.Student, error)

// collectStudent is shared by bulk setup, self-registration and teacher
// enrollment. It does not move past the SAP ID prompt until check accepts
// an ID. A nil student with a nil error means add refused the record and the
// reason was already shown.
func (c *Console) collectStudent(ctx context.Context, namePrompt string, check sapIDCheck, add studentAdder) (*student.Student, error) {
	var sapID string
	for {
		id, err := c.readToken(fmt.Sprintf("Enter new %d-digit SAP ID: ", student.SAPIDLength), 0)
		if err != nil {
			return nil, err
		}
		err = check(ctx, id)
		if err == nil {
			sapID = id
			break
		}
		if !errors.Is(err, memory.ErrInvalidSAPID) && !errors.Is(err, memory.ErrDuplicateSAPID) {
			c.logger.WithError(err).Error("SAP ID check failed")
			c.printf("Error: %s\n", userMessage(err))
			return nil, nil
		}
		c.printf("Error: %s\n", userMessage(err))
	}

	password, err := c.readToken(fmt.Sprintf("Enter Password (max %d chars, no spaces): ", student.MaxPasswordLength), student.MaxPasswordLength)
	if err != nil {
		return nil, err
	}
	name, err := c.readText(namePrompt, student.MaxNameLength)
	if err != nil {
		return nil, err
	}

	st, err := add(ctx, sapID, password, name)
	if err != nil {
		c.printf("Error: %s\n", userMessage(err))
		return nil, nil
	}
	return st, nil
}
