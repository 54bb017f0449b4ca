package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"college_records/internal/app"
	"college_records/internal/domain/student"
	"college_records/internal/infra/memory"
)

// ErrInputClosed is returned by every read once the input stream is exhausted.
var ErrInputClosed = fmt.Errorf("input stream closed")

// maxLineLength bounds how much of one input line is kept. The remainder of a
// longer line is consumed and dropped.
const maxLineLength = 4096

// readLine prints prompt and consumes exactly one line of input.
func (c *Console) readLine(prompt string) (string, error) {
	c.printf("%s", prompt)
	var line []byte
	for {
		chunk, isPrefix, err := c.in.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if line != nil {
					break
				}
				return "", ErrInputClosed
			}
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if room := maxLineLength - len(line); room > 0 {
			line = append(line, chunk[:min(len(chunk), room)]...)
		}
		if !isPrefix {
			break
		}
	}
	return strings.TrimRight(string(line), "\r"), nil
}

// readToken returns the first whitespace-separated word of the next non-blank
// line, cut to maxLen characters when maxLen > 0. The rest of the line is dropped.
func (c *Console) readToken(prompt string, maxLen int) (string, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return "", err
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		return truncate(fields[0], maxLen), nil
	}
}

// readText returns the whole line as typed, spaces included.
func (c *Console) readText(prompt string, maxLen int) (string, error) {
	line, err := c.readLine(prompt)
	if err != nil {
		return "", err
	}
	return truncate(line, maxLen), nil
}

// readInt parses the first word of the next line. ok is false for blank or
// non-numeric input, which callers treat as an invalid choice.
func (c *Console) readInt(prompt string) (n int, ok bool, err error) {
	line, err := c.readLine(prompt)
	if err != nil {
		return 0, false, err
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, false, nil
	}
	n, convErr := strconv.Atoi(fields[0])
	if convErr != nil {
		return 0, false, nil
	}
	return n, true, nil
}

// readCount keeps asking until it gets an integer in [1, limit].
func (c *Console) readCount(prompt string, limit int) (int, error) {
	for {
		n, ok, err := c.readInt(prompt)
		if err != nil {
			return 0, err
		}
		if ok && n >= 1 && n <= limit {
			return n, nil
		}
		c.printf("Error: Invalid number. Please enter a value between 1 and %d.\n", limit)
	}
}

func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen])
}

// userMessage turns a store or service error into the text shown at the prompt.
func userMessage(err error) string {
	switch {
	case errors.Is(err, memory.ErrInvalidSAPID):
		return fmt.Sprintf("SAP ID must be exactly %d digits.", student.SAPIDLength)
	case errors.Is(err, memory.ErrDuplicateSAPID):
		return "SAP ID already exists. Try again."
	case errors.Is(err, memory.ErrStudentNotFound):
		return "Student not found."
	case errors.Is(err, memory.ErrScoreOutOfRange):
		return fmt.Sprintf("Value outside %d-%d range.", student.MinScore, student.MaxScore)
	case errors.Is(err, memory.ErrStudentCapacityExceeded):
		return fmt.Sprintf("Maximum student capacity reached (%d).", memory.MaxStudents)
	case errors.Is(err, memory.ErrDuplicateUsername):
		return "Username already exists. Please choose another."
	case errors.Is(err, memory.ErrTeacherCapacityExceeded):
		return fmt.Sprintf("Maximum teacher capacity reached (%d).", memory.MaxTeachers)
	case errors.Is(err, app.ErrAuthFailed):
		return "Invalid credentials."
	case errors.Is(err, app.ErrNotAuthorized):
		return "You are not allowed to do that."
	default:
		return fmt.Sprintf("Unexpected error: %v", err)
	}
}
