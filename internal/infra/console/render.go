package console

import (
	"fmt"
	"io"
	"strings"

	"college_records/internal/domain/student"
)

const rule = "----------------------------------------"
const banner = "========================================"

func renderStudentDetails(w io.Writer, s *student.Student) {
	var b strings.Builder
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Name: %s\n", s.Name)
	fmt.Fprintf(&b, "SAP ID: %s\n", s.SAPID)

	b.WriteString("\nMarks (out of 100):\n")
	for _, subj := range student.Subjects {
		fmt.Fprintf(&b, "  %s: %d\n", subj, s.Marks.Get(subj))
	}
	b.WriteString("\nAttendance (%):\n")
	for _, subj := range student.Subjects {
		fmt.Fprintf(&b, "  %s: %d%%\n", subj, s.Attendance.Get(subj))
	}
	b.WriteString(rule + "\n")
	io.WriteString(w, b.String())
}

func renderDashboard(w io.Writer, s *student.Student) {
	var b strings.Builder
	b.WriteString("\n" + banner + "\n")
	b.WriteString("       STUDENT PORTAL - Dashboard       \n")
	b.WriteString(banner + "\n")
	fmt.Fprintf(&b, "Welcome, %s (SAP ID: %s)\n", s.Name, s.SAPID)
	b.WriteString("\n--- Academic Record ---\n\n")
	b.WriteString("| Subject | Marks (Out of 100) | Attendance (%)    |\n")
	b.WriteString("|---------|--------------------|-------------------|\n")
	for _, subj := range student.Subjects {
		fmt.Fprintf(&b, "| %-7s | %-18d | %-17d |\n", subj, s.Marks.Get(subj), s.Attendance.Get(subj))
	}
	b.WriteString("\nNote: Attendance is out of 100 classes.\n")
	io.WriteString(w, b.String())
}

func renderRoster(w io.Writer, roster []student.Summary) {
	var b strings.Builder
	fmt.Fprintf(&b, "\n--- Student List (%d Students) ---\n", len(roster))
	if len(roster) == 0 {
		b.WriteString("No students registered in the system.\n")
	}
	for i, s := range roster {
		fmt.Fprintf(&b, "%d. Name: %-30s | SAP ID: %s\n", i+1, s.Name, s.SAPID)
	}
	io.WriteString(w, b.String())
}

// renderScoreChoices lists the current value of every subject for kind.
func renderScoreChoices(w io.Writer, s *student.Student, kind student.FieldKind) {
	suffix := ""
	if kind == student.Attendance {
		suffix = "%"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Select Subject to update %s (0-100%s):\n", kind, suffix)
	for i, subj := range student.Subjects {
		fmt.Fprintf(&b, "  %d. %s (Current: %d%s)\n", i+1, subj, s.Score(student.Field{Subject: subj, Kind: kind}), suffix)
	}
	io.WriteString(w, b.String())
}
