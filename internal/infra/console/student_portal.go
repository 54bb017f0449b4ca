package console

import (
	"context"

	"college_records/internal/app"
)

// studentPortal shows the logged-in student's record; it never mutates anything.
func (c *Console) studentPortal(ctx context.Context, sess *app.Session) error {
	portalLogger := c.logger.WithFields(sess.Fields()).WithField("handler", "student_portal")

	st, err := c.accounts.StudentRecord(ctx, sess)
	if err != nil {
		portalLogger.WithError(err).Warn("Could not load student record")
		c.printf("\nError: %s\n", userMessage(err))
		return nil
	}
	portalLogger.Debug("Rendering dashboard")

	c.printf("\nLogin Successful! Welcome, %s.\n", st.Name)
	renderDashboard(c.out, st)
	_, err = c.readLine("\nPress Enter to return to Home Menu...")
	return err
}
