package teacher

const (
	MaxUsernameLength = 49
	MaxPasswordLength = 49
)

// Teacher represents a teacher account. Teachers carry no academic data.
type Teacher struct {
	Username string
	Password string
}
