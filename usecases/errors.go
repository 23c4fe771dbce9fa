package usecases

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("Invalid username, email or password")
	ErrNotPokemonOwner    = errors.New("You must be the pokemon owner to access this resource")
	ErrNotTrainerOwner    = errors.New("You must be a registered trainer to access this resource")
	ErrAdminRequired      = errors.New("You need to have administrator privileges to access this resource")
	ErrUsernameTaken      = errors.New("username is already registered")
	ErrEmailTaken         = errors.New("email is already registered")
)

// ValidationError collects field level failures, one message list per
// field. It marshals directly into the error envelope.
type ValidationError map[string][]string

func (v ValidationError) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

func (v ValidationError) add(field, message string) {
	v[field] = append(v[field], message)
}
