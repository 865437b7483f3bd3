package domain

import "fmt"

// UserProfile identifies the owner of a report
type UserProfile struct {
	ID    string
	Name  string
	Email string
}

func (p UserProfile) String() string {
	if p.Email == "" {
		return p.Name
	}
	return fmt.Sprintf("%s (%s)", p.Name, p.Email)
}
