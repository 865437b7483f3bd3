package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/de-tools/wellness-atlas/pkg/models/domain"
	"gopkg.in/ini.v1"
)

var ErrProfileNotFound = errors.New("profile not found")

// Registry resolves user profiles out of an INI file where each section is a
// user id with name and email keys.
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, userID string) (domain.UserProfile, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	profiles := make([]string, 0)
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetProfile(_ context.Context, userID string) (domain.UserProfile, error) {
	section, err := cr.cfg.GetSection(userID)
	if err != nil || len(section.Keys()) == 0 {
		return domain.UserProfile{}, fmt.Errorf("%w: %s", ErrProfileNotFound, userID)
	}

	name := section.Key("name").String()
	if name == "" {
		name = userID
	}
	return domain.UserProfile{
		ID:    userID,
		Name:  name,
		Email: section.Key("email").String(),
	}, nil
}
