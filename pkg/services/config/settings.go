package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "WELLNESS"

type Settings struct {
	Database     DatabaseSettings `mapstructure:"database"`
	ProfilesPath string           `mapstructure:"profiles_path"`
	Location     string           `mapstructure:"location"`
	Artifacts    ArtifactSettings `mapstructure:"artifacts"`
}

type DatabaseSettings struct {
	Path string `mapstructure:"path"`
}

type ArtifactSettings struct {
	Dir string     `mapstructure:"dir"`
	S3  S3Settings `mapstructure:"s3"`
}

type S3Settings struct {
	Bucket  string `mapstructure:"bucket"`
	Prefix  string `mapstructure:"prefix"`
	Profile string `mapstructure:"profile"`
	Region  string `mapstructure:"region"`
}

var defaults = map[string]any{
	"database.path":        "wellness.db",
	"profiles_path":        "",
	"location":             "UTC",
	"artifacts.dir":        "reports",
	"artifacts.s3.bucket":  "",
	"artifacts.s3.prefix":  "",
	"artifacts.s3.profile": "",
	"artifacts.s3.region":  "",
}

// LoadSettings reads the YAML file at path, when given, on top of the defaults.
// WELLNESS_* variables override both, e.g. WELLNESS_DATABASE_PATH.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if _, err := settings.TimeLocation(); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (s *Settings) TimeLocation() (*time.Location, error) {
	if s.Location == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(s.Location)
	if err != nil {
		return nil, fmt.Errorf("invalid location %q: %w", s.Location, err)
	}
	return loc, nil
}

// ArtifactsDestination is the S3 URL when a bucket is configured, the directory otherwise.
func (s *Settings) ArtifactsDestination() string {
	if s.Artifacts.S3.Bucket == "" {
		return s.Artifacts.Dir
	}
	prefix := strings.Trim(s.Artifacts.S3.Prefix, "/")
	if prefix == "" {
		return "s3://" + s.Artifacts.S3.Bucket
	}
	return "s3://" + s.Artifacts.S3.Bucket + "/" + prefix
}
