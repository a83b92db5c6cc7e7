package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Search providers known out of the box.
const (
	SearchProviderMetadata = "metadata"
	SearchProviderCentral  = "central"
	SearchProviderDepsDev  = "depsdev"

	// DefaultSearchLimit caps the number of candidates asked from a search service.
	DefaultSearchLimit = 200

	defaultSearchTimeout = 10 * time.Second
	defaultCacheTTL      = time.Hour
)

// Settings is the top-level configuration for mvnupdate.
type Settings struct {
	Search SearchSettings `yaml:"search"`
	Cache  CacheSettings  `yaml:"cache"`
	Maven  MavenSettings  `yaml:"maven"`
	Git    GitSettings    `yaml:"git"`
	Ignore []string       `yaml:"ignore"` // groupId:artifactId patterns, * allowed
}

// SearchSettings selects and configures the artifact search service.
type SearchSettings struct {
	Provider      string        `yaml:"provider"` // "metadata", "central", "depsdev"
	Limit         int           `yaml:"limit"`
	Timeout       time.Duration `yaml:"timeout"`
	RepositoryURL string        `yaml:"repository_url"` // Maven repository root for maven-metadata.xml
	CentralURL    string        `yaml:"central_url"`    // Solr select endpoint
	DepsDevURL    string        `yaml:"depsdev_url"`
}

// CacheSettings configures the optional on-disk search cache.
type CacheSettings struct {
	Path string        `yaml:"path"` // empty disables the cache
	TTL  time.Duration `yaml:"ttl"`
}

// MavenSettings tells the probe where Maven lives.
type MavenSettings struct {
	Home    string `yaml:"home"`
	Version string `yaml:"version"` // skips probing when set
}

// GitSettings holds the commit identity used when fixes are committed.
type GitSettings struct {
	Branch      string `yaml:"branch"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the configuration used when no file is found.
func DefaultSettings() *Settings {
	return &Settings{
		Search: SearchSettings{
			Provider:      SearchProviderMetadata,
			Limit:         DefaultSearchLimit,
			Timeout:       defaultSearchTimeout,
			RepositoryURL: "https://repo1.maven.org/maven2",
			CentralURL:    "https://search.maven.org/solrsearch/select",
			DepsDevURL:    "https://api.deps.dev/v3",
		},
		Cache: CacheSettings{TTL: defaultCacheTTL},
		Maven: MavenSettings{Home: "${MAVEN_HOME}"},
		Git: GitSettings{
			Branch:      "chore/upgrade-maven-dependencies",
			AuthorName:  "mvnupdate",
			AuthorEmail: "mvnupdate@users.noreply.github.com",
		},
	}
}

// NewSettings reads and parses a configuration file on top of the defaults,
// expanding environment variables in path-like values.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}
	return settings, nil
}

// Validate fills zero values with defaults and rejects impossible ones.
func (s *Settings) Validate() error {
	defaults := DefaultSettings()

	s.Search.RepositoryURL = expandEnv(s.Search.RepositoryURL)
	s.Search.CentralURL = expandEnv(s.Search.CentralURL)
	s.Search.DepsDevURL = expandEnv(s.Search.DepsDevURL)
	s.Cache.Path = expandEnv(s.Cache.Path)
	s.Maven.Home = expandEnv(s.Maven.Home)

	if s.Search.Provider == "" {
		s.Search.Provider = defaults.Search.Provider
	}
	if s.Search.Limit < 0 {
		return fmt.Errorf("search.limit must not be negative, got %d", s.Search.Limit)
	}
	if s.Search.Limit == 0 {
		s.Search.Limit = DefaultSearchLimit
	}
	if s.Search.Timeout < 0 {
		return errors.New("search.timeout must not be negative")
	}
	if s.Search.Timeout == 0 {
		s.Search.Timeout = defaults.Search.Timeout
	}
	if s.Cache.TTL < 0 {
		return errors.New("cache.ttl must not be negative")
	}
	if s.Git.Branch == "" {
		s.Git.Branch = defaults.Git.Branch
	}
	for i, pattern := range s.Ignore {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return fmt.Errorf("ignore[%d] is not a valid pattern %q: %w", i, pattern, err)
		}
	}
	return nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".mvnupdate.yaml",
		".mvnupdate.yml",
		"mvnupdate.yaml",
		"mvnupdate.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// expandEnv replaces ${ENV_VAR} references; unset variables expand to "".
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Debugf("Environment variable %q is not set", varName)
		return ""
	})
}
