package maven

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"

	"github.com/rios0rios0/mvnupdate/internal/domain/entities"
	"github.com/rios0rios0/mvnupdate/internal/domain/repositories"
)

// minimumCIFriendlyVersion is the first Maven release that fills
// ${revision}, ${sha1} and ${changelist} from the command line.
const minimumCIFriendlyVersion = "3.5"

var (
	versionOutputPattern = regexp.MustCompile(`Apache Maven (\S+)`)
	coreJarPattern       = regexp.MustCompile(`^maven-core-(.+)\.jar$`)
)

// CommandRunner runs an external program and returns its combined output.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// VersionProbe finds out which Maven version the project is built with.
type VersionProbe struct {
	settings entities.MavenSettings
	run      CommandRunner
}

// NewVersionProbe creates a probe that runs mvn through os/exec.
func NewVersionProbe(settings entities.MavenSettings) repositories.BuildToolRepository {
	return NewVersionProbeWithRunner(settings, runCommand)
}

// NewVersionProbeWithRunner creates a probe with a custom command runner.
func NewVersionProbeWithRunner(settings entities.MavenSettings, run CommandRunner) *VersionProbe {
	return &VersionProbe{settings: settings, run: run}
}

// IsMaven35OrNewer reports whether the detected Maven is 3.5 or newer.
// Detection failures are logged and reported as true.
func (it *VersionProbe) IsMaven35OrNewer(ctx context.Context) bool {
	version, err := it.Version(ctx)
	if err != nil {
		logger.Errorf("[maven] invalid maven home configuration: %v", err)
		return true
	}
	atLeast := isAtLeast(version, minimumCIFriendlyVersion)
	logger.Debugf("[maven] detected Maven %s (>= %s: %t)", version, minimumCIFriendlyVersion, atLeast)
	return atLeast
}

// Version returns the configured override, the version of the maven-core
// jar under the Maven home, or the version printed by "mvn --version", in
// that order.
func (it *VersionProbe) Version(ctx context.Context) (string, error) {
	if override := strings.TrimSpace(it.settings.Version); override != "" {
		return override, nil
	}

	home := strings.TrimSpace(it.settings.Home)
	if home != "" {
		if version, ok := coreJarVersion(home); ok {
			return version, nil
		}
	}

	output, err := it.run(ctx, mvnExecutable(home), "--version")
	if err != nil {
		return "", fmt.Errorf("failed to run mvn --version: %w", err)
	}
	match := versionOutputPattern.FindSubmatch(output)
	if match == nil {
		return "", errors.New("mvn --version printed no version")
	}
	return string(match[1]), nil
}

func coreJarVersion(home string) (string, bool) {
	jars, err := filepath.Glob(filepath.Join(home, "lib", "maven-core-*.jar"))
	if err != nil || len(jars) == 0 {
		return "", false
	}
	match := coreJarPattern.FindStringSubmatch(filepath.Base(jars[0]))
	if match == nil {
		return "", false
	}
	return match[1], true
}

func mvnExecutable(home string) string {
	if home != "" {
		candidate := filepath.Join(home, "bin", "mvn")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return "mvn"
}

// isAtLeast compares with semver when both sides are valid and falls back
// to Maven ordering for versions semver rejects (e.g. "3.8.1.1").
func isAtLeast(version, minimum string) bool {
	v, m := "v"+version, "v"+minimum
	if semver.IsValid(v) && semver.IsValid(m) {
		return semver.Compare(v, m) >= 0
	}
	return entities.CompareVersions(version, minimum) >= 0
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}
