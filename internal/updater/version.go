package updater

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// UpdateAvailable reports whether latest is strictly newer than current.
// GitHub tags usually carry a "v" prefix and ldflags-injected versions
// usually do not, so a leading "v" is tolerated on either side.
func UpdateAvailable(current, latest string) (bool, error) {
	cv, err := semver.NewVersion(strings.TrimPrefix(current, "v"))
	if err != nil {
		return false, fmt.Errorf("parsing current version %q: %w", current, err)
	}
	lv, err := semver.NewVersion(strings.TrimPrefix(latest, "v"))
	if err != nil {
		return false, fmt.Errorf("parsing latest version %q: %w", latest, err)
	}
	return cv.LessThan(lv), nil
}
