package config

import (
	"fmt"

	"github.com/pkg/profile"
)

// StartProfile starts a cpu or mem profile written under dir. The empty
// mode disables profiling. The returned function stops the profile.
func StartProfile(mode, dir string) (func(), error) {
	var kind func(*profile.Profile)
	switch mode {
	case "":
		return func() {}, nil
	case "cpu":
		kind = profile.CPUProfile
	case "mem":
		kind = profile.MemProfile
	default:
		return nil, fmt.Errorf("unknown profile mode %q (want cpu or mem)", mode)
	}

	p := profile.Start(kind, profile.ProfilePath(dir), profile.Quiet, profile.NoShutdownHook)
	return p.Stop, nil
}
