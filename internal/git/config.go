package git

import "time"

type Config struct {
	// Binary is the git executable used for porcelain status queries.
	Binary string
	// ProbeTimeout bounds the remote reachability probe.
	ProbeTimeout time.Duration
}

func DefaultConfig() Config {
	//nolint:exhaustruct,mnd //default values
	return Config{
		Binary:       "git",
		ProbeTimeout: 15 * time.Second,
	}
}
