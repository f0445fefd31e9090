package config

import "strconv"

// ThreadResolution classifies how a thread-count argument was resolved.
type ThreadResolution int

const (
	// ThreadOmitted means no argument was given; the default applies
	// silently.
	ThreadOmitted ThreadResolution = iota
	// ThreadExplicit means a positive integer was used directly.
	ThreadExplicit
	// ThreadAllCores means -1 was given and resolved to the host's
	// logical core count.
	ThreadAllCores
	// ThreadInvalid means the argument was unparsable or
	// non-positive and fell back to the default of 1.
	ThreadInvalid
)

// ResolveThreads resolves a thread-count CLI argument against the
// host's logical core count. A positive integer is used directly, -1
// resolves to cores, anything else falls back to 1.
func ResolveThreads(arg string, cores int) (int, ThreadResolution) {
	if arg == "" {
		return 1, ThreadOmitted
	}

	n, err := strconv.Atoi(arg)
	if err != nil {
		return 1, ThreadInvalid
	}

	return ResolveThreadCount(n, cores)
}

// ResolveThreadCount resolves an already-numeric thread count, such as
// one read from a configuration file, with the same semantics as
// ResolveThreads.
func ResolveThreadCount(n, cores int) (int, ThreadResolution) {
	if n == -1 {
		if cores < 1 {
			cores = 1
		}
		return cores, ThreadAllCores
	}

	if n < 1 {
		return 1, ThreadInvalid
	}

	return n, ThreadExplicit
}
