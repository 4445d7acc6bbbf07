package scan

// Limits bounds the history store. Constrained environments (browser
// local storage quotas) get smaller caps than native/server storage.
type Limits struct {
	// RuntimeLimit caps the in-memory list that still carries image refs.
	RuntimeLimit int
	// HistoryLimit caps the persisted, image-stripped list.
	HistoryLimit int
	// MaxBlobBytes is the serialized-size threshold above which the
	// persisted history is shrunk before writing.
	MaxBlobBytes int
	// ShrinkKeep is how many most-recent entries survive a shrink.
	ShrinkKeep int
}

var (
	DefaultLimits = Limits{
		RuntimeLimit: 5,
		HistoryLimit: 20,
		MaxBlobBytes: 100_000,
		ShrinkKeep:   5,
	}

	ConstrainedLimits = Limits{
		RuntimeLimit: 2,
		HistoryLimit: 5,
		MaxBlobBytes: 100_000,
		ShrinkKeep:   5,
	}
)

// LimitsForProfile maps a profile name from config onto a limit set.
// Anything other than "constrained" gets the defaults.
func LimitsForProfile(profile string) Limits {
	if profile == "constrained" {
		return ConstrainedLimits
	}
	return DefaultLimits
}
