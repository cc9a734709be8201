package platform

const (
	// DefaultLandsat8Executable handles LC8 and LO8 scenes.
	DefaultLandsat8Executable = "l8cfmask"

	// DefaultLegacyExecutable handles LT4, LT5 and LE7 scenes.
	DefaultLegacyExecutable = "cfmask"
)

// Executables names the program run for each target. Names are resolved on
// PATH at execution time.
type Executables struct {
	Landsat8 string
	Legacy   string
}

// DefaultExecutables returns the stock executable names.
func DefaultExecutables() Executables {
	return Executables{
		Landsat8: DefaultLandsat8Executable,
		Legacy:   DefaultLegacyExecutable,
	}
}

// For returns the executable for target.
func (e Executables) For(target Target) string {
	if target == TargetLandsat8 {
		return e.Landsat8
	}
	return e.Legacy
}
