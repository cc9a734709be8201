// =============================================================================
// CFmask Dispatcher - Platform Classification
// =============================================================================
//
// This package decides which CFmask build handles a scene. The decision is
// made from the satellite code, the first three characters of the scene's
// XML metadata filename:
//
//   LC8, LO8       -> Landsat 8 (OLI/TIRS)       -> l8cfmask
//   LT4, LT5, LE7  -> Landsat 4-7 (TM/ETM+)      -> cfmask
//
// Any other code is rejected with a ClassificationError.
//
// =============================================================================

package platform

import (
	"errors"
	"fmt"
)

// codeLength is the number of leading filename characters that form the
// satellite code.
const codeLength = 3

// Target identifies which group of platforms a scene belongs to.
type Target int

const (
	// TargetLandsat8 covers the OLI/TIRS codes.
	TargetLandsat8 Target = iota + 1

	// TargetLegacy covers the TM and ETM+ codes.
	TargetLegacy
)

// String returns a readable name for the target.
func (t Target) String() string {
	switch t {
	case TargetLandsat8:
		return "landsat8"
	case TargetLegacy:
		return "landsat4-7"
	default:
		return fmt.Sprintf("Target(%d)", int(t))
	}
}

var (
	landsat8Codes = []string{"LC8", "LO8"}
	legacyCodes   = []string{"LT4", "LT5", "LE7"}
)

// ErrUnknownPlatform is matched by every ClassificationError.
var ErrUnknownPlatform = errors.New("unknown satellite platform")

// ClassificationError reports a filename whose satellite code belongs to
// neither target.
type ClassificationError struct {
	// Code is the offending satellite code.
	Code string

	// Filename is the XML filename the code was read from.
	Filename string
}

// Error implements the error interface.
func (e *ClassificationError) Error() string {
	return fmt.Sprintf("Satellite code (%s) from %s not understood", e.Code, e.Filename)
}

// Unwrap lets errors.Is match ErrUnknownPlatform.
func (e *ClassificationError) Unwrap() error {
	return ErrUnknownPlatform
}

// Code returns the satellite code of filename. Names shorter than three
// characters are returned whole.
func Code(filename string) string {
	if len(filename) < codeLength {
		return filename
	}
	return filename[:codeLength]
}

// Classify maps filename to its target using the satellite code.
func Classify(filename string) (Target, error) {
	code := Code(filename)

	if contains(landsat8Codes, code) {
		return TargetLandsat8, nil
	}
	if contains(legacyCodes, code) {
		return TargetLegacy, nil
	}

	return 0, &ClassificationError{Code: code, Filename: filename}
}

func contains(codes []string, code string) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
