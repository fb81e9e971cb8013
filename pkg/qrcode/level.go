package qrcode

import (
	"fmt"
	"strings"

	goqr "github.com/skip2/go-qrcode"
)

// RecoveryLevel is the QR error correction level.
type RecoveryLevel int

const (
	Low RecoveryLevel = iota
	Medium
	Quartile
	High
)

// String returns the single letter name of the level (L, M, Q, H).
func (l RecoveryLevel) String() string {
	switch l {
	case Low:
		return "L"
	case Medium:
		return "M"
	case Quartile:
		return "Q"
	case High:
		return "H"
	default:
		return fmt.Sprintf("RecoveryLevel(%d)", int(l))
	}
}

// ParseLevel accepts both letter (L, M, Q, H) and word (low, medium,
// quartile, high) forms, case-insensitively.
func ParseLevel(s string) (RecoveryLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l", "low":
		return Low, nil
	case "m", "medium":
		return Medium, nil
	case "q", "quartile":
		return Quartile, nil
	case "h", "high":
		return High, nil
	}
	return Medium, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

// UnmarshalText lets env and JSON decoders fill a RecoveryLevel.
func (l *RecoveryLevel) UnmarshalText(text []byte) error {
	lvl, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = lvl
	return nil
}

func (l RecoveryLevel) MarshalText() ([]byte, error) {
	if l < Low || l > High {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, int(l))
	}
	return []byte(l.String()), nil
}

// skip2 names the two upper levels High and Highest.
func (l RecoveryLevel) encoderLevel() (goqr.RecoveryLevel, error) {
	switch l {
	case Low:
		return goqr.Low, nil
	case Medium:
		return goqr.Medium, nil
	case Quartile:
		return goqr.High, nil
	case High:
		return goqr.Highest, nil
	}
	return goqr.Medium, fmt.Errorf("%w: %d", ErrInvalidLevel, int(l))
}
