package router

import "fmt"

// ValidateInput mirrors the wire shape validated ahead of a Route call.
// Every field is a pointer so that "missing" and "present but invalid"
// can be distinguished, matching the original validator's Option-typed
// input.
type ValidateInput struct {
	BoardWidth     *float64
	BoardHeight    *float64
	PortDiameter   *float64
	FrameWidth     *float64
	FrameHeight    *float64
	Pitch          *float64
	PitchOffsetX   *float64
	PitchOffsetY   *float64
	ChannelWidth   *float64
	ChannelSpacing *float64
	MaxPorts       *int
	Connections    []RouteInputConnection
	PortsX         *int // supplied once ports are known, for port-index checks
	PortsY         *int
}

// ValidationErrorCode enumerates the input-shape failure taxonomy of §7,
// grounded on the original validator's error enum.
type ValidationErrorCode int

const (
	ErrBoardWidthUndefined ValidationErrorCode = iota
	ErrBoardWidthNotPositive
	ErrBoardHeightUndefined
	ErrBoardHeightNotPositive
	ErrFrameWidthUndefined
	ErrFrameWidthNotPositive
	ErrFrameWidthNotLargerThanBoard
	ErrFrameHeightUndefined
	ErrFrameHeightNotPositive
	ErrFrameHeightNotLargerThanBoard
	ErrPortDiameterUndefined
	ErrPortDiameterNotPositive
	ErrPitchUndefined
	ErrPitchNotPositive
	ErrPitchOffsetXUndefined
	ErrPitchOffsetXNotPositive
	ErrPitchOffsetXSmallerThanPitch
	ErrPitchOffsetYUndefined
	ErrPitchOffsetYNotPositive
	ErrPitchOffsetYSmallerThanPitch
	ErrChannelWidthUndefined
	ErrChannelWidthNotPositive
	ErrChannelSpacingUndefined
	ErrChannelSpacingNotPositive
	ErrChannelDimensionsTooLarge
	ErrMaxPortsExceeded
	ErrInvalidConnectionPortX
	ErrInvalidConnectionPortY
)

// ValidationIssue is one validation error, with the extra context some
// variants carry (actual/max ports, the offending connection and port).
type ValidationIssue struct {
	Code         ValidationErrorCode
	ConnectionID ConnectionID
	Port         Port
	Actual       int
	Max          int
}

func (i ValidationIssue) String() string {
	switch i.Code {
	case ErrMaxPortsExceeded:
		return fmt.Sprintf("max ports exceeded: %d ports requested, %d allowed", i.Actual, i.Max)
	case ErrInvalidConnectionPortX, ErrInvalidConnectionPortY:
		return fmt.Sprintf("connection %d references an out-of-range port %v", i.ConnectionID, i.Port)
	default:
		return fmt.Sprintf("validation error code %d", i.Code)
	}
}

// ValidationWarningCode enumerates the non-fatal warnings of §7.
type ValidationWarningCode int

const (
	WarnPitchNotMultiple ValidationWarningCode = iota
	WarnBoardWidthNotMultiple
	WarnBoardHeightNotMultiple
)

type ValidationWarning struct {
	Code    ValidationWarningCode
	Nearest float64
}

// ValidationError is returned when Validate finds at least one
// ValidationIssue; it also carries any warnings collected along the way.
type ValidationError struct {
	Warnings []ValidationWarning
	Issues   []ValidationIssue
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("router: %d validation error(s)", len(e.Issues))
}

const multipleOf = 1.5

func isIntegerMultiple(value float64) bool {
	return value == float64(int64(value))
}

// Validate checks the input-shape invariants listed in §7 and returns any
// non-fatal warnings. It does not call Route and has no side effects; it
// is the external collaborator's entry point, kept in this package only
// because it shares the error/warning taxonomy with the core.
func Validate(input ValidateInput) ([]ValidationWarning, error) {
	var warnings []ValidationWarning
	var issues []ValidationIssue

	checkPositive := func(v *float64, undef, notPositive ValidationErrorCode) {
		if v == nil {
			issues = append(issues, ValidationIssue{Code: undef})
			return
		}
		if *v <= 0 {
			issues = append(issues, ValidationIssue{Code: notPositive})
		}
	}

	if input.BoardWidth == nil {
		issues = append(issues, ValidationIssue{Code: ErrBoardWidthUndefined})
	} else if *input.BoardWidth <= 0 {
		issues = append(issues, ValidationIssue{Code: ErrBoardWidthNotPositive})
	} else if !isIntegerMultiple(*input.BoardWidth / multipleOf) {
		warnings = append(warnings, ValidationWarning{Code: WarnBoardWidthNotMultiple, Nearest: multipleOf * round(*input.BoardWidth/multipleOf)})
	}

	if input.BoardHeight == nil {
		issues = append(issues, ValidationIssue{Code: ErrBoardHeightUndefined})
	} else if *input.BoardHeight <= 0 {
		issues = append(issues, ValidationIssue{Code: ErrBoardHeightNotPositive})
	} else if !isIntegerMultiple(*input.BoardHeight / multipleOf) {
		warnings = append(warnings, ValidationWarning{Code: WarnBoardHeightNotMultiple, Nearest: multipleOf * round(*input.BoardHeight/multipleOf)})
	}

	checkPositive(input.FrameWidth, ErrFrameWidthUndefined, ErrFrameWidthNotPositive)
	checkPositive(input.FrameHeight, ErrFrameHeightUndefined, ErrFrameHeightNotPositive)
	checkPositive(input.PortDiameter, ErrPortDiameterUndefined, ErrPortDiameterNotPositive)

	if input.Pitch == nil {
		issues = append(issues, ValidationIssue{Code: ErrPitchUndefined})
	} else if *input.Pitch <= 0 {
		issues = append(issues, ValidationIssue{Code: ErrPitchNotPositive})
	} else if !isIntegerMultiple(*input.Pitch / multipleOf) {
		warnings = append(warnings, ValidationWarning{Code: WarnPitchNotMultiple, Nearest: multipleOf * round(*input.Pitch/multipleOf)})
	}

	checkPositive(input.PitchOffsetX, ErrPitchOffsetXUndefined, ErrPitchOffsetXNotPositive)
	checkPositive(input.PitchOffsetY, ErrPitchOffsetYUndefined, ErrPitchOffsetYNotPositive)
	checkPositive(input.ChannelWidth, ErrChannelWidthUndefined, ErrChannelWidthNotPositive)
	checkPositive(input.ChannelSpacing, ErrChannelSpacingUndefined, ErrChannelSpacingNotPositive)

	if input.FrameWidth != nil && input.BoardWidth != nil && *input.FrameWidth <= *input.BoardWidth {
		issues = append(issues, ValidationIssue{Code: ErrFrameWidthNotLargerThanBoard})
	}
	if input.FrameHeight != nil && input.BoardHeight != nil && *input.FrameHeight <= *input.BoardHeight {
		issues = append(issues, ValidationIssue{Code: ErrFrameHeightNotLargerThanBoard})
	}
	if input.Pitch != nil && input.PitchOffsetX != nil && *input.PitchOffsetX < *input.Pitch {
		issues = append(issues, ValidationIssue{Code: ErrPitchOffsetXSmallerThanPitch})
	}
	if input.Pitch != nil && input.PitchOffsetY != nil && *input.PitchOffsetY < *input.Pitch {
		issues = append(issues, ValidationIssue{Code: ErrPitchOffsetYSmallerThanPitch})
	}

	if input.ChannelWidth != nil && input.ChannelSpacing != nil && input.Pitch != nil {
		if *input.ChannelWidth+*input.ChannelSpacing > *input.Pitch {
			issues = append(issues, ValidationIssue{Code: ErrChannelDimensionsTooLarge})
		}
	}

	if input.BoardWidth != nil && input.BoardHeight != nil && input.Pitch != nil &&
		input.PitchOffsetX != nil && input.PitchOffsetY != nil && input.MaxPorts != nil {
		portsX, portsY := ComputePorts(*input.BoardWidth, *input.BoardHeight, *input.Pitch, *input.PitchOffsetX, *input.PitchOffsetY)
		total := portsX * portsY
		if total > *input.MaxPorts {
			issues = append(issues, ValidationIssue{Code: ErrMaxPortsExceeded, Actual: total, Max: *input.MaxPorts})
		}

		for _, conn := range input.Connections {
			for _, p := range conn.Ports {
				if p.X < 0 || p.X >= portsX {
					issues = append(issues, ValidationIssue{Code: ErrInvalidConnectionPortX, ConnectionID: conn.ID, Port: p})
				}
				if p.Y < 0 || p.Y >= portsY {
					issues = append(issues, ValidationIssue{Code: ErrInvalidConnectionPortY, ConnectionID: conn.ID, Port: p})
				}
			}
		}
	}

	if len(issues) > 0 {
		return warnings, &ValidationError{Warnings: warnings, Issues: issues}
	}
	return warnings, nil
}

func round(v float64) float64 {
	if v < 0 {
		return float64(int64(v - 0.5))
	}
	return float64(int64(v + 0.5))
}
