package router_test

import (
	"errors"
	"testing"

	router "github.com/cda-tum/mmft-routing-block-channel-router"
)

func f(v float64) *float64 { return &v }
func i(v int) *int         { return &v }

func validInput() router.ValidateInput {
	return router.ValidateInput{
		BoardWidth:     f(45),
		BoardHeight:    f(45),
		PortDiameter:   f(2),
		FrameWidth:     f(60),
		FrameHeight:    f(60),
		Pitch:          f(9),
		PitchOffsetX:   f(10),
		PitchOffsetY:   f(10),
		ChannelWidth:   f(1),
		ChannelSpacing: f(1),
		MaxPorts:       i(100),
	}
}

func TestValidateAcceptsWellFormedInput(t *testing.T) {
	warnings, err := router.Validate(validInput())
	if err != nil {
		t.Fatalf("Validate() error = %v, expected no error", err)
	}
	if len(warnings) != 0 {
		t.Errorf("Validate() warnings = %v, expected none", warnings)
	}
}

func TestValidateUndefinedFieldsReported(t *testing.T) {
	input := router.ValidateInput{}
	_, err := router.Validate(input)

	var verr *router.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() error = %v, expected *ValidationError", err)
	}

	want := map[router.ValidationErrorCode]bool{
		router.ErrBoardWidthUndefined:     true,
		router.ErrBoardHeightUndefined:    true,
		router.ErrFrameWidthUndefined:     true,
		router.ErrFrameHeightUndefined:    true,
		router.ErrPortDiameterUndefined:   true,
		router.ErrPitchUndefined:          true,
		router.ErrPitchOffsetXUndefined:   true,
		router.ErrPitchOffsetYUndefined:   true,
		router.ErrChannelWidthUndefined:   true,
		router.ErrChannelSpacingUndefined: true,
	}

	got := make(map[router.ValidationErrorCode]bool)
	for _, issue := range verr.Issues {
		got[issue.Code] = true
	}

	for code := range want {
		if !got[code] {
			t.Errorf("expected issue code %d to be reported for a fully empty input", code)
		}
	}
}

func TestValidateNonPositiveDimensions(t *testing.T) {
	input := validInput()
	input.BoardWidth = f(-1)

	_, err := router.Validate(input)
	var verr *router.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() error = %v, expected *ValidationError", err)
	}

	found := false
	for _, issue := range verr.Issues {
		if issue.Code == router.ErrBoardWidthNotPositive {
			found = true
		}
	}
	if !found {
		t.Errorf("expected ErrBoardWidthNotPositive for a negative board width")
	}
}

func TestValidateFrameMustExceedBoard(t *testing.T) {
	input := validInput()
	input.FrameWidth = f(10) // smaller than BoardWidth

	_, err := router.Validate(input)
	var verr *router.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() error = %v, expected *ValidationError", err)
	}

	found := false
	for _, issue := range verr.Issues {
		if issue.Code == router.ErrFrameWidthNotLargerThanBoard {
			found = true
		}
	}
	if !found {
		t.Errorf("expected ErrFrameWidthNotLargerThanBoard when frame_width <= board_width")
	}
}

func TestValidateChannelDimensionsTooLarge(t *testing.T) {
	input := validInput()
	input.ChannelWidth = f(6)
	input.ChannelSpacing = f(6) // sum (12) exceeds pitch (9)

	_, err := router.Validate(input)
	var verr *router.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() error = %v, expected *ValidationError", err)
	}

	found := false
	for _, issue := range verr.Issues {
		if issue.Code == router.ErrChannelDimensionsTooLarge {
			found = true
		}
	}
	if !found {
		t.Errorf("expected ErrChannelDimensionsTooLarge when channel_width + channel_spacing > pitch")
	}
}

func TestValidateMaxPortsExceeded(t *testing.T) {
	input := validInput()
	input.MaxPorts = i(1)

	_, err := router.Validate(input)
	var verr *router.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() error = %v, expected *ValidationError", err)
	}

	found := false
	for _, issue := range verr.Issues {
		if issue.Code == router.ErrMaxPortsExceeded {
			found = true
			if issue.Max != 1 {
				t.Errorf("issue.Max = %d, expected 1", issue.Max)
			}
		}
	}
	if !found {
		t.Errorf("expected ErrMaxPortsExceeded when the board's port grid exceeds max_ports")
	}
}

func TestValidateConnectionPortOutOfRange(t *testing.T) {
	input := validInput()
	input.Connections = []router.RouteInputConnection{
		{ID: 1, Ports: []router.Port{{X: 999, Y: 0}, {X: 0, Y: 999}}},
	}

	_, err := router.Validate(input)
	var verr *router.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() error = %v, expected *ValidationError", err)
	}

	var sawX, sawY bool
	for _, issue := range verr.Issues {
		if issue.Code == router.ErrInvalidConnectionPortX {
			sawX = true
		}
		if issue.Code == router.ErrInvalidConnectionPortY {
			sawY = true
		}
	}
	if !sawX || !sawY {
		t.Errorf("expected both ErrInvalidConnectionPortX and ErrInvalidConnectionPortY to be reported")
	}
}

func TestValidatePitchNotMultipleWarning(t *testing.T) {
	input := validInput()
	input.Pitch = f(10) // 10/1.5 is not an integer

	warnings, err := router.Validate(input)
	if err != nil {
		t.Fatalf("Validate() error = %v, expected warnings only, no error", err)
	}

	found := false
	for _, w := range warnings {
		if w.Code == router.WarnPitchNotMultiple {
			found = true
		}
	}
	if !found {
		t.Errorf("expected WarnPitchNotMultiple for pitch=10")
	}
}
