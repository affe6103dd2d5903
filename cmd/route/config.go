package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// boardProfile supplies default physical parameters so operators routing
// against the same board repeatedly don't have to repeat them in every
// RouteInput document; non-zero fields in the input JSON always win, and
// a field that is absent or zero in the JSON takes the profile's value.
type boardProfile struct {
	ChannelWidth   *float64 `yaml:"channel_width"`
	ChannelSpacing *float64 `yaml:"channel_spacing"`
	Pitch          *float64 `yaml:"pitch"`
	PitchOffsetX   *float64 `yaml:"pitch_offset_x"`
	PitchOffsetY   *float64 `yaml:"pitch_offset_y"`
	BoardWidth     *float64 `yaml:"board_width"`
	BoardHeight    *float64 `yaml:"board_height"`
	PortDiameter   *float64 `yaml:"port_diameter"`
	MaxPorts       *int     `yaml:"max_ports"`
	Layout         string   `yaml:"layout"`
}

func loadBoardProfile(path string) (*boardProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var profile boardProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

func applyBoardProfile(doc *routeInputDoc, profile *boardProfile) {
	if profile == nil {
		return
	}

	setIfZero := func(dst *float64, src *float64) {
		if *dst == 0 && src != nil {
			*dst = *src
		}
	}

	setIfZero(&doc.ChannelWidth, profile.ChannelWidth)
	setIfZero(&doc.ChannelSpacing, profile.ChannelSpacing)
	setIfZero(&doc.Pitch, profile.Pitch)
	setIfZero(&doc.PitchOffsetX, profile.PitchOffsetX)
	setIfZero(&doc.PitchOffsetY, profile.PitchOffsetY)
	setIfZero(&doc.BoardWidth, profile.BoardWidth)
	setIfZero(&doc.BoardHeight, profile.BoardHeight)
	setIfZero(&doc.PortDiameter, profile.PortDiameter)

	if doc.MaxPorts == 0 && profile.MaxPorts != nil {
		doc.MaxPorts = *profile.MaxPorts
	}
	if doc.Layout == "" && profile.Layout != "" {
		doc.Layout = profile.Layout
	}
}
