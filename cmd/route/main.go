// Command route reads a RouteInput document (JSON) from stdin or a file
// argument, runs the router, and writes the resulting board as JSON.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	router "github.com/cda-tum/mmft-routing-block-channel-router"
	"github.com/sirupsen/logrus"
)

// routeInputDoc is the JSON wire shape for router.RouteInput; it exists
// separately so a board profile (loaded from YAML) can fill in zero
// fields before conversion.
type routeInputDoc struct {
	ChannelWidth   float64                `json:"channel_width"`
	ChannelSpacing float64                `json:"channel_spacing"`
	Layout         string                 `json:"layout"`
	BoardWidth     float64                `json:"board_width"`
	BoardHeight    float64                `json:"board_height"`
	Pitch          float64                `json:"pitch"`
	PitchOffsetX   float64                `json:"pitch_offset_x"`
	PitchOffsetY   float64                `json:"pitch_offset_y"`
	PortDiameter   float64                `json:"port_diameter"`
	MaxPorts       int                    `json:"max_ports"`
	Connections    []connectionDoc        `json:"connections"`
}

type connectionDoc struct {
	ID         int      `json:"id"`
	Ports      [][2]int `json:"ports"`
	BranchPort *[2]int  `json:"branch_port,omitempty"`
}

func (d routeInputDoc) toRouteInput() (router.RouteInput, error) {
	layout, err := parseLayout(d.Layout)
	if err != nil {
		return router.RouteInput{}, err
	}

	conns := make([]router.RouteInputConnection, len(d.Connections))
	for i, c := range d.Connections {
		ports := make([]router.Port, len(c.Ports))
		for j, p := range c.Ports {
			ports[j] = router.Port{X: p[0], Y: p[1]}
		}

		var branch *router.Port
		if c.BranchPort != nil {
			branch = &router.Port{X: c.BranchPort[0], Y: c.BranchPort[1]}
		}

		conns[i] = router.RouteInputConnection{
			ID:         c.ID,
			Ports:      ports,
			BranchPort: branch,
		}
	}

	return router.RouteInput{
		ChannelWidth:   d.ChannelWidth,
		ChannelSpacing: d.ChannelSpacing,
		Layout:         layout,
		BoardWidth:     d.BoardWidth,
		BoardHeight:    d.BoardHeight,
		Pitch:          d.Pitch,
		PitchOffsetX:   d.PitchOffsetX,
		PitchOffsetY:   d.PitchOffsetY,
		PortDiameter:   d.PortDiameter,
		MaxPorts:       d.MaxPorts,
		Connections:    conns,
	}, nil
}

func parseLayout(s string) (router.Layout, error) {
	switch s {
	case "", "rectilinear":
		return router.Rectilinear, nil
	case "octilinear":
		return router.Octilinear, nil
	case "mixed":
		return router.Mixed, nil
	default:
		return 0, fmt.Errorf("unknown layout %q", s)
	}
}

type outputDoc struct {
	Connections []outputConnectionDoc `json:"connections"`
}

type outputConnectionDoc struct {
	ID       int         `json:"id"`
	Channels [][][2]float64 `json:"channels"`
}

func toOutputDoc(board router.Board) outputDoc {
	out := outputDoc{Connections: make([]outputConnectionDoc, 0, len(board.Nets))}
	for netID, branches := range board.Nets {
		channels := make([][][2]float64, len(branches))
		for i, branch := range branches {
			pts := make([][2]float64, len(branch))
			for j, p := range branch {
				pts[j] = [2]float64{p.X, p.Y}
			}
			channels[i] = pts
		}
		out.Connections = append(out.Connections, outputConnectionDoc{ID: netID, Channels: channels})
	}
	return out
}

func main() {
	os.Exit(run())
}

func run() int {
	var (
		profilePath = flag.String("profile", "", "path to a YAML board profile supplying default dimensions")
		outPath     = flag.String("o", "", "output file (default: stdout)")
		help        = flag.Bool("h", false, "show usage")
	)
	flag.Parse()

	if *help {
		flag.Usage()
		return 0
	}

	var in io.Reader = os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "route: %v\n", err)
			return 1
		}
		defer f.Close()
		in = f
	}

	var doc routeInputDoc
	if err := json.NewDecoder(in).Decode(&doc); err != nil {
		fmt.Fprintf(os.Stderr, "route: decoding input: %v\n", err)
		return 1
	}

	if *profilePath != "" {
		profile, err := loadBoardProfile(*profilePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "route: loading profile: %v\n", err)
			return 1
		}
		applyBoardProfile(&doc, profile)
	}

	input, err := doc.toRouteInput()
	if err != nil {
		fmt.Fprintf(os.Stderr, "route: %v\n", err)
		return 1
	}

	board, err := router.Route(input)
	if err != nil {
		var partial *router.PartialResultError
		if errors.As(err, &partial) {
			logrus.Warnf("partial result: %v", err)
			board = partial.Board
		} else {
			fmt.Fprintf(os.Stderr, "route: %v\n", err)
			return 1
		}
	}

	out, err := json.MarshalIndent(toOutputDoc(board), "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "route: encoding output: %v\n", err)
		return 1
	}

	if *outPath == "" {
		fmt.Println(string(out))
		return 0
	}

	return writeOutputFile(*outPath, out)
}

// writeOutputFile writes to a temp file in the same directory and renames
// it into place, so a crash mid-write never leaves a truncated result at
// outPath.
func writeOutputFile(outPath string, data []byte) int {
	dir := filepath.Dir(outPath)
	tmp, err := os.CreateTemp(dir, ".route-*.tmp")
	if err != nil {
		fmt.Fprintf(os.Stderr, "route: %v\n", err)
		return 1
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		fmt.Fprintf(os.Stderr, "route: %v\n", err)
		return 1
	}
	if err := tmp.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "route: %v\n", err)
		return 1
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		fmt.Fprintf(os.Stderr, "route: %v\n", err)
		return 1
	}

	return 0
}
