package router

import (
	"github.com/cda-tum/mmft-routing-block-channel-router/internal/f64"
	"github.com/cda-tum/mmft-routing-block-channel-router/internal/gridgeom"
	"github.com/cda-tum/mmft-routing-block-channel-router/option"
	"github.com/sirupsen/logrus"
)

// ComputePorts derives (ports_x, ports_y) from board dimensions, pitch and
// pitch offsets, per the geometry kernel contract:
//
//	ports_axis = floor((board_axis - 2*pitch_offset_axis) / pitch) + 1
func ComputePorts(boardWidth, boardHeight, pitch, pitchOffsetX, pitchOffsetY float64) (portsX, portsY int) {
	portsX = gridgeom.PortsPerAxis(boardWidth, pitchOffsetX, pitch)
	portsY = gridgeom.PortsPerAxis(boardHeight, pitchOffsetY, pitch)
	return
}

// gridLayout carries every grid-sizing derived quantity needed to place
// ports and build the Board, precomputed once per Route call.
type gridLayout struct {
	cellsPerPitch int
	cellSize      float64

	cellsX, cellsY int

	preMarginX, preMarginY int

	cellOffsetX, cellOffsetY float64

	portInfluenceRadius float64
	boxRadiusCells      int
}

// computeGridLayout implements the grid-sizing arithmetic of the
// geometry kernel, reproduced cell for cell from the original router's
// margin computation: the main grid spans every pitch period between the
// outermost ports (with a parity correction so it is cell-symmetric),
// and a pre/post margin of whole cells extends it towards the board edges.
// Both margins are sized from the pitch offset of their axis, so on the
// far side any board space beyond one pitch offset is not covered.
func computeGridLayout(input RouteInput) gridLayout {
	cellsPerPitch := gridgeom.CellsPerPitch(input.Pitch, input.ChannelWidth, input.ChannelSpacing)
	cellSize := input.Pitch / float64(cellsPerPitch)
	halfCellSize := cellSize / 2

	portsX, portsY := ComputePorts(input.BoardWidth, input.BoardHeight, input.Pitch, input.PitchOffsetX, input.PitchOffsetY)

	parity := 1 - cellsPerPitch%2
	mainGridCellsX := portsX*cellsPerPitch + parity
	mainGridCellsY := portsY*cellsPerPitch + parity

	halfSpacing := input.ChannelSpacing / 2

	marginCells := func(pitchOffset float64) int {
		remaining := pitchOffset - float64(cellsPerPitch/2)*cellSize - halfCellSize - halfSpacing
		return int(f64.Floor(f64.Max(remaining, 0) / cellSize))
	}

	preMarginX := marginCells(input.PitchOffsetX)
	preMarginY := marginCells(input.PitchOffsetY)
	postMarginX := marginCells(input.PitchOffsetX)
	postMarginY := marginCells(input.PitchOffsetY)

	cellsX := mainGridCellsX + preMarginX + postMarginX
	cellsY := mainGridCellsY + preMarginY + postMarginY

	cellOffsetX := input.PitchOffsetX - float64(cellsPerPitch/2)*cellSize - float64(preMarginX)*cellSize
	cellOffsetY := input.PitchOffsetY - float64(cellsPerPitch/2)*cellSize - float64(preMarginY)*cellSize

	portRadius := input.PortDiameter / 2
	portInfluenceRadius := portRadius + input.ChannelSpacing + input.ChannelWidth/2
	boxRadiusCells := int(f64.Ceil(portInfluenceRadius / cellSize))

	return gridLayout{
		cellsPerPitch: cellsPerPitch,
		cellSize:      cellSize,
		cellsX:        cellsX,
		cellsY:        cellsY,
		preMarginX:    preMarginX,
		preMarginY:    preMarginY,
		cellOffsetX:   cellOffsetX,
		cellOffsetY:   cellOffsetY,

		portInfluenceRadius: portInfluenceRadius,
		boxRadiusCells:      boxRadiusCells,
	}
}

// portCell maps a port index pair to its home grid cell.
func (g gridLayout) portCell(p Port) gridgeom.GridPos {
	return gridgeom.PortCell(p.X, p.Y, g.cellsPerPitch, g.preMarginX, g.preMarginY)
}

// newBoard allocates the dense cell grid and stamps physical coordinates,
// per §4.1/§3.
func newBoard(g gridLayout) *Board {
	cells := make([]Cell, g.cellsX*g.cellsY)
	for x := 0; x < g.cellsX; x++ {
		for y := 0; y < g.cellsY; y++ {
			idx := gridgeom.GridPos{IX: x, IY: y}.Index(g.cellsY)
			cells[idx] = Cell{
				IX: x,
				IY: y,
				X:  g.cellOffsetX + float64(x)*g.cellSize,
				Y:  g.cellOffsetY + float64(y)*g.cellSize,
			}
		}
	}

	return &Board{
		CellsX:   g.cellsX,
		CellsY:   g.cellsY,
		Cells:    cells,
		CellSize: g.cellSize,
		Nets:     make(map[NetID][]Channel),
	}
}

// reservePorts implements §4.3: every cell whose centre lies within
// portInfluenceRadius of a port's centre is reserved for that port's net,
// unless a different net already claimed it, in which case the cell is
// permanently blocked.
func reservePorts(board *Board, g gridLayout, connections []RouteInputConnection, log *logrus.Entry) {
	for _, conn := range connections {
		for _, port := range conn.Ports {
			cell := g.portCell(port)
			centre := board.At(cell.IX, cell.IY)

			minX := cell.IX - g.boxRadiusCells
			if minX < 0 {
				minX = 0
			}
			maxX := cell.IX + 1 + g.boxRadiusCells
			if maxX > board.CellsX {
				maxX = board.CellsX
			}
			minY := cell.IY - g.boxRadiusCells
			if minY < 0 {
				minY = 0
			}
			maxY := cell.IY + 1 + g.boxRadiusCells
			if maxY > board.CellsY {
				maxY = board.CellsY
			}

			for bx := minX; bx < maxX; bx++ {
				for by := minY; by < maxY; by++ {
					boxCell := board.At(bx, by)
					distance := f64.Hypot(boxCell.X-centre.X, boxCell.Y-centre.Y)
					if distance >= g.portInfluenceRadius {
						continue
					}

					if net, ok := boxCell.Connection.Get(); !ok || net == conn.ID {
						boxCell.Connection = option.Some(conn.ID)
					} else {
						boxCell.Blocked = true
						log.WithFields(logrus.Fields{
							"cell_x":  bx,
							"cell_y":  by,
							"net":     conn.ID,
							"blocked": net,
						}).Debug("port exclusion zones overlap, blocking shared cell")
					}
				}
			}
		}
	}
}
