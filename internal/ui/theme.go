package ui

import "image/color"

var (
	colBG         = color.RGBA{12, 12, 18, 255}
	colBar        = color.RGBA{15, 15, 15, 255}
	colCanvas     = color.RGBA{20, 20, 30, 255}
	colCanvasEdge = color.RGBA{60, 60, 60, 255}

	colLine      = color.RGBA{0, 200, 255, 255}
	colHovered   = color.RGBA{255, 255, 0, 255}
	colSelected  = color.RGBA{40, 200, 40, 255}
	colGapHandle = color.RGBA{255, 140, 0, 255}

	colButtonBorder = color.RGBA{240, 240, 240, 255}
	colPlayButton   = color.RGBA{40, 200, 40, 255}
	colStopButton   = color.RGBA{200, 40, 40, 255}
	colEditButton   = color.RGBA{40, 160, 200, 255}
	colClearButton  = color.RGBA{120, 120, 120, 255}
	colShapeButton  = color.RGBA{140, 80, 200, 255}
	colSaveButton   = color.RGBA{200, 160, 40, 255}
	colNameBox      = color.RGBA{40, 40, 40, 255}

	colTrack     = color.RGBA{26, 26, 36, 255}
	colTrackLine = color.RGBA{50, 50, 60, 255}
	colEventIdle = color.RGBA{70, 110, 160, 255}
	colEventHot  = color.RGBA{0, 200, 255, 255}
	colEventDone = color.RGBA{60, 60, 70, 255}
	colPlayhead  = color.RGBA{255, 80, 80, 255}

	colBankItem    = color.RGBA{34, 34, 46, 255}
	colBankPending = color.RGBA{200, 160, 40, 255}
	colStatus      = color.RGBA{255, 200, 120, 255}
)
