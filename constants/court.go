package constants

// Court boundaries
const (
	// NetBoundaryLeft and NetBoundaryRight bracket the net; a bounce must land past them
	NetBoundaryLeft  = 116
	NetBoundaryRight = 124

	// CourtEdgeLeft and CourtEdgeRight are the baselines; crossing one before any bounce is out
	CourtEdgeLeft  = 8
	CourtEdgeRight = 232
)

// Actor and ball geometry
const (
	PlayerWidth  = 16
	PlayerHeight = 32

	// PlayerStartInset is the stance distance from each screen edge
	PlayerStartInset = 20

	// ServeBallInset is how far inside the server's width the ball is held
	ServeBallInset = 4

	BallSize   = 4
	HitBoxSize = 12
)

// Colors (BGR555)
const (
	ColorWhite   = 0x7FFF
	ColorCyan    = 0x7FE0
	ColorRed     = 0x001F
	ColorYellow  = 0x03FF
	ColorMagenta = 0x7C1F

	// ColorPlayer and ColorCPU mark each side in standings and banners
	ColorPlayer = ColorCyan
	ColorCPU    = ColorRed
)
