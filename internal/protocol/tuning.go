package protocol

// Tuning holds the arena geometry and ball defaults. Positions are in
// arena pixels, speeds in pixels per tick.
type Tuning struct {
	ArenaWidth  int
	ArenaHeight int

	LeftAnchor   float64
	RightAnchor  float64
	PaddleWidth  float64
	PaddleHeight float64
	RightBand    float64 // width of the right paddle's collision band
	PaddleMinY   float64
	PaddleMaxY   float64
	ReturnNudge  float64

	MissLeft   float64
	MissRight  float64
	WallTop    float64
	WallBottom float64

	StartX       float64
	StartY       float64
	ServeX       float64
	ServeY       float64
	Speed        float64
	InitialSpeed float64 // speed of the ball before the first session starts

	WinScore int
}
