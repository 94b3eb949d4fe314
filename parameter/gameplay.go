// @focus: #constants { gameplay }
package parameter

import "time"

// Ball
const (
	// BallVelocityX and BallVelocityY are the launch velocity in units per second
	BallVelocityX = 150.0
	BallVelocityY = 150.0

	// BallScale is the visual sprite scale, the renderer draws higher scale Z last at equal depth
	BallScale  = 0.06
	BallScaleZ = 1000.0

	// BallCollisionSize is the collision box edge, independent of BallScale
	BallCollisionSize = 0.06

	BallTexture = "images/top.png"
)

// Paddles
const (
	PaddleOffsetX = 600.0
	PaddleWidth   = 30.0
	PaddleHeight  = 200.0

	// PaddleStep is the position change per gated input tick
	PaddleStep = 10.0

	// PaddleInputInterval gates how often held keys move the paddles
	PaddleInputInterval = 10 * time.Millisecond

	NamePlayerOne = "Player1"
	NamePlayerTwo = "Player2"
)

// Input
const (
	// KeyHoldWindow is how long a single key press is treated as held, terminals report no key release
	KeyHoldWindow = 150 * time.Millisecond
)
