package component

type Coin struct {
	Value int
	// ScorePerValue is added to the score for each unit of Value.
	ScorePerValue int
	Radius        float64
}

var CoinComponent = NewComponent[Coin]()

type PowerUpKind string

const (
	PowerUpMushroom   PowerUpKind = "mushroom"
	PowerUpFireFlower PowerUpKind = "fire_flower"
	PowerUpStar       PowerUpKind = "star"
)

type PowerUp struct {
	Kind   PowerUpKind
	Score  int
	Radius float64
}

var PowerUpComponent = NewComponent[PowerUp]()

// Hover bobs and spins a pickup around the height it was placed at.
type Hover struct {
	BaseY       float64
	Phase       float64
	Speed       float64
	Amplitude   float64
	Spin        float64
	Initialized bool
}

var HoverComponent = NewComponent[Hover]()
