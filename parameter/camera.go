package parameter

// Travel close-up framing, shared by every world
// Position (obj.x*X, Height+(1-e)*Rise, obj.z+Pull*(1-e)+Back), look (obj.x*LookX, LookHeight, obj.z)
const (
	CloseUpXFactor    = 0.6
	CloseUpHeight     = 3.2
	CloseUpRise       = 1.5
	CloseUpPull       = 4.0
	CloseUpBack       = 2.0
	CloseUpLookX      = 0.5
	CloseUpLookHeight = 2.0
)
