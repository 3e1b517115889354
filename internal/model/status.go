package model

// Status is the advisory age classification of a product.
type Status int

const (
	StatusNormal Status = iota
	StatusYellow
	StatusRed
)

func (s Status) String() string {
	switch s {
	case StatusYellow:
		return "Yellow"
	case StatusRed:
		return "Red"
	default:
		return "Normal"
	}
}
