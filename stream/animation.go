package stream

// An Animation renders the frame to show runtimeMs after the animation started.
type Animation interface {
	CalculateFrame(runtimeMs int64) *Frame
}

// A Styler is an Animation whose stroke style can be replaced between frames.
type Styler interface {
	SetStyle(style StyleConfig) error
}
