package port

// TitleSink receives the window title whenever the active pane or its
// title changes.
type TitleSink interface {
	SetWindowTitle(title string)
}

// TitleSinkFunc adapts a function to TitleSink.
type TitleSinkFunc func(title string)

func (f TitleSinkFunc) SetWindowTitle(title string) {
	f(title)
}
