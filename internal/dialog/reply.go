package dialog

// Reply is one outbound message. ImagePath, when set, names a temporary file the
// transport sends as a photo and then removes.
type Reply struct {
	Text           string
	Keyboard       []string
	RemoveKeyboard bool
	RequestContact bool
	ImagePath      string
}

// Result of handling one event. Next is always set.
type Result struct {
	Replies []Reply
	Next    State
}

func text(s string) Reply {
	return Reply{Text: s}
}

func withKeyboard(s string, labels []string) Reply {
	return Reply{Text: s, Keyboard: labels}
}
