package dialog

type EventKind int

const (
	EventText EventKind = iota
	EventContact
	EventCommand
)

func (k EventKind) String() string {
	switch k {
	case EventText:
		return "text"
	case EventContact:
		return "contact"
	case EventCommand:
		return "command"
	default:
		return "unknown"
	}
}

// Contact is a phone number shared through the contact button.
type Contact struct {
	PhoneNumber string
	DisplayName string
	PlatformID  int64
}

// Event is one inbound update. ChatID is used for logging only.
type Event struct {
	Kind    EventKind
	ChatID  int64
	Text    string
	Contact Contact
	Command string
}

func TextEvent(chatID int64, text string) Event {
	return Event{Kind: EventText, ChatID: chatID, Text: text}
}

func ContactEvent(chatID int64, c Contact) Event {
	return Event{Kind: EventContact, ChatID: chatID, Contact: c}
}

// CommandEvent takes the command name without the leading slash.
func CommandEvent(chatID int64, name string) Event {
	return Event{Kind: EventCommand, ChatID: chatID, Command: name}
}
