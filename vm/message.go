package vm

type MessageType int

const (
	_ MessageType = iota
	MsgDebug
	MsgWarning
	MsgHalt
	MsgPause
	MsgClear
)

func (mt MessageType) String() string {
	switch mt {
	case MsgDebug:
		return "Debug"
	case MsgWarning:
		return "Warning"
	case MsgHalt:
		return "Halt"
	case MsgPause:
		return "Pause"
	case MsgClear:
		return "Clear"
	default:
		return "Unknown"
	}
}

type Message struct {
	Type    MessageType
	Message string
}

func NewMessage(mt MessageType, msg string) Message {
	return Message{Type: mt, Message: msg}
}
