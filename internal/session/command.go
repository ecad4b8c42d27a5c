package session

import "strings"

// CommandKind identifies a line typed at the prompt.
type CommandKind int

const (
	CmdNone CommandKind = iota // blank line
	CmdQuit
	CmdSave
	CmdLoad
	CmdReset
	CmdHistory
	CmdMove
)

func (k CommandKind) String() string {
	names := []string{"none", "quit", "save", "load", "reset", "history", "move"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// Command is a parsed input line. Arg holds the file for save and load
// (empty when none was given) or the move text.
type Command struct {
	Kind CommandKind
	Arg  string
}

// ParseCommand splits an input line into a command. Anything that is not a
// known command word is a move attempt.
func ParseCommand(line string) Command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{Kind: CmdNone}
	}

	arg := ""
	if len(fields) > 1 {
		arg = fields[1]
	}

	switch fields[0] {
	case "q", "quit", "exit":
		return Command{Kind: CmdQuit}
	case "save":
		return Command{Kind: CmdSave, Arg: arg}
	case "load":
		return Command{Kind: CmdLoad, Arg: arg}
	case "reset":
		return Command{Kind: CmdReset}
	case "history":
		return Command{Kind: CmdHistory}
	}
	return Command{Kind: CmdMove, Arg: fields[0]}
}
