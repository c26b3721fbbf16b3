package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeDone   Type = "done"
	TypeDelete Type = "delete"
	TypeOpen   Type = "open"
	TypeSaveAs Type = "saveas"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Title string
}

// TargetArgs names a library entry by id ("game-3") or by its current
// display position ("3").
type TargetArgs struct {
	Target string
}

type PathArgs struct {
	Path string
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Done   *TargetArgs
	Delete *TargetArgs
	Open   *PathArgs
	SaveAs *PathArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeDone:
		return parseTarget(input, TypeDone, args)
	case TypeDelete:
		return parseTarget(input, TypeDelete, args)
	case TypeOpen:
		return parsePath(input, TypeOpen, args)
	case TypeSaveAs:
		return parsePath(input, TypeSaveAs, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Title: title}}, nil
}

func parseTarget(raw string, kind Type, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires exactly one target", kind)}
	}
	target := TargetArgs{Target: strings.ToLower(args[0])}
	cmd := Command{Type: kind, Raw: raw}
	switch kind {
	case TypeDone:
		cmd.Done = &target
	case TypeDelete:
		cmd.Delete = &target
	}
	return cmd, nil
}

func parsePath(raw string, kind Type, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a file path", kind)}
	}
	path := strings.TrimSpace(strings.Join(args, " "))
	cmd := Command{Type: kind, Raw: raw}
	switch kind {
	case TypeOpen:
		cmd.Open = &PathArgs{Path: path}
	case TypeSaveAs:
		cmd.SaveAs = &PathArgs{Path: path}
	}
	return cmd, nil
}
