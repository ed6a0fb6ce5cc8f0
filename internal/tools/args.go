package tools

import (
	"errors"
	"fmt"
)

// Argument parsing for each tool. Parsing checks shape only: a field that is
// present must have the right type. Business rules, such as the call-details
// filter requirement, are enforced by the client, not here — a cursor-only
// call-details bag parses fine and is rejected later.

type listCallsArgs struct {
	FromDateTime string
	ToDateTime   string
	Cursor       string
}

type transcriptArgs struct {
	CallIDs []string
}

type callDetailsArgs struct {
	CallIDs        []string
	FromDateTime   string
	ToDateTime     string
	PrimaryUserIDs []string
	Context        string
	Cursor         string
}

type listUsersArgs struct {
	Cursor string
}

func parseListCallsArgs(args map[string]any) (listCallsArgs, error) {
	var out listCallsArgs
	var err error
	if out.FromDateTime, err = optionalString(args, "fromDateTime"); err != nil {
		return out, err
	}
	if out.ToDateTime, err = optionalString(args, "toDateTime"); err != nil {
		return out, err
	}
	out.Cursor, err = optionalString(args, "cursor")
	return out, err
}

func parseTranscriptArgs(args map[string]any) (transcriptArgs, error) {
	v, ok := args["callIds"]
	if !ok {
		return transcriptArgs{}, errors.New(`"callIds" is required`)
	}
	ids, err := stringSlice(v, "callIds")
	if err != nil {
		return transcriptArgs{}, err
	}
	return transcriptArgs{CallIDs: ids}, nil
}

func parseCallDetailsArgs(args map[string]any) (callDetailsArgs, error) {
	var out callDetailsArgs
	var err error
	if out.CallIDs, err = optionalStringSlice(args, "callIds"); err != nil {
		return out, err
	}
	if out.FromDateTime, err = optionalString(args, "fromDateTime"); err != nil {
		return out, err
	}
	if out.ToDateTime, err = optionalString(args, "toDateTime"); err != nil {
		return out, err
	}
	if out.PrimaryUserIDs, err = optionalStringSlice(args, "primaryUserIds"); err != nil {
		return out, err
	}
	if out.Context, err = optionalString(args, "context"); err != nil {
		return out, err
	}
	out.Cursor, err = optionalString(args, "cursor")
	return out, err
}

func parseListUsersArgs(args map[string]any) (listUsersArgs, error) {
	cursor, err := optionalString(args, "cursor")
	return listUsersArgs{Cursor: cursor}, err
}

// optionalString returns args[key] when present, requiring it to be a string.
func optionalString(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%q must be a string", key)
	}
	return s, nil
}

// optionalStringSlice returns args[key] when present, requiring it to be an
// array whose every element is a string.
func optionalStringSlice(args map[string]any, key string) ([]string, error) {
	v, ok := args[key]
	if !ok {
		return nil, nil
	}
	return stringSlice(v, key)
}

func stringSlice(v any, key string) ([]string, error) {
	raw, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%q must be an array of strings", key)
	}
	out := make([]string, 0, len(raw))
	for _, e := range raw {
		s, ok := e.(string)
		if !ok {
			return nil, fmt.Errorf("%q must contain only strings", key)
		}
		out = append(out, s)
	}
	return out, nil
}
