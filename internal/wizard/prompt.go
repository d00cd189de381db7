package wizard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

// askString prompts for a line of text, returning the default on an empty
// answer. Surrounding quotes are stripped in case the user pasted a path.
func askString(msg, def string) (string, error) {
	var s string
	prompt := &survey.Input{Message: msg, Default: def}
	if err := survey.AskOne(prompt, &s); err != nil {
		return "", err
	}
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	if s == "" {
		return def, nil
	}
	return s, nil
}

// askInt prompts for an integer, re-asking until the answer parses.
func askInt(msg string, def int) (int, error) {
	for {
		s, err := askString(msg, strconv.Itoa(def))
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			fmt.Println("Please enter a valid integer.")
			continue
		}
		return n, nil
	}
}

// askFloat prompts for a number (typically MHz), re-asking until it parses.
func askFloat(msg string, def float64) (float64, error) {
	for {
		s, err := askString(msg, strconv.FormatFloat(def, 'f', 5, 64))
		if err != nil {
			return 0, err
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			fmt.Println("Please enter a valid number (e.g. 146.520).")
			continue
		}
		return f, nil
	}
}

// askConfirm prompts for a yes/no answer with a default.
func askConfirm(msg string, def bool) (bool, error) {
	var ok bool
	prompt := &survey.Confirm{Message: msg, Default: def}
	if err := survey.AskOne(prompt, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

// askSlot prompts for a DMR time slot, re-asking until it is 1 or 2.
func askSlot(msg string, def int) (int, error) {
	for {
		n, err := askInt(msg, def)
		if err != nil {
			return 0, err
		}
		if n == 1 || n == 2 {
			return n, nil
		}
		fmt.Println("Please enter 1 or 2 for the time slot.")
	}
}
