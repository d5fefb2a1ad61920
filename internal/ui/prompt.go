package ui

import (
	"strings"

	"github.com/manifoldco/promptui"
)

// Prompter reads confirmations and free-form input from the terminal via
// promptui. Its zero value is ready to use.
type Prompter struct{}

// Confirm asks a yes/no question. Aborting (ctrl-c, empty input on [y/N])
// yields the default.
func (Prompter) Confirm(label string, defaultYes bool) (bool, error) {
	if defaultYes {
		label += " [Y/n]"
	} else {
		label += " [y/N]"
	}

	p := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	if defaultYes {
		p.Default = "y"
	}

	result, err := p.Run()
	if err != nil {
		if err == promptui.ErrAbort {
			return false, nil
		}
		return defaultYes, nil
	}

	result = strings.ToLower(strings.TrimSpace(result))
	if result == "" {
		return defaultYes, nil
	}
	return result == "y" || result == "yes", nil
}

// Input asks for a line of text.
func (Prompter) Input(label string) (string, error) {
	p := promptui.Prompt{Label: label}

	result, err := p.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(result), nil
}
