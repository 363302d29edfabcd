package ui

import (
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/simclean/internal/logging"
	"github.com/renato0307/simclean/internal/ports"
	"github.com/renato0307/simclean/internal/theme"
)

const (
	selectHint          = "[↑↓] navigate, [space] un/select, [enter] submit, [q] quit"
	recreateTitle       = "Would you like to recreate these devices?"
	recreateDescription = "This will restore them to their default state."
)

// Prompter implements ports.DevicePrompter with huh forms
type Prompter struct {
	keyMap *huh.KeyMap
}

// Verify interface compliance at compile time
var _ ports.DevicePrompter = (*Prompter)(nil)

// NewPrompter creates a new Prompter
func NewPrompter() *Prompter {
	return &Prompter{keyMap: newKeyMap()}
}

// newKeyMap builds the huh key map: space toggles, enter submits, q/esc quit
func newKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	)
	km.MultiSelect.Toggle = key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "un/select"),
	)
	km.MultiSelect.Submit = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	)
	km.MultiSelect.Filter.SetEnabled(false)
	km.MultiSelect.SetFilter.SetEnabled(false)
	km.MultiSelect.ClearFilter.SetEnabled(false)
	return km
}

// SelectDevices implements ports.DevicePrompter.SelectDevices
func (p *Prompter) SelectDevices(rows []string) ([]int, bool, error) {
	var selected []int

	field := huh.NewMultiSelect[int]().
		Title(theme.PromptStyle.Render(selectHint)).
		Options(selectionOptions(rows)...).
		Filterable(false).
		Value(&selected)

	err := huh.NewForm(huh.NewGroup(field)).
		WithKeyMap(p.keyMap).
		WithShowHelp(false).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		logging.Logger.Info("Device selection cancelled")
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("device selection failed: %w", err)
	}

	indices := selectedIndices(selected)
	logging.Logger.Info("Devices selected", "indices", indices)
	return indices, true, nil
}

// ConfirmRecreate implements ports.DevicePrompter.ConfirmRecreate.
// Quitting the prompt counts as a no.
func (p *Prompter) ConfirmRecreate() (bool, error) {
	var recreate bool

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(recreateTitle).
				Description(recreateDescription).
				Value(&recreate).
				Affirmative("Yes").
				Negative("No"),
		),
	).WithKeyMap(p.keyMap).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		logging.Logger.Info("Recreate prompt cancelled")
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("recreate prompt failed: %w", err)
	}

	logging.Logger.Info("Recreate prompt answered", "recreate", recreate)
	return recreate, nil
}

// selectionOptions maps each row to an option whose value is its index
func selectionOptions(rows []string) []huh.Option[int] {
	options := make([]huh.Option[int], len(rows))
	for i, row := range rows {
		options[i] = huh.NewOption(row, i)
	}
	return options
}

// selectedIndices returns the chosen indices in row order
func selectedIndices(values []int) []int {
	indices := slices.Clone(values)
	slices.Sort(indices)
	return slices.Compact(indices)
}
