package picker

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
)

// FilePicker asks the user for one file per call using a terminal file browser.
// Aborting the prompt (esc or ctrl+c) counts as "no more".
type FilePicker struct {
	title string
	dir   string
}

// NewFilePicker starts browsing in dir, or the working directory when dir is empty.
func NewFilePicker(dir string) *FilePicker {
	if dir == "" {
		if wd, err := os.Getwd(); err == nil {
			dir = wd
		}
	}
	return &FilePicker{title: "Select Program to Launch", dir: dir}
}

// PickPath implements PathProvider.
func (p *FilePicker) PickPath() (string, bool, error) {
	var path string
	err := huh.NewFilePicker().
		Title(p.title).
		CurrentDirectory(p.dir).
		FileAllowed(true).
		DirAllowed(false).
		Picking(true).
		Value(&path).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if path == "" {
		return "", false, nil
	}
	return path, true, nil
}

// PromptConfirmer asks yes/no questions in the terminal.
type PromptConfirmer struct{}

// Confirm implements Confirmer. Aborting the prompt answers no.
func (PromptConfirmer) Confirm(question string) (bool, error) {
	var yes bool
	err := huh.NewConfirm().
		Title(question).
		Affirmative("Yes").
		Negative("No").
		Value(&yes).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return yes, nil
}
