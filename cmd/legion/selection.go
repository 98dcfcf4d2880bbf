package main

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"legion/internal/picker"
)

var (
	stdinIsTerminal  = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	stdoutIsTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
)

// selectionSource decides where new programs come from: explicit arguments,
// an interactive file picker, or nowhere at all when neither is available.
func selectionSource(paths []string, noPrompt bool) (picker.PathProvider, picker.Confirmer, error) {
	if len(paths) > 0 {
		resolved := make([]string, 0, len(paths))
		for _, p := range paths {
			if !picker.IsProgramFile(p) {
				return nil, nil, fmt.Errorf("%q is not an existing file", p)
			}
			abs, err := filepath.Abs(p)
			if err != nil {
				return nil, nil, fmt.Errorf("resolve %s: %w", p, err)
			}
			resolved = append(resolved, abs)
		}
		return picker.NewSliceProvider(resolved), nil, nil
	}
	if noPrompt || !stdinIsTerminal() {
		return nil, nil, nil
	}
	return picker.NewFilePicker(""), picker.PromptConfirmer{}, nil
}
