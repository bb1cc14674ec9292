// Package autocorrect maps a misspelled command to the closest known one.
package autocorrect

import (
	"fmt"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

// DefaultCommands are the commands of the police records CLI
var DefaultCommands = []string{"add", "clear", "delete", "find", "help", "list", "edit", "viewall", "view"}

// MaxDistance is the largest edit distance for which Suggest returns a match
const MaxDistance = 2

const messageFormat = "Did you mean to use %s ? Please try changing the command."

// Dictionary is an immutable list of known commands
type Dictionary struct {
	commands []string
}

// New creates a dictionary. commands is copied.
func New(commands []string) *Dictionary {
	var cmds []string
	for _, c := range commands {
		c = strings.ToLower(strings.TrimSpace(c))
		if c != "" && !slices.Contains(cmds, c) {
			cmds = append(cmds, c)
		}
	}
	return &Dictionary{commands: cmds}
}

// Commands returns a copy of known commands
func (d *Dictionary) Commands() []string {
	return slices.Clone(d.commands)
}

// Suggest returns the known command closest to word.
// Ties go to the command listed first. Returns false if word is a known
// command or nothing is within MaxDistance.
func (d *Dictionary) Suggest(word string) (string, bool) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" || slices.Contains(d.commands, word) {
		return "", false
	}
	best, bestDist := "", MaxDistance+1
	for _, c := range d.commands {
		dist := levenshtein.ComputeDistance(word, c)
		if dist < bestDist {
			best, bestDist = c, dist
		}
	}
	return best, best != ""
}

// Message returns the text shown to the user for a misspelled word,
// "" if there's nothing to suggest
func (d *Dictionary) Message(word string) string {
	c, ok := d.Suggest(word)
	if !ok {
		return ""
	}
	return fmt.Sprintf(messageFormat, c)
}
