package autocorrect

import (
	"testing"

	"github.com/alecthomas/assert"
)

func TestSuggest(t *testing.T) {
	d := New(DefaultCommands)
	tests := []struct {
		word string
		exp  string
		ok   bool
	}{
		{"ad", "add", true},
		{"dleete", "delete", true},
		{"LSIT", "list", true},
		{"veiwall", "viewall", true},
		{"fnd", "find", true},
		{"list", "", false},
		{"", "", false},
		{"frobnicate", "", false},
	}
	for _, test := range tests {
		got, ok := d.Suggest(test.word)
		assert.Equal(t, test.ok, ok, "word: '%s'", test.word)
		assert.Equal(t, test.exp, got, "word: '%s'", test.word)
	}
	assert.Equal(t, "Did you mean to use clear ? Please try changing the command.", d.Message("claer"))
	assert.Equal(t, "", d.Message("xyzzyxyzzy"))
}

func TestDictionaryIsImmutable(t *testing.T) {
	cmds := []string{"add", " Add ", "list"}
	d := New(cmds)
	cmds[0] = "zzz"
	assert.Equal(t, []string{"add", "list"}, d.Commands())
	got := d.Commands()
	got[0] = "yyy"
	assert.Equal(t, []string{"add", "list"}, d.Commands())
}
