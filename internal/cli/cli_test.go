package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionFlag(t *testing.T) {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := RunWithArgs("0.1.0-test", []string{"--version"})

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	output := buf.String()

	assert.NoError(t, err)
	assert.Contains(t, output, "idcheck 0.1.0-test")
}

func TestVersionOutputFormat(t *testing.T) {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	_ = RunWithArgs("1.2.3", []string{"--version"})

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	output := strings.TrimSpace(buf.String())

	assert.Equal(t, "idcheck 1.2.3", output)
}

func TestCheckSubcommandRegistered(t *testing.T) {
	parser, _, cmds := buildParser("test")
	assert.NotNil(t, parser.Find("check"))
	assert.NotNil(t, cmds.Check)
}

func TestImportSubcommandRegistered(t *testing.T) {
	parser, _, cmds := buildParser("test")
	assert.NotNil(t, parser.Find("import"))
	assert.NotNil(t, cmds.Import)
}

func TestStatusSubcommandRegistered(t *testing.T) {
	parser, _, cmds := buildParser("test")
	assert.NotNil(t, parser.Find("status"))
	assert.NotNil(t, cmds.Status)
}

func TestUnknownSubcommandErrors(t *testing.T) {
	parser, _, _ := buildParser("test")
	_, err := parser.ParseArgs([]string{"frobnicate"})
	assert.Error(t, err)
}
