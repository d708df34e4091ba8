package commands

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/nymea/tscat/pkg/utils"
)

// ReleaseTemplateData is what the commandTemplates.release template is rendered with
type ReleaseTemplateData struct {
	File   string
	Output string
}

// DefaultReleaseOutput is where a compiled catalog goes when no output is given:
// next to the TS file, with a .qm extension
func DefaultReleaseOutput(file string) string {
	return strings.TrimSuffix(file, filepath.Ext(file)) + ".qm"
}

// ReleaseCommand renders the configured release command for a TS file
func (c *OSCommand) ReleaseCommand(file, output string) (string, error) {
	if output == "" {
		output = DefaultReleaseOutput(file)
	}

	return utils.ApplyTemplate(
		c.Config.UserConfig.CommandTemplates.Release,
		ReleaseTemplateData{
			File:   c.Quote(file),
			Output: c.Quote(output),
		},
	)
}

// Release compiles a TS file by running the release command, returning its
// combined output. Cancelling ctx kills the command along with anything it
// started.
func (c *OSCommand) Release(ctx context.Context, file, output string) (string, error) {
	command, err := c.ReleaseCommand(file, output)
	if err != nil {
		return "", err
	}
	c.Log.Infof("running release command: %s", command)

	cmd := c.ExecutableFromStringContext(ctx, command)
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return buf.String(), ctx.Err()
		}
		if _, ok := err.(*exec.ExitError); !ok {
			return buf.String(), WrapError(err)
		}
		message := strings.TrimSpace(buf.String())
		if message == "" {
			message = err.Error()
		}
		return buf.String(), NewComplexError(ReleaseFailed, fmt.Sprintf("'%s' failed: %s", command, message))
	}

	return buf.String(), nil
}
