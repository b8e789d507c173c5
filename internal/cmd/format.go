package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/salmonumbrella/ftb/internal/cmdutil"
	"github.com/salmonumbrella/ftb/internal/errors"
	"github.com/salmonumbrella/ftb/internal/table"
	"github.com/salmonumbrella/ftb/internal/ui"
)

type formatOptions struct {
	write bool
	diff  bool
	check bool
}

func (o formatOptions) validate(path string) error {
	if o.write && (path == "" || path == "-") {
		return errors.NewUserError("--write requires a file argument", "Pass the path of the file to rewrite")
	}
	if o.write && (o.diff || o.check) {
		return &errors.ValidationError{Field: "--write", Message: "cannot be combined with --diff or --check"}
	}
	return nil
}

func runFormat(cmd *cobra.Command, path string, opts formatOptions) error {
	ctx := cmd.Context()
	if err := opts.validate(path); err != nil {
		return err
	}

	stdin := stdinFromContext(ctx)
	if path == "" || path == "-" {
		maybeWarnInteractiveStdin(ctx, stdin)
	}
	src, name, err := cmdutil.ReadSource(stdin, path)
	if err != nil {
		return err
	}

	formatted := table.FormatDocument(src)
	changed := formatted != src
	slog.Debug("formatted document", "source", name, "bytes", len(src), "changed", changed)

	out := stdoutFromContext(ctx)
	switch {
	case opts.check:
		if changed {
			return &errors.CheckError{Source: name}
		}
		return nil
	case opts.diff:
		if !changed {
			return nil
		}
		_, err := io.WriteString(out, renderDiff(src, formatted))
		return err
	case opts.write:
		if !changed {
			return nil
		}
		if err := overwriteFile(path, formatted); err != nil {
			return err
		}
		ui.FromContext(ctx).Success("Formatted %s", path)
		return nil
	default:
		_, err := io.WriteString(out, formatted)
		return err
	}
}

// maybeWarnInteractiveStdin tells a user who ran ftb with no input what is
// going on instead of leaving them at a silently blocked read.
func maybeWarnInteractiveStdin(ctx context.Context, stdin io.Reader) {
	f, ok := stdin.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return
	}
	ui.FromContext(ctx).Info("Reading from terminal; press Ctrl-D to finish")
}

func overwriteFile(path, content string) error {
	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		return errors.WrapUserError(err, fmt.Sprintf("failed to write file: %s", path), "")
	}
	return nil
}

// renderDiff produces a line-oriented diff with -/+ prefixes, the shape
// familiar from gofmt-style tooling.
func renderDiff(before, after string) string {
	dmp := diffmatchpatch.New()
	a, b, lineArr := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArr)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		}
		text := strings.TrimSuffix(d.Text, "\n")
		for _, line := range strings.Split(text, "\n") {
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
