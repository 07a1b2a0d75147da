package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/alexanderramin/inputtree/internal/cli/formatter"
	"github.com/alexanderramin/inputtree/internal/domain"
	"github.com/alexanderramin/inputtree/internal/repository"
	"github.com/alexanderramin/inputtree/internal/service"
	"github.com/alexanderramin/inputtree/internal/tree"
)

// scriptRunner executes line-oriented editor commands against a service.
//
//	add REF              add an empty child under REF
//	edit REF VALUE...    set REF's value
//	copy REF             duplicate REF's subtree as its next sibling
//	sync REF VALUE...    set REF's value and broadcast it to copies
//	del REF              delete REF and its subtree
//	move DRAG HOVER      drop DRAG's subtree in front of HOVER
//	undo | redo          step through history
//	show                 print the current tree
//
// REF is a positional path such as 0 or 0.1, or a unique ID prefix. Blank
// lines and lines starting with # are ignored.
type scriptRunner struct {
	svc     service.ForestService
	out     io.Writer
	errOut  io.Writer
	showIDs bool
}

// scriptError reports a line that could not be parsed or resolved.
type scriptError struct {
	Line int
	Err  error
}

func (e *scriptError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }
func (e *scriptError) Unwrap() error { return e.Err }

var errUsage = errors.New("usage")

// Run executes every line of r. Rejected operations such as deleting the
// protected root print a warning and the script continues. Malformed lines
// stop the script.
func (s *scriptRunner) Run(ctx context.Context, r io.Reader) error {
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := s.exec(ctx, line); err != nil {
			var warn *warning
			if errors.As(err, &warn) {
				fmt.Fprintf(s.errOut, "%s\n", formatter.Warning(fmt.Sprintf("line %d: %s", lineNo, warn.msg)))
				continue
			}
			return &scriptError{Line: lineNo, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading script: %w", err)
	}
	return nil
}

// warning is a user-facing rejection that does not stop the script.
type warning struct{ msg string }

func (w *warning) Error() string { return w.msg }

func (s *scriptRunner) exec(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	verb, args := strings.ToLower(fields[0]), fields[1:]

	switch verb {
	case "add", "copy", "del":
		if len(args) != 1 {
			return fmt.Errorf("%w: %s REF", errUsage, verb)
		}
		id, err := s.resolve(ctx, args[0])
		if err != nil {
			return err
		}
		switch verb {
		case "add":
			_, err = s.svc.AddChild(ctx, id)
		case "copy":
			_, err = s.svc.Duplicate(ctx, id)
		default:
			_, err = s.svc.Delete(ctx, id)
		}
		return asWarning(err)

	case "edit", "sync":
		if len(args) < 1 {
			return fmt.Errorf("%w: %s REF VALUE...", errUsage, verb)
		}
		id, err := s.resolve(ctx, args[0])
		if err != nil {
			return err
		}
		value := restAfter(line, 2)
		if verb == "edit" {
			_, err = s.svc.EditValue(ctx, id, value)
		} else {
			_, err = s.svc.BroadcastUpdate(ctx, id, value)
		}
		return asWarning(err)

	case "move":
		if len(args) != 2 {
			return fmt.Errorf("%w: move DRAG HOVER", errUsage)
		}
		dragged, err := s.resolve(ctx, args[0])
		if err != nil {
			return err
		}
		hovered, err := s.resolve(ctx, args[1])
		if err != nil {
			return err
		}
		_, err = s.svc.Move(ctx, dragged, hovered)
		return asWarning(err)

	case "undo":
		_, err := s.svc.Undo(ctx)
		return asWarning(err)

	case "redo":
		_, err := s.svc.Redo(ctx)
		return asWarning(err)

	case "show":
		f, err := s.svc.Forest(ctx)
		if err != nil {
			return err
		}
		fmt.Fprint(s.out, formatter.RenderForest(f, s.showIDs))
		return nil
	}

	return fmt.Errorf("unknown command %q", fields[0])
}

// restAfter returns line without its first n whitespace-separated tokens and
// the whitespace that follows them. Spacing inside the rest is kept.
func restAfter(line string, n int) string {
	for i := 0; i < n; i++ {
		line = strings.TrimLeftFunc(line, unicode.IsSpace)
		end := strings.IndexFunc(line, unicode.IsSpace)
		if end < 0 {
			return ""
		}
		line = line[end:]
	}
	return strings.TrimLeftFunc(line, unicode.IsSpace)
}

// resolve maps a REF to a node ID. A reference to a node that does not exist
// is reported as a warning and yields "" so the line is skipped.
func (s *scriptRunner) resolve(ctx context.Context, ref string) (string, error) {
	f, err := s.svc.Forest(ctx)
	if err != nil {
		return "", err
	}
	id, err := tree.ResolveRef(f, ref)
	if domain.IsNotFound(err) {
		return "", &warning{msg: fmt.Sprintf("no node matches %q", ref)}
	}
	return id, err
}

// asWarning turns rejections the user should see into warnings.
func asWarning(err error) error {
	var pre *domain.ProtectedRootError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &pre):
		return &warning{msg: "cannot delete the root node"}
	case errors.Is(err, repository.ErrNothingToUndo), errors.Is(err, repository.ErrNothingToRedo):
		return &warning{msg: err.Error()}
	}
	return err
}
