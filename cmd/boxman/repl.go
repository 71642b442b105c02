package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/exp/slices"

	"dasa.cc/skin/geom"
	"dasa.cc/skin/trigram"
)

// Root steps, matching the keyboard camera this driver stands in for.
const (
	displacement = 0.1
	rotation     = math.Pi / 64
)

var errQuit = errors.New("quit")

// session is the mutable state behind the prompt.
type session struct {
	r      *rig
	root   geom.DualQuat
	t      float64
	format string

	root0 geom.DualQuat
	t0    float64
}

func newsession(r *rig, root geom.DualQuat, t float64, format string) *session {
	return &session{r: r, root: root, t: t, format: format, root0: root, t0: t}
}

// premul carries the root by d in world space.
func (s *session) premul(d geom.DualQuat) { s.root = d.Mul(s.root) }

var steps = map[string]func() geom.DualQuat{
	"w":     func() geom.DualQuat { return geom.FromTranslation(geom.K.Scale(displacement)) },
	"s":     func() geom.DualQuat { return geom.FromTranslation(geom.K.Scale(-displacement)) },
	"a":     func() geom.DualQuat { return geom.FromTranslation(geom.I.Scale(displacement)) },
	"d":     func() geom.DualQuat { return geom.FromTranslation(geom.I.Scale(-displacement)) },
	"z":     func() geom.DualQuat { return geom.FromTranslation(geom.J.Scale(displacement)) },
	"q":     func() geom.DualQuat { return geom.FromTranslation(geom.J.Scale(-displacement)) },
	"right": func() geom.DualQuat { return geom.FromAxisAngle(geom.J, rotation) },
	"left":  func() geom.DualQuat { return geom.FromAxisAngle(geom.J, -rotation) },
	"down":  func() geom.DualQuat { return geom.FromAxisAngle(geom.I, rotation) },
	"up":    func() geom.DualQuat { return geom.FromAxisAngle(geom.I, -rotation) },
	">":     func() geom.DualQuat { return geom.FromAxisAngle(geom.K, rotation) },
	"<":     func() geom.DualQuat { return geom.FromAxisAngle(geom.K, -rotation) },
}

var axes = map[string]geom.Vec{"i": geom.I, "j": geom.J, "k": geom.K}

const usage = `t <v>             set blend factor
move <x> <y> <z>  translate root
turn <i|j|k> <r>  rotate root by r radians
w s a d z q       step root along k, i, j
left right up down < >  turn root by pi/64
print [format]    print palette as dq, vec4 or mat
joints            list joints
reset             restore root and t
help              this text
exit              leave
`

func (s *session) exec(w io.Writer, line string) error {
	args := strings.Fields(line)
	if len(args) == 0 {
		return nil
	}
	cmd, args := args[0], args[1:]

	if step, ok := steps[cmd]; ok {
		s.premul(step())
		return nil
	}

	switch cmd {
	case "t":
		if len(args) != 1 {
			return fmt.Errorf("usage: t <v>")
		}
		t, err := parseFinite(args[0])
		if err != nil {
			return err
		}
		s.t = t
	case "move":
		v, err := parseVec(strings.Join(args, ","))
		if err != nil {
			return err
		}
		s.premul(geom.FromTranslation(v))
	case "turn":
		if len(args) != 2 {
			return fmt.Errorf("usage: turn <i|j|k> <radians>")
		}
		axis, ok := axes[args[0]]
		if !ok {
			return fmt.Errorf("unknown axis %q", args[0])
		}
		angle, err := parseFinite(args[1])
		if err != nil {
			return err
		}
		s.premul(geom.FromAxisAngle(axis, angle))
	case "print":
		format := s.format
		if len(args) > 0 {
			format = args[0]
		}
		if !slices.Contains(formats, format) {
			return fmt.Errorf("unknown format %q, want one of %v", format, formats)
		}
		pal, err := s.r.animate(s.root, s.t)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "t=%v root=%s\n", s.t, s.root)
		return s.r.printPalette(w, pal, format)
	case "joints":
		s.r.printJoints(w)
	case "reset":
		s.root, s.t = s.root0, s.t0
	case "help":
		io.WriteString(w, usage)
	case "exit", "quit":
		return errQuit
	default:
		if m := commands.Top(cmd, 0.33); len(m) > 0 {
			return fmt.Errorf("unknown command %q; did you mean %s?", cmd, strings.Join(m, " or "))
		}
		return fmt.Errorf("unknown command %q; try help", cmd)
	}
	return nil
}

// commands indexes every command name for completion and suggestions.
var commands = newauto()

type auto struct {
	trigram.Set
	names []string
}

func newauto() *auto {
	a := &auto{names: []string{"t", "move", "turn", "print", "joints", "reset", "help", "exit", "quit"}}
	keys := make([]string, 0, len(steps))
	for name := range steps {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	a.names = append(a.names, keys...)
	a.Index(a.names...)
	return a
}

// Do completes the command word, best trigram matches first. Readline can
// only append, so candidates are limited to those extending the typed prefix.
func (a *auto) Do(line []rune, pos int) (newLine [][]rune, offset int) {
	ln := string(line[:pos])
	if strings.ContainsRune(ln, ' ') {
		if strings.HasPrefix(ln, "print ") {
			return complete(strings.TrimPrefix(ln, "print "), formats)
		}
		return nil, 0
	}
	var p []string
	for _, s := range a.Best(ln, 0) {
		if strings.HasPrefix(s, ln) {
			p = append(p, s)
		}
	}
	for _, s := range a.names {
		if strings.HasPrefix(s, ln) && !slices.Contains(p, s) {
			p = append(p, s)
		}
	}
	return complete(ln, p)
}

func complete(ln string, xs []string) (newLine [][]rune, offset int) {
	for _, s := range xs {
		if strings.HasPrefix(s, ln) {
			newLine = append(newLine, []rune(strings.TrimPrefix(s, ln)+" "))
		}
	}
	return newLine, len([]rune(ln))
}

func repl(r *rig, root geom.DualQuat, t float64, format string) error {
	tmp, err := os.CreateTemp("", "boxman")
	if err != nil {
		return err
	}
	tmp.Close()
	defer os.Remove(tmp.Name())

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "boxman> ",
		HistoryFile:       tmp.Name(),
		AutoComplete:      commands,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	logger.SetOutput(rl.Stderr())

	s := newsession(r, root, t, format)
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return nil
			}
			continue
		} else if err == io.EOF {
			return nil
		}

		switch err := s.exec(rl.Stdout(), line); {
		case err == errQuit:
			return nil
		case err != nil:
			fmt.Fprintf(rl.Stderr(), "%v\n", err)
		}
	}
}
