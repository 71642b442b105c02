package main

import (
	"bytes"
	"errors"
	"io"
	"math"
	"os"
	"strings"
	"testing"

	"dasa.cc/skin/geom"
)

func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestParseVec(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want geom.Vec
		ok   bool
	}{
		{"0,0,-5", geom.Vec{Z: -5}, true},
		{"1, 2, 3", geom.Vec{X: 1, Y: 2, Z: 3}, true},
		{"1 2 3", geom.Vec{X: 1, Y: 2, Z: 3}, true},
		{"1,2", geom.Vec{}, false},
		{"1,2,x", geom.Vec{}, false},
		{"1,NaN,0", geom.Vec{}, false},
		{"inf,0,0", geom.Vec{}, false},
	} {
		v, err := parseVec(tc.in)
		if (err == nil) != tc.ok {
			t.Errorf("%q: have err %v", tc.in, err)
			continue
		}
		if v != tc.want {
			t.Errorf("%q: have %v want %v", tc.in, v, tc.want)
		}
	}
}

func TestRig(t *testing.T) {
	r, err := newrig(boxman)
	if err != nil {
		t.Fatal(err)
	}
	if n := r.s.Len(); n != len(boxman) {
		t.Fatalf("have %v joints", n)
	}
	if roots := r.s.Roots(); len(roots) != 1 || roots[0] != 0 {
		t.Fatalf("have roots %v", roots)
	}

	// at rest every bone carries only the root.
	root := rootOf(geom.Vec{Z: -5}, 0)
	pal, err := r.animate(root, 0)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < pal.Len(); i++ {
		if !pal.Bone(i).Equal(root, 1e-9) {
			t.Errorf("%s: have %s", boxman[i].name, pal.Bone(i))
		}
	}

	// in stride the shin's foot end swings away from its bind position.
	pal, err = r.animate(root, 1)
	if err != nil {
		t.Fatal(err)
	}
	g := r.s.GlobalBindPose()
	foot := g[10].Transform(geom.Vec{Y: -0.6})
	moved := pal.Bone(10).Transform(foot)
	rest := root.Transform(foot)
	if d := moved.Sub(rest).Norm(); d < 0.1 {
		t.Errorf("foot moved only %v", d)
	}
	t.Logf("foot rest %v stride %v", rest, moved)
}

func TestSession(t *testing.T) {
	r, err := newrig(boxman)
	if err != nil {
		t.Fatal(err)
	}
	root := rootOf(geom.Vec{Z: -5}, 0)
	s := newsession(r, root, 0, formatDQ)
	var buf bytes.Buffer

	run := func(line string) {
		t.Helper()
		if err := s.exec(&buf, line); err != nil {
			t.Fatalf("%q: %v", line, err)
		}
	}

	run("")
	run("t 0.5")
	if s.t != 0.5 {
		t.Fatalf("have t %v", s.t)
	}

	run("move 1 0 0")
	if p := s.root.Translation(); math.Abs(p.X-1) > 1e-9 || math.Abs(p.Z+5) > 1e-9 {
		t.Fatalf("have root at %v", p)
	}

	// steps premultiply, so a turn swings the root around the world origin.
	run("reset")
	for i := 0; i < 32; i++ {
		run("right")
	}
	if p := s.root.Translation(); math.Abs(p.X+5) > 1e-9 || math.Abs(p.Z) > 1e-9 {
		t.Errorf("quarter turn left root at %v", p)
	}
	for i := 0; i < 32; i++ {
		run("right")
	}
	if p := s.root.Translation(); math.Abs(p.Z-5) > 1e-9 || math.Abs(p.X) > 1e-9 {
		t.Errorf("half turn left root at %v", p)
	}

	run("reset")
	run("w")
	run("w")
	if p := s.root.Translation(); math.Abs(p.Z+5-2*displacement) > 1e-9 {
		t.Fatalf("have root at %v", p)
	}

	buf.Reset()
	run("print")
	if n := strings.Count(buf.String(), "\n"); n != len(boxman)+1 {
		t.Errorf("print wrote %v lines:\n%s", n, buf.String())
	}
	buf.Reset()
	run("print vec4")
	if n := strings.Count(buf.String(), "\n"); n != len(boxman)+1 {
		t.Errorf("print vec4 wrote %v lines:\n%s", n, buf.String())
	}
	buf.Reset()
	run("print mat")
	out := buf.String()
	if n := strings.Count(out, "\n"); n != 4*len(boxman)+1 {
		t.Errorf("print mat wrote %v lines:\n%s", n, out)
	}
	// reset put the root back at z = -5 and w stepped it by 2*displacement.
	if !strings.Contains(out, "-4.8000)") {
		t.Errorf("pelvis origin missing:\n%s", out)
	}
	buf.Reset()
	run("joints")
	if !strings.Contains(buf.String(), "r.shin") {
		t.Errorf("joints:\n%s", buf.String())
	}

	for _, bad := range []string{"t", "t x", "t nan", "t -Inf", "turn x 1", "turn i", "turn j NaN", "move 1 2", "move 0 inf 0", "print svg", "fly"} {
		if err := s.exec(&buf, bad); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
	if s.t != 0 {
		t.Errorf("rejected input changed t to %v", s.t)
	}
	if err := s.exec(&buf, "exit"); !errors.Is(err, errQuit) {
		t.Errorf("exit: have %v", err)
	}
}

func TestSuggest(t *testing.T) {
	r, err := newrig(boxman)
	if err != nil {
		t.Fatal(err)
	}
	s := newsession(r, geom.DualQuatIdent(), 0, formatDQ)
	for _, tc := range []struct{ typo, want string }{
		{"prnt", "print"},
		{"jionts", "joints"},
		{"resett", "reset"},
	} {
		err := s.exec(io.Discard, tc.typo)
		if err == nil || !strings.Contains(err.Error(), "did you mean "+tc.want) {
			t.Errorf("%q: have %v", tc.typo, err)
		}
	}
	if err := s.exec(io.Discard, "fly"); err == nil || strings.Contains(err.Error(), "did you mean") {
		t.Errorf("fly: have %v", err)
	}
}

func TestComplete(t *testing.T) {
	have := func(line string) []string {
		t.Helper()
		newLine, offset := commands.Do([]rune(line), len(line))
		if offset > len(line) {
			t.Fatalf("%q: offset %v", line, offset)
		}
		var r []string
		for _, x := range newLine {
			r = append(r, line+strings.TrimSuffix(string(x), " "))
		}
		return r
	}

	// exact name ranks ahead of longer ones sharing its prefix.
	if m := have("t"); len(m) != 2 || m[0] != "t" || m[1] != "turn" {
		t.Errorf("t: have %v", m)
	}
	if m := have("jo"); len(m) != 1 || m[0] != "joints" {
		t.Errorf("jo: have %v", m)
	}
	if m := have("<"); len(m) != 1 || m[0] != "<" {
		t.Errorf("<: have %v", m)
	}
	if m := have("print v"); len(m) != 1 || m[0] != "print vec4" {
		t.Errorf("print v: have %v", m)
	}
	if m := have("move 1"); len(m) != 0 {
		t.Errorf("move 1: have %v", m)
	}
	if m := have(""); len(m) != len(commands.names) {
		t.Errorf("empty line: have %v", m)
	}
}

func TestFade(t *testing.T) {
	r, err := newrig(boxman)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := fade(&buf, r, geom.DualQuatIdent(), 90, 30*frame, formatDQ); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if n := strings.Count(out, "frame "); n != 90 {
		t.Errorf("have %v frames", n)
	}
	// frame 30 snaps to the stride and restages toward rest.
	if !strings.Contains(out, "frame 30 t=1.0000") {
		t.Errorf("no stride at frame 30")
	}
	if !strings.Contains(out, "frame 60 t=0.0000") {
		t.Errorf("no rest at frame 60")
	}
	if n := strings.Count(out, "pelvis"); n != 90 {
		t.Errorf("have %v pelvis rows", n)
	}
}
