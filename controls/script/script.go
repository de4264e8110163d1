// Package script replays recorded input for headless runs.
package script

import (
	"errors"
	"fmt"
	"os"

	"github.com/automoto/locomotion/components"
	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

var ErrEmptyScript = errors.New("script has no ticks")

// Segment holds one input frame for Ticks consecutive ticks.
type Segment struct {
	Ticks  int        `yaml:"ticks"`
	Move   [2]float64 `yaml:"move"`
	Look   [2]float64 `yaml:"look"`
	Jump   bool       `yaml:"jump"`
	Sprint bool       `yaml:"sprint"`
	Walk   bool       `yaml:"walk"`
}

// File is the on-disk scenario format.
type File struct {
	Name     string    `yaml:"name"`
	Spawn    string    `yaml:"spawn"` // Spawn point name, empty for the first
	Segments []Segment `yaml:"segments"`
}

// Script is an InputSource that plays segments back tick by tick. Button
// edges are derived across ticks, so holding jump over a segment boundary
// is still a single press. After the last tick it reports no input.
type Script struct {
	segments []Segment
	segment  int
	tick     int
	polled   int

	prev Segment
}

func New(segments ...Segment) *Script {
	return &Script{segments: segments}
}

// Load reads a scenario file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	total := 0
	for i, s := range f.Segments {
		if s.Ticks < 0 {
			return nil, fmt.Errorf("segment %d: negative ticks %d", i, s.Ticks)
		}
		total += s.Ticks
	}
	if total == 0 {
		return nil, ErrEmptyScript
	}
	return &f, nil
}

// Script returns a fresh player for the file.
func (f *File) Script() *Script {
	return New(f.Segments...)
}

// Len is the total number of scripted ticks.
func (s *Script) Len() int {
	n := 0
	for _, seg := range s.segments {
		n += seg.Ticks
	}
	return n
}

// Done reports whether every scripted tick has been polled.
func (s *Script) Done() bool {
	s.skipEmpty()
	return s.segment >= len(s.segments)
}

// Polled is the number of Poll calls so far.
func (s *Script) Polled() int { return s.polled }

func (s *Script) Poll() components.RawInput {
	s.polled++
	cur := s.current()
	raw := components.RawInput{
		Movement: mgl64.Vec2{cur.Move[0], cur.Move[1]},
		Look:     mgl64.Vec2{cur.Look[0], cur.Look[1]},
		Jump:     components.NewActionState(cur.Jump, s.prev.Jump),
		Sprint:   components.NewActionState(cur.Sprint, s.prev.Sprint),
		Walk:     components.NewActionState(cur.Walk, s.prev.Walk),
	}
	s.prev = cur
	s.advance()
	return raw
}

func (s *Script) current() Segment {
	if s.Done() {
		return Segment{}
	}
	return s.segments[s.segment]
}

func (s *Script) advance() {
	if s.Done() {
		return
	}
	s.tick++
	if s.tick >= s.segments[s.segment].Ticks {
		s.segment++
		s.tick = 0
	}
}

func (s *Script) skipEmpty() {
	for s.segment < len(s.segments) && s.segments[s.segment].Ticks == 0 {
		s.segment++
	}
}
