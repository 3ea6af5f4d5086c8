// Package headless drives an arena without a terminal UI and writes its
// render events to a stream as text, JSON lines or msgpack frames.
package headless

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/space-explorer/internal/arena"
)

// Format selects the stream encoding.
type Format string

const (
	FormatText    Format = "text"    // one human-readable line per event
	FormatJSON    Format = "json"    // one JSON frame per line
	FormatMsgpack Format = "msgpack" // back-to-back msgpack frames
)

// ErrUnknownFormat is returned for unsupported format names.
var ErrUnknownFormat = errors.New("unknown format")

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatMsgpack:
		return f, nil
	default:
		return "", fmt.Errorf("headless: %w %q", ErrUnknownFormat, s)
	}
}

// Frame is the wire form of one batch.
type Frame struct {
	Tick   uint64   `json:"tick"`
	Events []Record `json:"ev"`
}

// Record is the wire form of one render event. Only the fields of its
// kind are set.
type Record struct {
	Kind     string        `json:"k"`
	ID       uint64        `json:"id,omitempty"`
	Category string        `json:"c,omitempty"`
	X        float64       `json:"x,omitempty"`
	Y        float64       `json:"y,omitempty"`
	Radius   float64       `json:"r,omitempty"`
	Visual   string        `json:"v,omitempty"`
	HUD      *HUDRecord    `json:"hud,omitempty"`
	Status   string        `json:"st,omitempty"`
	Effect   *EffectRecord `json:"fx,omitempty"`
}

// HUDRecord carries the UI counters.
type HUDRecord struct {
	Score     int `json:"score"`
	Lives     int `json:"lives"`
	Collected int `json:"collected"`
	Wave      int `json:"wave"`
}

// EffectRecord carries one applied effect.
type EffectRecord struct {
	Kind   string `json:"k"`
	Amount int    `json:"n"`
	Cause  uint64 `json:"by,omitempty"`
}

// NewFrame converts a batch to its wire form.
func NewFrame(tick uint64, b arena.Batch) Frame {
	f := Frame{Tick: tick, Events: make([]Record, 0, len(b))}
	for ev := range b.All() {
		f.Events = append(f.Events, newRecord(ev))
	}
	return f
}

func newRecord(ev arena.RenderEvent) Record {
	r := Record{Kind: ev.Kind.String()}
	switch ev.Kind {
	case arena.EventCreated:
		r.ID = uint64(ev.EntityID)
		r.Category = ev.Category.String()
		r.X, r.Y = ev.Pos.X, ev.Pos.Y
		r.Radius = ev.Radius
		r.Visual = ev.Visual
	case arena.EventMoved, arena.EventDestroyed:
		r.ID = uint64(ev.EntityID)
		r.X, r.Y = ev.Pos.X, ev.Pos.Y
	case arena.EventHUD:
		r.HUD = &HUDRecord{
			Score:     ev.HUD.Score,
			Lives:     ev.HUD.Lives,
			Collected: ev.HUD.Collected,
			Wave:      ev.HUD.Wave,
		}
	case arena.EventStatus:
		r.Status = ev.Status.String()
	case arena.EventEffect:
		r.Effect = &EffectRecord{
			Kind:   ev.Effect.Kind.String(),
			Amount: ev.Effect.Amount,
			Cause:  uint64(ev.Effect.Cause),
		}
	}
	return r
}

// Sink writes batches to a stream. It is the headless counterpart of the
// terminal scene.
type Sink struct {
	w       io.Writer
	format  Format
	json    *json.Encoder
	msgpack *msgpack.Encoder
	frames  int
	events  int
}

// NewSink creates a sink writing to w in the given format.
func NewSink(w io.Writer, format Format) (*Sink, error) {
	s := &Sink{w: w, format: format}
	switch format {
	case FormatText:
	case FormatJSON:
		s.json = json.NewEncoder(w)
	case FormatMsgpack:
		s.msgpack = msgpack.NewEncoder(w)
		s.msgpack.SetCustomStructTag("json")
		s.msgpack.SetOmitEmpty(true)
	default:
		return nil, fmt.Errorf("headless: %w %q", ErrUnknownFormat, format)
	}
	return s, nil
}

// Write encodes one batch. Empty batches are skipped.
func (s *Sink) Write(tick uint64, b arena.Batch) error {
	if len(b) == 0 {
		return nil
	}

	var err error
	switch s.format {
	case FormatText:
		err = s.writeText(b)
	case FormatJSON:
		err = s.json.Encode(NewFrame(tick, b))
	case FormatMsgpack:
		err = s.msgpack.Encode(NewFrame(tick, b))
	}
	if err != nil {
		return fmt.Errorf("headless: write tick %d: %w", tick, err)
	}

	s.frames++
	s.events += len(b)
	return nil
}

func (s *Sink) writeText(b arena.Batch) error {
	for ev := range b.All() {
		if _, err := fmt.Fprintln(s.w, FormatEvent(ev)); err != nil {
			return err
		}
	}
	return nil
}

// Frames returns the number of frames written.
func (s *Sink) Frames() int { return s.frames }

// Events returns the number of events written.
func (s *Sink) Events() int { return s.events }

// FormatEvent renders one event as a single text line.
func FormatEvent(ev arena.RenderEvent) string {
	prefix := fmt.Sprintf("%6d %-9s", ev.Tick, ev.Kind)
	switch ev.Kind {
	case arena.EventCreated:
		return fmt.Sprintf("%s #%d %s %q at (%.1f, %.1f) r=%.1f",
			prefix, ev.EntityID, ev.Category, ev.Visual, ev.Pos.X, ev.Pos.Y, ev.Radius)
	case arena.EventMoved, arena.EventDestroyed:
		return fmt.Sprintf("%s #%d at (%.1f, %.1f)", prefix, ev.EntityID, ev.Pos.X, ev.Pos.Y)
	case arena.EventHUD:
		return fmt.Sprintf("%s score=%d lives=%d collected=%d wave=%d",
			prefix, ev.HUD.Score, ev.HUD.Lives, ev.HUD.Collected, ev.HUD.Wave)
	case arena.EventStatus:
		return fmt.Sprintf("%s %s", prefix, ev.Status)
	case arena.EventEffect:
		return fmt.Sprintf("%s %s %+d by #%d", prefix, ev.Effect.Kind, ev.Effect.Amount, ev.Effect.Cause)
	default:
		return prefix
	}
}

// Decoder reads frames written by a JSON or msgpack Sink.
type Decoder struct {
	json    *json.Decoder
	msgpack *msgpack.Decoder
}

// NewDecoder creates a frame decoder. Text streams cannot be decoded.
func NewDecoder(r io.Reader, format Format) (*Decoder, error) {
	switch format {
	case FormatJSON:
		return &Decoder{json: json.NewDecoder(r)}, nil
	case FormatMsgpack:
		dec := msgpack.NewDecoder(r)
		dec.SetCustomStructTag("json")
		return &Decoder{msgpack: dec}, nil
	default:
		return nil, fmt.Errorf("headless: cannot decode %w %q", ErrUnknownFormat, format)
	}
}

// Next returns the next frame, or io.EOF at the end of the stream.
func (d *Decoder) Next() (Frame, error) {
	var f Frame
	var err error
	if d.json != nil {
		err = d.json.Decode(&f)
	} else {
		err = d.msgpack.Decode(&f)
	}
	return f, err
}
