// Package dispatch routes conversion requests to builder converters. It
// owns the registry of the eleven supported builders, validates input,
// fans out multi-builder exports, and guesses which builder produced a
// raw HTML document. No error escapes this boundary as a panic or a Go
// error: every outcome is a structured core.ExportResult.
package dispatch

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/akshaynair/blockbridge/core"
	"github.com/akshaynair/blockbridge/core/convert"
	"github.com/akshaynair/blockbridge/core/snapshot"
)

// BuilderInfo describes one registry entry.
type BuilderInfo struct {
	Name         string             `json:"name"`
	DisplayName  string             `json:"display_name"`
	OutputFormat core.OutputFormat `json:"output_format"`
	Description  string             `json:"description"`
}

// entry pairs registry metadata with its converter.
type entry struct {
	info      BuilderInfo
	converter core.BuilderConverter
}

// Dispatcher is the conversion registry. Construct it once with
// NewDispatcher; it is safe for concurrent use because converters keep
// all per-call state in the call itself.
type Dispatcher struct {
	entries map[string]entry
	order   []string
}

// Request is one export invocation. Exactly one of Blocks or Snapshot
// must be set.
type Request struct {
	Builder  string
	Blocks   []*core.ContentBlock
	Snapshot []*core.ElementSnapshot
}

// NewDispatcher builds the registry with all eleven builders and default
// snapshot heuristics.
func NewDispatcher() *Dispatcher {
	return NewDispatcherWithSnapshotOptions(snapshot.Options{})
}

// NewDispatcherWithSnapshotOptions builds the registry with tuned
// snapshot heuristics; every registered converter shares them.
func NewDispatcherWithSnapshotOptions(opts snapshot.Options) *Dispatcher {
	d := &Dispatcher{entries: map[string]entry{}}

	register := func(e convert.Emitter, display, desc string) {
		c := convert.NewWithSnapshotOptions(e, opts)
		d.entries[e.Name()] = entry{
			info: BuilderInfo{
				Name:         e.Name(),
				DisplayName:  display,
				OutputFormat: e.Format(),
				Description:  desc,
			},
			converter: c,
		}
		d.order = append(d.order, e.Name())
	}

	register(convert.GutenbergEmitter{}, "Gutenberg", "WordPress block editor comment-delimited markup")
	register(convert.ElementorEmitter{}, "Elementor", "Elementor template JSON with sections, columns and widgets")
	register(convert.DiviEmitter{}, "Divi", "Divi Builder et_pb_* shortcode layout")
	register(convert.WPBakeryEmitter{}, "WPBakery", "WPBakery Page Builder vc_* shortcodes")
	register(convert.BeaverEmitter{}, "Beaver Builder", "Beaver Builder flat node registry JSON")
	register(convert.OxygenEmitter{}, "Oxygen", "Oxygen ct_* component tree JSON")
	register(convert.BricksEmitter{}, "Bricks", "Bricks element list JSON")
	register(convert.AvadaEmitter{}, "Avada", "Fusion Builder fusion_* shortcodes")
	register(convert.CornerstoneEmitter{}, "Cornerstone", "Cornerstone cs_*/x_* shortcodes")
	register(convert.BrizyEmitter{}, "Brizy", "Brizy value-wrapped item tree JSON")
	register(convert.KadenceEmitter{}, "Kadence", "Kadence Blocks markup with kt-/kb- class conventions")

	return d
}

// Export converts one input for one builder. Invalid input combinations,
// unknown builder names and converter panics all come back as failed
// results, never as errors.
func (d *Dispatcher) Export(req Request) core.ExportResult {
	exportID := uuid.NewString()

	if (req.Blocks == nil) == (req.Snapshot == nil) {
		return failure(req.Builder, "exactly one of blocks or snapshot must be provided")
	}

	name, e, ok := d.resolve(req.Builder)
	if !ok {
		return failure(req.Builder, fmt.Sprintf("unknown builder %q; known builders: %s",
			req.Builder, strings.Join(d.order, ", ")))
	}

	log.Debug().
		Str("export_id", exportID).
		Str("builder", name).
		Bool("snapshot", req.Snapshot != nil).
		Msg("dispatching export")

	output, err := d.invoke(e, req)
	if err != nil {
		log.Debug().Str("export_id", exportID).Str("builder", name).Err(err).Msg("export failed")
		return failure(name, err.Error())
	}

	return core.ExportResult{Builder: name, Success: true, Output: output}
}

// invoke runs the converter with panic recovery, so one misbehaving
// target cannot take down a fan-out.
func (d *Dispatcher) invoke(e entry, req Request) (output *core.BuilderOutput, err error) {
	defer func() {
		if r := recover(); r != nil {
			output = nil
			err = fmt.Errorf("converter panic: %v", r)
		}
	}()

	if req.Blocks != nil {
		return e.converter.ConvertTree(req.Blocks)
	}
	return e.converter.ConvertSnapshot(req.Snapshot)
}

// ExportToMultiple fans one input out to several builders. Each result is
// independent: a failure for one name never blanks or aborts the others.
func (d *Dispatcher) ExportToMultiple(names []string, req Request) map[string]core.ExportResult {
	results := make(map[string]core.ExportResult, len(names))
	for _, name := range names {
		r := req
		r.Builder = name
		results[name] = d.Export(r)
	}
	return results
}

// AvailableBuilders lists canonical builder names in registration order.
func (d *Dispatcher) AvailableBuilders() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// BuilderInfo returns registry metadata for a builder name, resolved with
// the same case/hyphen-insensitive rules as Export.
func (d *Dispatcher) BuilderInfo(name string) (BuilderInfo, bool) {
	_, e, ok := d.resolve(name)
	if !ok {
		return BuilderInfo{}, false
	}
	return e.info, true
}

// resolve maps a user-supplied builder name onto a registry entry.
// Matching ignores case, hyphens, underscores and spaces, so
// "Beaver-Builder" and "beaver_builder" both resolve to "beaver".
func (d *Dispatcher) resolve(name string) (string, entry, bool) {
	want := canonical(name)
	if want == "" {
		return "", entry{}, false
	}
	for registered, e := range d.entries {
		if canonical(registered) == want || canonical(e.info.DisplayName) == want {
			return registered, e, true
		}
	}
	return "", entry{}, false
}

func canonical(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	replacer := strings.NewReplacer("-", "", "_", "", " ", "")
	return replacer.Replace(name)
}

func failure(builder, msg string) core.ExportResult {
	return core.ExportResult{Builder: builder, Success: false, Error: msg}
}
