package suppress

// Resolver maps a rule identifier or alias name to a canonical rule ID.
// Lookups are case-insensitive. Returns ok=false for unknown keys.
type Resolver interface {
	CanonicalID(key string) (string, bool)
}

// LineSource is the subset of the document index the processor reads.
type LineSource interface {
	LineCount() int
	Line(line int) []byte
}

// Processor runs a single forward pass over document lines and produces
// a Map. It holds no state between calls.
type Processor struct {
	resolver Resolver
}

// NewProcessor creates a processor. The resolver may be nil, in which
// case directive keys are kept verbatim (lowercased).
func NewProcessor(resolver Resolver) *Processor {
	return &Processor{resolver: resolver}
}

// Process scans src and builds the suppression map.
//
// Directives take effect on their own line: a disable on line N already
// suppresses line N. disable-file applies to every line of the document
// regardless of where the directive appears. restore with an empty
// capture stack resets the active exclusion to None.
func (p *Processor) Process(src LineSource) *Map {
	lineCount := src.LineCount()

	active := None()
	fileWide := None()
	var captures []Exclusion

	// pending holds a disable-next-line exclusion recorded on the
	// previous line. On the last line it is simply never consumed.
	pending := None()

	lines := make([]Exclusion, lineCount)

	for lineNum := 1; lineNum <= lineCount; lineNum++ {
		lineOnly := pending
		pending = None()

		for _, d := range parseDirectives(src.Line(lineNum)) {
			switch d.Action {
			case ActionDisable:
				if len(d.Keys) == 0 {
					active = AllRules()
				} else {
					active = active.Clone()
					active.add(p.canonical(d.Keys))
				}

			case ActionEnable:
				if len(d.Keys) == 0 {
					active = None()
				} else {
					active = active.Clone()
					active.remove(p.canonical(d.Keys))
				}

			case ActionDisableLine:
				if len(d.Keys) == 0 {
					lineOnly = AllRules()
				} else {
					lineOnly = lineOnly.Clone()
					lineOnly.add(p.canonical(d.Keys))
				}

			case ActionDisableNextLine:
				if len(d.Keys) == 0 {
					pending = AllRules()
				} else {
					pending = pending.Clone()
					pending.add(p.canonical(d.Keys))
				}

			case ActionDisableFile:
				fileWide = p.applyFileWide(fileWide, d.Keys)

			case ActionCapture:
				captures = append(captures, active.Clone())

			case ActionRestore:
				if n := len(captures); n > 0 {
					active = captures[n-1]
					captures = captures[:n-1]
				} else {
					// Restore without capture is a full reset.
					active = None()
				}

			case ActionConfigureFile:
				// Rewritten to ActionDisableFile during parsing.
			}
		}

		lines[lineNum-1] = union(active, lineOnly)
	}

	return &Map{
		resolver: p.resolver,
		lines:    lines,
		fileWide: fileWide,
	}
}

// applyFileWide folds a disable-file key list into the file-wide
// exclusion. No keys (or the "default" key from configure-file) means
// all rules.
func (p *Processor) applyFileWide(current Exclusion, keys []string) Exclusion {
	if len(keys) == 0 {
		return AllRules()
	}
	for _, k := range keys {
		if k == "default" {
			return AllRules()
		}
	}
	out := current.Clone()
	out.add(p.canonical(keys))
	return out
}

// canonical resolves each key through the resolver where possible.
// Unknown keys are kept as-is; they never match a registered rule but
// do not poison the directive.
func (p *Processor) canonical(keys []string) []string {
	if p.resolver == nil {
		return keys
	}
	out := make([]string, len(keys))
	for i, k := range keys {
		if id, ok := p.resolver.CanonicalID(k); ok {
			out[i] = id
		} else {
			out[i] = k
		}
	}
	return out
}
