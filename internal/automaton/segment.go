package automaton

import "github.com/google/uuid"

// Segment splits a segment automaton a at every transition labeled eps into
// D+1 pieces, where D is the maximum ε-depth (number of eps-transitions
// traversed on the BFS path reaching a state). Segment i holds every
// non-eps transition reachable at depth i; the source of a depth-i
// eps-transition becomes final in segment i, its target becomes initial in
// segment i+1. All segments but the first have their inherited initial set
// cleared; all but the last have their inherited final set cleared. Each
// segment is finally trimmed.
func Segment(a *Nfa, eps Symbol) []*Nfa {
	depth := map[State]int{}
	maxDepth := 0
	visited := NewSparseSet(a.NumStates())
	var queue []State
	for _, s := range a.Initial.Elements() {
		if !visited.Has(s) {
			visited.Add(s)
			depth[s] = 0
			queue = append(queue, s)
		}
	}
	// epsEdges[d] lists every eps-transition whose source sits at depth d.
	var epsEdges [][]struct{ src, tgt State }

	for i := 0; i < len(queue); i++ {
		cur := queue[i]
		d := depth[cur]
		for _, sp := range a.Delta.StatePost(cur) {
			isEps := sp.Symbol == eps
			for _, t := range sp.Targets.Elements() {
				nd := d
				if isEps {
					nd = d + 1
				}
				if !visited.Has(t) {
					visited.Add(t)
					depth[t] = nd
					queue = append(queue, t)
				}
				if isEps {
					for len(epsEdges) <= d {
						epsEdges = append(epsEdges, nil)
					}
					epsEdges[d] = append(epsEdges[d], struct{ src, tgt State }{cur, t})
					if nd > maxDepth {
						maxDepth = nd
					}
				}
			}
		}
		if d > maxDepth {
			maxDepth = d
		}
	}

	segments := make([]*Nfa, maxDepth+1)
	for i := range segments {
		segments[i] = New(a.Alphabet)
		segments[i].Delta = NewDelta(a.NumStates())
	}

	for s := State(0); s < a.NumStates(); s++ {
		if !visited.Has(s) {
			continue
		}
		d := depth[s]
		if a.Initial.Has(s) {
			segments[d].SetInitial(s)
		}
		if a.Final.Has(s) {
			segments[d].SetFinal(s)
		}
		for _, sp := range a.Delta.StatePost(s) {
			if sp.Symbol == eps {
				continue
			}
			for _, t := range sp.Targets.Elements() {
				segments[d].AddTransition(s, sp.Symbol, t)
			}
		}
	}

	for d, edges := range epsEdges {
		for _, e := range edges {
			segments[d].SetFinal(e.src)
			if d+1 < len(segments) {
				segments[d+1].SetInitial(e.tgt)
			}
		}
	}

	for i, seg := range segments {
		if i != 0 {
			seg.Initial = NewSparseSet(seg.NumStates())
			for d, edges := range epsEdges {
				if d+1 == i {
					for _, e := range edges {
						seg.SetInitial(e.tgt)
					}
				}
			}
		}
		if i != len(segments)-1 {
			seg.Final = NewSparseSet(seg.NumStates())
			if i < len(epsEdges) {
				for _, e := range epsEdges[i] {
					seg.SetFinal(e.src)
				}
			}
		}
		segments[i] = seg.Trim()
	}

	return segments
}

// NoodleBatch is the result of Noodlify: one Nfa per noodle plus a
// correlation ID for log-tying a batch of noodles back to the call that
// produced them.
type NoodleBatch struct {
	ID      string
	Noodles []*Nfa
}

// Noodlify enumerates every noodle of segment automaton a: one selection of
// exactly one eps-transition per depth bucket, concatenated across the
// selected segments in order. When a splits into more than one segment, a
// noodle in which any segment trims to zero states is discarded unless
// includeEmpty is set; a single segment is returned as the only noodle
// whether or not it is empty.
func Noodlify(a *Nfa, eps Symbol, includeEmpty bool) NoodleBatch {
	segs := Segment(a, eps)
	batch := NoodleBatch{ID: uuid.New().String()}

	if len(segs) == 0 {
		return batch
	}
	if len(segs) == 1 {
		batch.Noodles = []*Nfa{segs[0]}
		return batch
	}

	var walk func(idx int, acc *Nfa, anyEmpty bool)
	walk = func(idx int, acc *Nfa, anyEmpty bool) {
		if idx == len(segs) {
			if anyEmpty && !includeEmpty {
				return
			}
			batch.Noodles = append(batch.Noodles, acc)
			return
		}
		seg := segs[idx]
		empty := seg.NumStates() == 0
		var next *Nfa
		if acc == nil {
			next = seg
		} else {
			next = Concat(acc, seg, ConcatOpts{UseEpsilon: true})
		}
		walk(idx+1, next, anyEmpty || empty)
	}
	walk(0, nil, false)

	return batch
}

// NoodlifyForEquation concatenates ls with fresh ε-bridges into a single
// segment automaton, intersects it with r preserving eps, then noodlifies
// the result. If reduce is not ReduceNone, the concatenated automaton is
// reduced before intersection.
func NoodlifyForEquation(ls []*Nfa, r *Nfa, eps Symbol, reduce ReduceKind) ([]*Nfa, error) {
	if len(ls) == 0 {
		return nil, nil
	}
	combined := ls[0]
	for _, next := range ls[1:] {
		combined = Concat(combined, next, ConcatOpts{UseEpsilon: true})
	}
	combined = ApplyReduce(combined, reduce)

	prod := Intersection(combined, r, ProductOpts{PreserveEpsilon: []Symbol{eps}})
	batch := Noodlify(prod, eps, false)
	return batch.Noodles, nil
}
