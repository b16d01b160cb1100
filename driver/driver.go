package driver

import (
	"io"

	"github.com/hashicorp/go-multierror"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/pkg/errors"
	"github.com/tliron/commonlog"

	"weft/blocks"
	"weft/feedback"
	"weft/ir"
	"weft/typecheck"
	"weft/types"
)

// families maps builtin block names to their lowerable op families.
// Blocks outside this map produce value slots but no arithmetic ops.
var families = map[string]ir.Family{
	"add":      ir.AddFamily,
	"subtract": ir.SubFamily,
	"multiply": ir.MulFamily,
	"min":      ir.MinFamily,
	"max":      ir.MaxFamily,
}

// Session compiles patches against an injected registry. It is the
// "upstream pass" the monomorphization pipeline expects: it resolves
// the types flowing into each instance from its connected edges.
type Session struct {
	Registry *blocks.Registry
	Debug    bool

	id  string
	log commonlog.Logger
}

func NewSession(registry *blocks.Registry) *Session {
	return &Session{
		Registry: registry,
		id:       gonanoid.Must(),
		log:      commonlog.GetLogger("weft.driver"),
	}
}

// ID is the session identifier stamped onto log lines.
func (s *Session) ID() string {
	return s.id
}

// PatchResult holds the per-instance outcomes, the lowered program,
// and every type error found across the patch.
type PatchResult struct {
	Order     []string
	Instances map[string]*blocks.Result
	Program   *ir.Builder
	Errors    []typecheck.TypeError
}

// Compile type-checks every node in dependency order, propagating
// resolved output types along edges as bindings for downstream
// nodes, and lowers each successful instance. Structural problems
// (unknown blocks, dangling edges, cycles) are Go errors; type
// problems land in the result's error list.
func (s *Session) Compile(patch *Patch) (*PatchResult, error) {
	sigs, err := s.resolveSigs(patch)
	if err != nil {
		return nil, err
	}

	order, err := topoSort(patch)
	if err != nil {
		return nil, err
	}

	incoming := map[string][]Edge{}
	for _, edge := range patch.Edges {
		incoming[edge.To] = append(incoming[edge.To], edge)
	}

	result := &PatchResult{
		Order:     order,
		Instances: make(map[string]*blocks.Result, len(order)),
		Program:   ir.NewBuilder(),
	}
	pipeline := blocks.Pipeline{Debug: s.Debug, Logf: func(format string, v ...interface{}) {
		s.log.Debugf("[%s] "+format, append([]interface{}{s.id}, v...)...)
	}}
	slots := map[string]map[string]ir.Slot{}

	for _, nodeID := range order {
		var bindings []blocks.Binding
		for _, edge := range incoming[nodeID] {
			upstream, ok := result.Instances[edge.From]
			if !ok || !upstream.OK {
				continue
			}
			if t, ok := upstream.Types.Output(edge.FromPort); ok {
				bindings = append(bindings, blocks.Binding{Port: edge.ToPort, Type: t})
			}
		}

		res := pipeline.CompileInstance(sigs[nodeID], bindings, nodeID)
		result.Instances[nodeID] = res
		result.Errors = append(result.Errors, res.Errors...)

		if !res.OK {
			s.log.Infof("[%s] %s failed with %d error(s)", s.id, nodeID, len(res.Errors))
			continue
		}
		s.log.Infof("[%s] %s resolved to %v", s.id, nodeID, res.Types)

		if err := s.lower(result, slots, incoming[nodeID], nodeID, sigs[nodeID].Name()); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (s *Session) resolveSigs(patch *Patch) (map[string]blocks.Sig, error) {
	var merr *multierror.Error

	sigs := make(map[string]blocks.Sig, len(patch.Nodes))
	ids := map[string]bool{}
	for _, node := range patch.Nodes {
		if ids[node.ID] {
			merr = multierror.Append(merr, errors.Errorf("duplicate node id %q", node.ID))
			continue
		}
		ids[node.ID] = true

		sig, ok := s.Registry.Lookup(node.Block)
		if !ok {
			merr = multierror.Append(merr, errors.Errorf("node %q uses unknown block %q", node.ID, node.Block))
			continue
		}
		sigs[node.ID] = sig
	}

	for _, edge := range patch.Edges {
		if !ids[edge.From] {
			merr = multierror.Append(merr, errors.Errorf("edge references unknown node %q", edge.From))
		}
		if !ids[edge.To] {
			merr = multierror.Append(merr, errors.Errorf("edge references unknown node %q", edge.To))
		}
	}

	return sigs, merr.ErrorOrNil()
}

// lower appends the node's ops and slots to the shared program.
// Family blocks get a concrete binary op picked by the resolved output
// world; everything else contributes typed value slots only.
func (s *Session) lower(result *PatchResult, slots map[string]map[string]ir.Slot, in []Edge, nodeID string, blockName string) error {
	res := result.Instances[nodeID]
	nodeSlots := map[string]ir.Slot{}
	slots[nodeID] = nodeSlots

	fam, isFamily := families[blockName]
	if !isFamily {
		res.Types.RangeOutputs(func(port string, t types.Type) bool {
			nodeSlots[port] = result.Program.AllocSlot(t)
			return true
		})
		return nil
	}

	arg := func(port string) ir.Slot {
		for _, edge := range in {
			if edge.ToPort != port {
				continue
			}
			if upstream, ok := slots[edge.From]; ok {
				if slot, ok := upstream[edge.FromPort]; ok {
					return slot
				}
			}
		}
		// Unconnected input: allocate a slot of the resolved type so
		// the scheduler can feed it a default value.
		t, _ := res.Types.Input(port)
		return result.Program.AllocSlot(t)
	}

	x, y := arg("a"), arg("b")
	out, _ := res.Types.Output("out")
	slot, err := ir.LowerBinary(result.Program, fam, x, y, out)
	if err != nil {
		return errors.Wrapf(err, "lowering node %q", nodeID)
	}
	nodeSlots["out"] = slot
	return nil
}

// topoSort orders nodes so every edge points forward.
func topoSort(patch *Patch) ([]string, error) {
	degree := make(map[string]int, len(patch.Nodes))
	adjacent := map[string][]string{}
	for _, node := range patch.Nodes {
		degree[node.ID] = 0
	}
	for _, edge := range patch.Edges {
		adjacent[edge.From] = append(adjacent[edge.From], edge.To)
		degree[edge.To]++
	}

	var queue []string
	for _, node := range patch.Nodes {
		if degree[node.ID] == 0 {
			queue = append(queue, node.ID)
		}
	}

	order := make([]string, 0, len(patch.Nodes))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)
		for _, next := range adjacent[id] {
			degree[next]--
			if degree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	if len(order) != len(patch.Nodes) {
		return nil, errors.New("patch contains a cycle")
	}
	return order, nil
}

// WriteFeedback renders every type error in the result and returns
// the count.
func WriteFeedback(w io.Writer, result *PatchResult) int {
	return feedback.Write(w, result.Errors)
}
