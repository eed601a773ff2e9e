package analysis

import (
	"neksis/internal/ast"
)

// inliningComplexityLimit is the weight below which a function is considered
// small enough to inline at its call sites.
const inliningComplexityLimit = 10

// CallGraphNode holds the per-function facts gathered by the call graph builder.
type CallGraphNode struct {
	Symbol            Symbol
	Pos               ast.Position
	Complexity        int
	CallCount         int
	InliningCandidate bool
	HotFunction       bool // reserved for profile-driven analysis
	Recursive         bool
}

// CallGraphEdge records one call site. Duplicate (caller, callee) pairs keep
// separate edges with Frequency 1 each; use EdgeFrequency to aggregate.
type CallGraphEdge struct {
	Caller    Symbol
	Callee    Symbol
	CallSites []ast.Position
	Frequency int
}

// CallGraph is the directed graph of functions and call relationships.
type CallGraph struct {
	nodes map[Symbol]*CallGraphNode
	order []Symbol
	edges []*CallGraphEdge
}

func NewCallGraph() *CallGraph {
	return &CallGraph{
		nodes: make(map[Symbol]*CallGraphNode),
	}
}

// AddNode registers a function node. Re-adding an existing symbol replaces the
// node without duplicating its position in declaration order.
func (g *CallGraph) AddNode(node *CallGraphNode) {
	if _, exists := g.nodes[node.Symbol]; !exists {
		g.order = append(g.order, node.Symbol)
	}
	g.nodes[node.Symbol] = node
}

// Node returns the node for a symbol, or nil when the function is unknown.
func (g *CallGraph) Node(sym Symbol) *CallGraphNode {
	return g.nodes[sym]
}

// Nodes returns all nodes in declaration order.
func (g *CallGraph) Nodes() []*CallGraphNode {
	nodes := make([]*CallGraphNode, 0, len(g.order))
	for _, sym := range g.order {
		nodes = append(nodes, g.nodes[sym])
	}
	return nodes
}

// Edges returns every recorded call site in discovery order.
func (g *CallGraph) Edges() []*CallGraphEdge {
	return g.edges
}

// EdgeFrequency sums the frequency of all edges between a caller and callee.
// Edges are never merged at construction time, so consumers that want a true
// call frequency aggregate here.
func (g *CallGraph) EdgeFrequency(caller, callee Symbol) int {
	total := 0
	for _, edge := range g.edges {
		if edge.Caller == caller && edge.Callee == callee {
			total += edge.Frequency
		}
	}
	return total
}

// callGraphBuilder assembles a CallGraph in three passes: node creation, edge
// collection, and recursion detection.
type callGraphBuilder struct {
	module string
	graph  *CallGraph
}

// BuildCallGraph walks every function in the program and produces its call
// graph. Calls to unknown names leave dangling edges without creating nodes;
// calls through non-identifier callees are skipped.
func BuildCallGraph(program *ast.Program) *CallGraph {
	b := &callGraphBuilder{
		module: program.ModuleName(),
		graph:  NewCallGraph(),
	}

	functions := program.Functions()
	for _, fn := range functions {
		b.addFunctionNode(fn)
	}
	for _, fn := range functions {
		b.collectCalls(fn)
	}
	b.detectRecursion()

	return b.graph
}

func (b *callGraphBuilder) addFunctionNode(fn *ast.Function) {
	complexity := ast.Complexity(fn)
	b.graph.AddNode(&CallGraphNode{
		Symbol:            FunctionSymbol(b.module, fn),
		Pos:               fn.NodePos(),
		Complexity:        complexity,
		InliningCandidate: complexity < inliningComplexityLimit,
	})
}

func (b *callGraphBuilder) collectCalls(fn *ast.Function) {
	if fn.Body == nil {
		return
	}
	caller := FunctionSymbol(b.module, fn)
	b.walkExpr(caller, fn.Body)
}

func (b *callGraphBuilder) walkStatement(caller Symbol, stmt ast.Statement) {
	switch node := stmt.(type) {
	case *ast.LetStmt:
		b.walkExpr(caller, node.Value)
	case *ast.AssignStmt:
		b.walkExpr(caller, node.Target)
		b.walkExpr(caller, node.Value)
	case *ast.ReturnStmt:
		b.walkExpr(caller, node.Value)
	case *ast.ExprStmt:
		b.walkExpr(caller, node.Expr)
	}
}

func (b *callGraphBuilder) walkExpr(caller Symbol, expr ast.Expr) {
	if expr == nil {
		return
	}

	switch node := expr.(type) {
	case *ast.CallExpr:
		if target, ok := node.Callee.(*ast.IdentExpr); ok {
			b.recordCall(caller, target.Name, node.NodePos())
		} else {
			// Indirect call; no edge, but the callee expression may
			// itself contain direct calls.
			b.walkExpr(caller, node.Callee)
		}
		for _, arg := range node.Args {
			b.walkExpr(caller, arg)
		}

	case *ast.BinaryExpr:
		b.walkExpr(caller, node.Left)
		b.walkExpr(caller, node.Right)

	case *ast.UnaryExpr:
		b.walkExpr(caller, node.Value)

	case *ast.IfExpr:
		b.walkExpr(caller, node.Cond)
		b.walkExpr(caller, node.Then)
		b.walkExpr(caller, node.Else)

	case *ast.WhileExpr:
		b.walkExpr(caller, node.Cond)
		b.walkExpr(caller, node.Body)

	case *ast.BlockExpr:
		for _, item := range node.Items {
			b.walkStatement(caller, item)
		}
		b.walkExpr(caller, node.Tail)
	}
}

func (b *callGraphBuilder) recordCall(caller Symbol, calleeName string, pos ast.Position) {
	callee := Symbol{Module: b.module, Name: calleeName}

	b.graph.edges = append(b.graph.edges, &CallGraphEdge{
		Caller:    caller,
		Callee:    callee,
		CallSites: []ast.Position{pos},
		Frequency: 1,
	})

	if node := b.graph.nodes[callee]; node != nil {
		node.CallCount++
	}
}

// detectRecursion runs a depth-first search from each function. The visited
// set is shared across starts, so in a mutual cycle only the function the
// search began from is marked recursive; later starts find their node already
// visited and report nothing.
func (b *callGraphBuilder) detectRecursion() {
	visited := make(map[Symbol]bool)

	for _, sym := range b.graph.order {
		callStack := make(map[Symbol]bool)
		if b.findCycle(sym, visited, callStack) {
			b.graph.nodes[sym].Recursive = true
		}
	}
}

func (b *callGraphBuilder) findCycle(sym Symbol, visited, callStack map[Symbol]bool) bool {
	if callStack[sym] {
		return true
	}
	if visited[sym] {
		return false
	}

	visited[sym] = true
	callStack[sym] = true

	for _, edge := range b.graph.edges {
		if edge.Caller != sym {
			continue
		}
		if b.graph.nodes[edge.Callee] == nil {
			// Dangling edge to an undeclared function; traversal stops here.
			continue
		}
		if b.findCycle(edge.Callee, visited, callStack) {
			return true
		}
	}

	callStack[sym] = false
	return false
}
