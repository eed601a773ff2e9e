package ast

// TagOptimizationPass records that an optimization pass identified this node
// as a candidate, without marking it as optimized out. Marking-only passes
// use this to leave an audit trail in the metadata side-table.
func TagOptimizationPass(node Node, pass string) {
	optInfo := ensureOptimizationInfo(node)
	if optInfo == nil {
		return
	}
	optInfo.OptimizationPasses = append(optInfo.OptimizationPasses, pass)
}

// MarkOptimizedOut marks a node as optimized out
func MarkOptimizedOut(node Node, pass string, inlinedFrom *NodeID, constantFolded bool, originalValue string) {
	optInfo := ensureOptimizationInfo(node)
	if optInfo == nil {
		return
	}

	optInfo.OptimizedOut = true
	optInfo.OptimizationPasses = append(optInfo.OptimizationPasses, pass)
	if inlinedFrom != nil {
		optInfo.InlinedFrom = inlinedFrom
	}
	optInfo.ConstantFolded = constantFolded
	if originalValue != "" {
		optInfo.OriginalValue = originalValue
	}
}

func ensureOptimizationInfo(node Node) *OptimizationInfo {
	if node == nil {
		return nil
	}

	meta := node.GetMetadata()
	if meta == nil {
		return nil
	}

	if meta.CompilationInfo == nil {
		meta.CompilationInfo = &CompilationMetadata{}
	}

	if meta.CompilationInfo.OptimizationInfo == nil {
		meta.CompilationInfo.OptimizationInfo = &OptimizationInfo{}
	}

	return meta.CompilationInfo.OptimizationInfo
}

// CollectAllNodes performs a deep traversal to collect all nodes with metadata
func CollectAllNodes(root Node) []Node {
	var nodes []Node
	collectNodesRecursive(root, &nodes)
	return nodes
}

func collectNodesRecursive(node Node, nodes *[]Node) {
	if node == nil {
		return
	}

	*nodes = append(*nodes, node)

	// Visit children based on node type
	switch n := node.(type) {
	case *Program:
		if n.Module != nil {
			collectNodesRecursive(n.Module, nodes)
		}
		for _, stmt := range n.Stmts {
			collectNodesRecursive(stmt, nodes)
		}

	case *ModuleDecl:
		collectNodesRecursive(&n.Name, nodes)

	case *Function:
		collectNodesRecursive(&n.Name, nodes)
		for _, param := range n.Params {
			collectNodesRecursive(param, nodes)
		}
		if n.Return != nil {
			collectNodesRecursive(n.Return, nodes)
		}
		if n.Body != nil {
			collectNodesRecursive(n.Body, nodes)
		}

	case *FunctionParam:
		collectNodesRecursive(&n.Name, nodes)
		if n.Type != nil {
			collectNodesRecursive(n.Type, nodes)
		}

	case *TypeRef:
		collectNodesRecursive(&n.Name, nodes)

	case *LetStmt:
		collectNodesRecursive(&n.Name, nodes)
		if n.Type != nil {
			collectNodesRecursive(n.Type, nodes)
		}
		if n.Value != nil {
			collectNodesRecursive(n.Value, nodes)
		}

	case *AssignStmt:
		if n.Target != nil {
			collectNodesRecursive(n.Target, nodes)
		}
		if n.Value != nil {
			collectNodesRecursive(n.Value, nodes)
		}

	case *ReturnStmt:
		if n.Value != nil {
			collectNodesRecursive(n.Value, nodes)
		}

	case *ExprStmt:
		if n.Expr != nil {
			collectNodesRecursive(n.Expr, nodes)
		}

	case *BlockExpr:
		for _, item := range n.Items {
			collectNodesRecursive(item, nodes)
		}
		if n.Tail != nil {
			collectNodesRecursive(n.Tail, nodes)
		}

	case *IfExpr:
		if n.Cond != nil {
			collectNodesRecursive(n.Cond, nodes)
		}
		if n.Then != nil {
			collectNodesRecursive(n.Then, nodes)
		}
		if n.Else != nil {
			collectNodesRecursive(n.Else, nodes)
		}

	case *WhileExpr:
		if n.Cond != nil {
			collectNodesRecursive(n.Cond, nodes)
		}
		if n.Body != nil {
			collectNodesRecursive(n.Body, nodes)
		}

	case *BinaryExpr:
		if n.Left != nil {
			collectNodesRecursive(n.Left, nodes)
		}
		if n.Right != nil {
			collectNodesRecursive(n.Right, nodes)
		}

	case *UnaryExpr:
		if n.Value != nil {
			collectNodesRecursive(n.Value, nodes)
		}

	case *CallExpr:
		if n.Callee != nil {
			collectNodesRecursive(n.Callee, nodes)
		}
		for _, arg := range n.Args {
			collectNodesRecursive(arg, nodes)
		}
	}
}
