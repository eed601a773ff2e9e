package ast

import (
	"fmt"
	"strings"
)

// MetadataVisitor provides utilities for working with metadata across the AST
type MetadataVisitor struct {
	tracker    *NodeTracker
	sourceText string
}

// NewMetadataVisitor creates a new metadata visitor
func NewMetadataVisitor(sourceText string) *MetadataVisitor {
	return &MetadataVisitor{
		tracker:    NewNodeTracker(),
		sourceText: sourceText,
	}
}

// AssignMetadata assigns metadata to a node and all its children
func (mv *MetadataVisitor) AssignMetadata(node Node, parentID NodeID) {
	if node == nil {
		return
	}

	// Generate unique ID for this node
	nodeID := mv.tracker.GenerateID()

	// Extract source text for this node
	start := node.NodePos()
	end := node.NodeEndPos()
	sourceText := mv.extractSourceText(start, end)

	// Create metadata
	metadata := &Metadata{
		NodeID:     nodeID,
		Source:     CreateSourceRange(start, end),
		SourceText: sourceText,
		ParentID:   parentID,
	}

	// Assign to node
	node.SetMetadata(metadata)
	mv.tracker.SetMetadata(nodeID, metadata)

	// Visit children recursively
	mv.visitChildren(node, nodeID)
}

// extractSourceText extracts the source text between two positions
func (mv *MetadataVisitor) extractSourceText(start, end Position) string {
	if mv.sourceText == "" {
		return ""
	}

	if start.Offset < 0 || end.Offset < 0 || start.Offset > len(mv.sourceText) || end.Offset > len(mv.sourceText) {
		return ""
	}

	if start.Offset > end.Offset {
		return ""
	}

	return mv.sourceText[start.Offset:end.Offset]
}

// visitChildren visits all children of a node
func (mv *MetadataVisitor) visitChildren(node Node, parentID NodeID) {
	switch n := node.(type) {
	case *Program:
		if n.Module != nil {
			mv.AssignMetadata(n.Module, parentID)
		}
		for _, stmt := range n.Stmts {
			mv.AssignMetadata(stmt, parentID)
		}

	case *ModuleDecl:
		mv.AssignMetadata(&n.Name, parentID)

	case *Function:
		mv.AssignMetadata(&n.Name, parentID)
		for _, param := range n.Params {
			mv.AssignMetadata(param, parentID)
		}
		if n.Return != nil {
			mv.AssignMetadata(n.Return, parentID)
		}
		if n.Body != nil {
			mv.AssignMetadata(n.Body, parentID)
		}

	case *FunctionParam:
		mv.AssignMetadata(&n.Name, parentID)
		if n.Type != nil {
			mv.AssignMetadata(n.Type, parentID)
		}

	case *TypeRef:
		mv.AssignMetadata(&n.Name, parentID)

	case *LetStmt:
		mv.AssignMetadata(&n.Name, parentID)
		if n.Type != nil {
			mv.AssignMetadata(n.Type, parentID)
		}
		if n.Value != nil {
			mv.AssignMetadata(n.Value, parentID)
		}

	case *AssignStmt:
		if n.Target != nil {
			mv.AssignMetadata(n.Target, parentID)
		}
		if n.Value != nil {
			mv.AssignMetadata(n.Value, parentID)
		}

	case *ReturnStmt:
		if n.Value != nil {
			mv.AssignMetadata(n.Value, parentID)
		}

	case *ExprStmt:
		if n.Expr != nil {
			mv.AssignMetadata(n.Expr, parentID)
		}

	case *BlockExpr:
		for _, item := range n.Items {
			mv.AssignMetadata(item, parentID)
		}
		if n.Tail != nil {
			mv.AssignMetadata(n.Tail, parentID)
		}

	case *IfExpr:
		if n.Cond != nil {
			mv.AssignMetadata(n.Cond, parentID)
		}
		if n.Then != nil {
			mv.AssignMetadata(n.Then, parentID)
		}
		if n.Else != nil {
			mv.AssignMetadata(n.Else, parentID)
		}

	case *WhileExpr:
		if n.Cond != nil {
			mv.AssignMetadata(n.Cond, parentID)
		}
		if n.Body != nil {
			mv.AssignMetadata(n.Body, parentID)
		}

	case *BinaryExpr:
		if n.Left != nil {
			mv.AssignMetadata(n.Left, parentID)
		}
		if n.Right != nil {
			mv.AssignMetadata(n.Right, parentID)
		}

	case *UnaryExpr:
		if n.Value != nil {
			mv.AssignMetadata(n.Value, parentID)
		}

	case *CallExpr:
		if n.Callee != nil {
			mv.AssignMetadata(n.Callee, parentID)
		}
		for _, arg := range n.Args {
			mv.AssignMetadata(arg, parentID)
		}
	}
}

// GetTracker returns the node tracker
func (mv *MetadataVisitor) GetTracker() *NodeTracker {
	return mv.tracker
}

// FindNodeByPosition finds a node at a specific position
func (mv *MetadataVisitor) FindNodeByPosition(pos Position) *Metadata {
	for _, meta := range mv.tracker.metadata {
		if meta.Source.Contains(pos) {
			return meta
		}
	}
	return nil
}

// PrintDebugInfo prints debugging information about all nodes
func (mv *MetadataVisitor) PrintDebugInfo() string {
	var sb strings.Builder
	sb.WriteString("=== AST Metadata Debug Info ===\n")

	for nodeID, meta := range mv.tracker.metadata {
		sb.WriteString(fmt.Sprintf("%d: %s\n", nodeID, meta.String()))

		if meta.SourceText != "" {
			sb.WriteString("   Source: ")
			sb.WriteString(strings.ReplaceAll(meta.SourceText, "\n", "\\n"))
			sb.WriteString("\n")
		}

		if meta.CompilationInfo != nil && meta.CompilationInfo.OptimizationInfo != nil {
			opt := meta.CompilationInfo.OptimizationInfo
			sb.WriteString(fmt.Sprintf("   Optimized: out=%t passes=%s\n",
				opt.OptimizedOut, strings.Join(opt.OptimizationPasses, ",")))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
