/*
Package tableui implements the table column-resizing subsystem of a
rich-text editing UI, together with the anchor/link attribute plugin and a
hierarchical dropdown/menu-bar widget with search filtering.

# Overview

The core coordinates three things: pointer-drag state, a document model, and
a rendered view, under one invariant that must survive structural edits
(row/column insertion, deletion, undo) as well as live-resize gestures: a
table's column widths always sum to 100%.

The pieces, leaves first:

  - widths.go: pure percentage/pixel arithmetic.
  - tracker.go: cell-identity → column-index history, how insertion is told
    apart from deletion between change batches.
  - postfixer.go: the integrity pass reconciling columnWidths against table
    structure after every change batch.
  - resize.go: the press/drag/release state machine. Dragging mutates only
    the rendered view; the document changes once, on release, through a
    command.
  - commands.go: the two transactional width mutations.
  - colgroup.go: drag-handle and colgroup upkeep after renders.

# Quick Start

	doc := tableui.NewDocument()
	renderer := tableui.NewRenderer(doc)
	resize := tableui.NewColumnResize(doc, renderer)

	// Build a table, then render and measure it.
	doc.Change(func(w *tableui.Writer) {
	    w.AppendChild(doc.Root(), table)
	})
	renderer.SetMeasurer(layoutFn) // embedder assigns pixel widths
	renderer.RenderDocument()

	// Route pointer events from the embedder.
	resize.PointerDown(handleElement, x)
	resize.PointerMove(x, buttonsDown)
	resize.PointerUp()

Data flow: pointer events → ColumnResize (view-only mutation) → on release →
commands (document mutation) → change notifications → width post-fixer →
renderer re-renders the table.

# Attributes

A table element carries two optional attributes:

	tableWidth    "45%"              table width, absent = auto
	columnWidths  "20%,30%,50%"      one entry per column, summing to 100

The renderer downcasts tableWidth to a width style on the enclosing figure
and columnWidths to per-col width styles inside the table's colgroup;
UpcastTable reads them back.

The backend/opengl package provides a GLFW/OpenGL embedder used by the
example, rendering the view tree and feeding pointer events back in.
*/
package tableui
